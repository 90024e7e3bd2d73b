package widgets

// Button is a labeled, pressable control.
//
// OnTap may be nil, in which case pressing the button does nothing.
type Button struct {
	// Label is the text displayed on the button.
	Label string
	// OnTap is called when the button is pressed.
	OnTap func()
}

// Kind returns "button".
func (Button) Kind() string { return "button" }

// ButtonOf creates a button with the given label and tap handler.
func ButtonOf(label string, onTap func()) Button {
	return Button{Label: label, OnTap: onTap}
}
