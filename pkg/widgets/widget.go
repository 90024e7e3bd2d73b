package widgets

// Widget is a node of a declarative screen description.
type Widget interface {
	// Kind names the widget type in encoded trees (e.g., "flex", "button").
	Kind() string
}

// Parent is implemented by widgets that hold children.
type Parent interface {
	Widget
	ChildList() []Child
}

// Child places a widget inside a parent with the given sizing constraints.
type Child struct {
	Widget Widget
	Params LayoutParams
}
