package widgets

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned by Decode for an unrecognized widget type.
var ErrUnknownKind = errors.New("unknown widget kind")

// Encode converts a tree into plain maps and slices suitable for a
// platform channel codec. Tap handlers are not encoded; a button carries
// "tappable": true when it has one.
func Encode(w Widget) map[string]any {
	switch v := w.(type) {
	case Flex:
		children := make([]any, 0, len(v.Children))
		for _, c := range v.Children {
			children = append(children, map[string]any{
				"widget": Encode(c.Widget),
				"width":  c.Params.Width.String(),
				"height": c.Params.Height.String(),
			})
		}
		gravity := make([]any, 0, 2)
		for _, n := range v.Gravity.Names() {
			gravity = append(gravity, n)
		}
		return map[string]any{
			"type":     v.Kind(),
			"axis":     v.Axis.String(),
			"gravity":  gravity,
			"children": children,
		}
	case Button:
		m := map[string]any{"type": v.Kind(), "label": v.Label}
		if v.OnTap != nil {
			m["tappable"] = true
		}
		return m
	case nil:
		return nil
	default:
		return map[string]any{"type": w.Kind()}
	}
}

// Decode rebuilds a tree from the output of Encode, after any codec round trip.
func Decode(data map[string]any) (Widget, error) {
	kind, _ := data["type"].(string)
	switch kind {
	case "flex":
		f := Flex{}
		switch data["axis"] {
		case "vertical", nil:
			f.Axis = AxisVertical
		case "horizontal":
			f.Axis = AxisHorizontal
		default:
			return nil, fmt.Errorf("flex: invalid axis %v", data["axis"])
		}
		if raw, ok := data["gravity"].([]any); ok {
			g, err := parseGravity(raw)
			if err != nil {
				return nil, fmt.Errorf("flex: %w", err)
			}
			f.Gravity = g
		}
		rawChildren, _ := data["children"].([]any)
		for i, rc := range rawChildren {
			cm, ok := rc.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("flex: child %d is %T", i, rc)
			}
			wm, _ := cm["widget"].(map[string]any)
			child, err := Decode(wm)
			if err != nil {
				return nil, fmt.Errorf("flex: child %d: %w", i, err)
			}
			width, err := parseDimension(cm["width"])
			if err != nil {
				return nil, fmt.Errorf("flex: child %d width: %w", i, err)
			}
			height, err := parseDimension(cm["height"])
			if err != nil {
				return nil, fmt.Errorf("flex: child %d height: %w", i, err)
			}
			f.Children = append(f.Children, Child{Widget: child, Params: LayoutParams{Width: width, Height: height}})
		}
		return f, nil
	case "button":
		label, _ := data["label"].(string)
		return Button{Label: label}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
