package widgets

import (
	"fmt"
	"strconv"
)

// DimensionMode selects how a child's extent along one axis is chosen.
type DimensionMode int

const (
	// DimensionWrapContent sizes the child to its natural, content-driven extent.
	DimensionWrapContent DimensionMode = iota
	// DimensionMatchParent gives the child the parent's full extent.
	DimensionMatchParent
	// DimensionExact fixes the extent to Dimension.Value.
	DimensionExact
)

// Dimension is a sizing constraint along one axis.
type Dimension struct {
	Mode  DimensionMode
	Value float64
}

var (
	// Wrap lets a child take its natural size.
	Wrap = Dimension{Mode: DimensionWrapContent}
	// Match gives a child the parent's extent.
	Match = Dimension{Mode: DimensionMatchParent}
)

// Exact returns a fixed dimension.
func Exact(v float64) Dimension {
	return Dimension{Mode: DimensionExact, Value: v}
}

// String returns the encoded form: "wrap_content", "match_parent" or a number.
func (d Dimension) String() string {
	switch d.Mode {
	case DimensionWrapContent:
		return "wrap_content"
	case DimensionMatchParent:
		return "match_parent"
	case DimensionExact:
		return strconv.FormatFloat(d.Value, 'f', -1, 64)
	default:
		return fmt.Sprintf("Dimension(%d)", int(d.Mode))
	}
}

func parseDimension(v any) (Dimension, error) {
	switch d := v.(type) {
	case nil:
		return Wrap, nil
	case string:
		switch d {
		case "wrap_content", "":
			return Wrap, nil
		case "match_parent":
			return Match, nil
		}
		f, err := strconv.ParseFloat(d, 64)
		if err != nil {
			return Dimension{}, fmt.Errorf("invalid dimension %q", d)
		}
		return Exact(f), nil
	case float64:
		return Exact(d), nil
	case int:
		return Exact(float64(d)), nil
	default:
		return Dimension{}, fmt.Errorf("invalid dimension of type %T", v)
	}
}

// LayoutParams are the sizing constraints of a child in both axes.
type LayoutParams struct {
	Width  Dimension
	Height Dimension
}

// WrapContent returns params sizing the child to its content in both axes.
func WrapContent() LayoutParams {
	return LayoutParams{Width: Wrap, Height: Wrap}
}

// MatchParent returns params filling the parent in both axes.
func MatchParent() LayoutParams {
	return LayoutParams{Width: Match, Height: Match}
}
