package widgets

import (
	"fmt"
	"strings"
)

// Axis represents the stacking direction of a [Flex].
// AxisVertical is the zero value.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Gravity positions children inside a container. Horizontal and vertical
// flags combine; a zero Gravity places children at the top-left.
type Gravity uint8

const (
	GravityLeft Gravity = 1 << iota
	GravityRight
	GravityCenterHorizontal
	GravityTop
	GravityBottom
	GravityCenterVertical

	// GravityCenter centers children in both axes.
	GravityCenter = GravityCenterHorizontal | GravityCenterVertical
)

var gravityNames = []struct {
	flag Gravity
	name string
}{
	{GravityLeft, "left"},
	{GravityRight, "right"},
	{GravityCenterHorizontal, "center_horizontal"},
	{GravityTop, "top"},
	{GravityBottom, "bottom"},
	{GravityCenterVertical, "center_vertical"},
}

// Names returns the set flags in a fixed order.
func (g Gravity) Names() []string {
	var out []string
	for _, n := range gravityNames {
		if g&n.flag != 0 {
			out = append(out, n.name)
		}
	}
	return out
}

// String joins the flag names with "|".
func (g Gravity) String() string {
	if g == 0 {
		return "none"
	}
	return strings.Join(g.Names(), "|")
}

// Has reports whether every flag in f is set.
func (g Gravity) Has(f Gravity) bool {
	return g&f == f
}

func parseGravity(names []any) (Gravity, error) {
	var g Gravity
	for _, raw := range names {
		name, _ := raw.(string)
		if name == "center" {
			g |= GravityCenter
			continue
		}
		found := false
		for _, n := range gravityNames {
			if n.name == name {
				g |= n.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown gravity %v", raw)
		}
	}
	return g, nil
}

// Flex stacks its children along one axis, in order, without wrapping.
// Gravity positions the group of children inside the space the Flex is given.
type Flex struct {
	Axis     Axis
	Gravity  Gravity
	Children []Child
}

// Kind returns "flex".
func (Flex) Kind() string { return "flex" }

// ChildList returns the children.
func (f Flex) ChildList() []Child { return f.Children }

// Column returns a vertical Flex.
func Column(gravity Gravity, children ...Child) Flex {
	return Flex{Axis: AxisVertical, Gravity: gravity, Children: children}
}

// Row returns a horizontal Flex.
func Row(gravity Gravity, children ...Child) Flex {
	return Flex{Axis: AxisHorizontal, Gravity: gravity, Children: children}
}
