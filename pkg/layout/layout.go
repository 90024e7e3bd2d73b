// Package layout positions a widget tree inside a viewport.
//
// The result is a tree of [Node] values carrying absolute rectangles, which
// renderers draw or dump without knowing any sizing rules themselves.
package layout

import (
	"math"

	"github.com/go-drift/blocks/pkg/widgets"
)

// ButtonPadding is the space between a button's label and its edges.
var ButtonPadding = EdgeInsetsSymmetric(24, 14)

// Measurer reports the natural size of a single line of text.
type Measurer interface {
	MeasureText(text string) Size
}

// MonospaceMeasurer measures text as a row of equal-width cells.
type MonospaceMeasurer struct {
	Advance    float64
	LineHeight float64
}

// MeasureText returns len(text) cells by one line.
func (m MonospaceMeasurer) MeasureText(text string) Size {
	return Size{Width: float64(len([]rune(text))) * m.Advance, Height: m.LineHeight}
}

// Node is a positioned widget.
type Node struct {
	Widget   widgets.Widget
	Rect     Rect
	Children []*Node
}

// Layout positions root so that it fills the viewport, then places every
// descendant according to its parent's axis and gravity and its own layout
// params.
func Layout(root widgets.Widget, viewport Size, m Measurer) *Node {
	return place(root, RectFromLTWH(0, 0, viewport.Width, viewport.Height), m)
}

// NaturalSize returns the content-driven size of w.
func NaturalSize(w widgets.Widget, m Measurer) Size {
	switch v := w.(type) {
	case widgets.Button:
		text := m.MeasureText(v.Label)
		return Size{
			Width:  text.Width + ButtonPadding.Horizontal(),
			Height: text.Height + ButtonPadding.Vertical(),
		}
	case widgets.Flex:
		var main, cross float64
		for _, c := range v.Children {
			s := NaturalSize(c.Widget, m)
			w := fixedExtent(c.Params.Width, s.Width)
			h := fixedExtent(c.Params.Height, s.Height)
			if v.Axis == widgets.AxisVertical {
				main += h
				cross = math.Max(cross, w)
			} else {
				main += w
				cross = math.Max(cross, h)
			}
		}
		if v.Axis == widgets.AxisVertical {
			return Size{Width: cross, Height: main}
		}
		return Size{Width: main, Height: cross}
	default:
		return Size{}
	}
}

// fixedExtent is the extent a child contributes to its parent's natural
// size. match_parent children contribute nothing.
func fixedExtent(d widgets.Dimension, natural float64) float64 {
	switch d.Mode {
	case widgets.DimensionExact:
		return d.Value
	case widgets.DimensionMatchParent:
		return 0
	default:
		return natural
	}
}

func resolve(d widgets.Dimension, natural, available float64) float64 {
	var v float64
	switch d.Mode {
	case widgets.DimensionExact:
		v = d.Value
	case widgets.DimensionMatchParent:
		v = available
	default:
		v = natural
	}
	return math.Max(0, math.Min(v, available))
}

func place(w widgets.Widget, rect Rect, m Measurer) *Node {
	node := &Node{Widget: w, Rect: rect}
	flex, ok := w.(widgets.Flex)
	if !ok {
		return node
	}

	vertical := flex.Axis == widgets.AxisVertical
	mainExtent, crossExtent := rect.Width(), rect.Height()
	if vertical {
		mainExtent, crossExtent = rect.Height(), rect.Width()
	}

	sizes := make([]Size, len(flex.Children))
	var used float64
	for i, c := range flex.Children {
		natural := NaturalSize(c.Widget, m)
		remaining := math.Max(0, mainExtent-used)
		var s Size
		if vertical {
			s.Height = resolve(c.Params.Height, natural.Height, remaining)
			s.Width = resolve(c.Params.Width, natural.Width, crossExtent)
			used += s.Height
		} else {
			s.Width = resolve(c.Params.Width, natural.Width, remaining)
			s.Height = resolve(c.Params.Height, natural.Height, crossExtent)
			used += s.Width
		}
		sizes[i] = s
	}

	free := math.Max(0, mainExtent-used)
	pos := mainStart(flex.Gravity, vertical, free)
	for i, c := range flex.Children {
		s := sizes[i]
		var childRect Rect
		if vertical {
			x := crossStart(flex.Gravity, vertical, crossExtent-s.Width)
			childRect = RectFromLTWH(rect.Left+x, rect.Top+pos, s.Width, s.Height)
			pos += s.Height
		} else {
			y := crossStart(flex.Gravity, vertical, crossExtent-s.Height)
			childRect = RectFromLTWH(rect.Left+pos, rect.Top+y, s.Width, s.Height)
			pos += s.Width
		}
		node.Children = append(node.Children, place(c.Widget, childRect, m))
	}
	return node
}

// mainStart returns the offset of the first child along the main axis.
func mainStart(g widgets.Gravity, vertical bool, free float64) float64 {
	center, end := widgets.GravityCenterHorizontal, widgets.GravityRight
	if vertical {
		center, end = widgets.GravityCenterVertical, widgets.GravityBottom
	}
	return align(g, center, end, free)
}

// crossStart returns a child's offset along the cross axis.
func crossStart(g widgets.Gravity, vertical bool, free float64) float64 {
	center, end := widgets.GravityCenterVertical, widgets.GravityBottom
	if vertical {
		center, end = widgets.GravityCenterHorizontal, widgets.GravityRight
	}
	return align(g, center, end, math.Max(0, free))
}

func align(g, center, end widgets.Gravity, free float64) float64 {
	switch {
	case g.Has(center):
		return free / 2
	case g.Has(end):
		return free
	default:
		return 0
	}
}

// Find returns the first node, depth-first, whose widget satisfies pred.
func (n *Node) Find(pred func(widgets.Widget) bool) *Node {
	if n == nil {
		return nil
	}
	if pred(n.Widget) {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(pred); found != nil {
			return found
		}
	}
	return nil
}
