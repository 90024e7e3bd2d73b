package rendering

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/go-drift/blocks/pkg/layout"
	"github.com/go-drift/blocks/pkg/widgets"
)

// TextRenderer writes a laid-out dump of the content, one widget per line.
type TextRenderer struct {
	W        io.Writer
	Viewport layout.Size
	// Measurer defaults to an 8x16 monospace grid.
	Measurer layout.Measurer

	mu      sync.Mutex
	current widgets.Widget
}

// SetContent replaces the current content and writes its dump.
func (r *TextRenderer) SetContent(root widgets.Widget) error {
	r.mu.Lock()
	r.current = root
	r.mu.Unlock()
	m := r.Measurer
	if m == nil {
		m = layout.MonospaceMeasurer{Advance: 8, LineHeight: 16}
	}
	_, err := io.WriteString(r.W, Dump(layout.Layout(root, r.Viewport, m)))
	return err
}

// Content returns the most recently installed tree.
func (r *TextRenderer) Content() widgets.Widget {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Dump formats a laid-out tree.
func Dump(root *layout.Node) string {
	var sb strings.Builder
	dump(&sb, root, 0)
	return sb.String()
}

func dump(sb *strings.Builder, n *layout.Node, depth int) {
	if n == nil {
		return
	}
	sb.WriteString(strings.Repeat("  ", depth))
	switch w := n.Widget.(type) {
	case widgets.Flex:
		fmt.Fprintf(sb, "flex axis=%s gravity=%s", w.Axis, w.Gravity)
	case widgets.Button:
		fmt.Fprintf(sb, "button %q", w.Label)
	default:
		sb.WriteString(n.Widget.Kind())
	}
	r, size := n.Rect, n.Rect.Size()
	fmt.Fprintf(sb, " rect=(%g,%g %gx%g)\n", r.Left, r.Top, size.Width, size.Height)
	for _, c := range n.Children {
		dump(sb, c, depth+1)
	}
}
