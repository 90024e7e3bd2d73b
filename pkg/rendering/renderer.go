// Package rendering installs widget trees as screen content.
//
// A [Renderer] is the host-specific half of a screen: controllers describe
// content with pkg/widgets, and a renderer makes it visible. Installing new
// content always replaces what was installed before.
package rendering

import "github.com/go-drift/blocks/pkg/widgets"

// Renderer installs a widget tree as the sole visible content of a screen.
type Renderer interface {
	SetContent(root widgets.Widget) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(root widgets.Widget) error

// SetContent calls f.
func (f RendererFunc) SetContent(root widgets.Widget) error {
	return f(root)
}
