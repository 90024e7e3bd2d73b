// Package screen implements a host-driven screen controller.
//
// On creation a [Controller] describes its content, a vertical stack that
// centers one button, and hands it to a renderer as the screen's only
// visible content. It does nothing in any later phase.
package screen

import (
	"sync"

	"github.com/go-drift/blocks/pkg/rendering"
	"github.com/go-drift/blocks/pkg/widgets"
)

// ButtonLabel is the text of the screen's button.
const ButtonLabel = "Button!"

// SavedState is state a host restores into a re-created screen.
type SavedState map[string]any

// Content returns the screen's description: a vertical stack, centered in
// both axes, holding one button sized to its label. The button has no tap
// action.
func Content() widgets.Widget {
	button := widgets.ButtonOf(ButtonLabel, nil)
	return widgets.Column(widgets.GravityCenter,
		widgets.Child{Widget: button, Params: widgets.WrapContent()},
	)
}

// Controller owns one screen's content.
type Controller struct {
	id       string
	renderer rendering.Renderer

	mu      sync.Mutex
	created bool
	saved   SavedState
	content widgets.Widget
}

// New returns a controller that installs content through r.
func New(id string, r rendering.Renderer) *Controller {
	return &Controller{id: id, renderer: r}
}

// ID returns the screen identifier.
func (c *Controller) ID() string {
	return c.id
}

// OnCreate builds the content and installs it, replacing anything
// installed before. saved may be nil. Errors come only from the renderer.
func (c *Controller) OnCreate(saved SavedState) error {
	c.mu.Lock()
	c.created = true
	c.saved = saved
	c.mu.Unlock()

	content := Content()
	if err := c.renderer.SetContent(content); err != nil {
		return err
	}

	c.mu.Lock()
	c.content = content
	c.mu.Unlock()
	return nil
}

// OnDestroy releases the content.
func (c *Controller) OnDestroy() {
	c.mu.Lock()
	c.created = false
	c.content = nil
	c.saved = nil
	c.mu.Unlock()
}

// Content returns the installed content, or nil before creation and after
// destruction.
func (c *Controller) Content() widgets.Widget {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.content
}

// Created reports whether OnCreate ran and OnDestroy has not.
func (c *Controller) Created() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.created
}

// SavedState returns the state passed to the last OnCreate.
func (c *Controller) SavedState() SavedState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saved
}
