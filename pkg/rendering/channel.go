package rendering

import (
	"github.com/go-drift/blocks/pkg/errors"
	"github.com/go-drift/blocks/pkg/platform"
	"github.com/go-drift/blocks/pkg/widgets"
)

// ChannelRenderer sends content to the native host, which builds real
// views from the encoded tree.
type ChannelRenderer struct {
	channel  *platform.MethodChannel
	screenID string
}

// NewChannelRenderer returns a renderer that targets the screen with the
// given id over ch.
func NewChannelRenderer(ch *platform.MethodChannel, screenID string) *ChannelRenderer {
	return &ChannelRenderer{channel: ch, screenID: screenID}
}

// SetContent invokes setContentView on the native side.
func (r *ChannelRenderer) SetContent(root widgets.Widget) error {
	_, err := r.channel.Invoke("setContentView", map[string]any{
		"id":      r.screenID,
		"content": widgets.Encode(root),
	})
	if err != nil {
		return &errors.HostError{
			Op:      "rendering.ChannelRenderer.SetContent",
			Kind:    errors.KindRender,
			Channel: r.channel.Name(),
			Err:     err,
		}
	}
	return nil
}
