package rendering

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/blocks/pkg/errors"
	"github.com/go-drift/blocks/pkg/layout"
	"github.com/go-drift/blocks/pkg/widgets"
)

// FaceMeasurer measures text with a font face.
type FaceMeasurer struct {
	Face font.Face
}

// MeasureText returns the advance width and line height of text.
func (m FaceMeasurer) MeasureText(text string) layout.Size {
	metrics := m.Face.Metrics()
	return layout.Size{
		Width:  float64(font.MeasureString(m.Face, text).Ceil()),
		Height: float64(metrics.Height.Ceil()),
	}
}

// ImageRenderer rasterizes content into an RGBA image.
type ImageRenderer struct {
	Viewport layout.Size
	// Face defaults to basicfont.Face7x13.
	Face    font.Face
	Palette Palette

	mu  sync.Mutex
	img *image.RGBA
	lay *layout.Node
}

// NewImageRenderer returns a renderer with the default face and palette.
func NewImageRenderer(width, height int) *ImageRenderer {
	return &ImageRenderer{
		Viewport: layout.Size{Width: float64(width), Height: float64(height)},
		Face:     basicfont.Face7x13,
		Palette:  DefaultPalette,
	}
}

func (r *ImageRenderer) face() font.Face {
	if r.Face == nil {
		return basicfont.Face7x13
	}
	return r.Face
}

// SetContent lays out and draws root, replacing the previous frame.
func (r *ImageRenderer) SetContent(root widgets.Widget) error {
	w, h := int(math.Ceil(r.Viewport.Width)), int(math.Ceil(r.Viewport.Height))
	if w <= 0 || h <= 0 {
		return &errors.HostError{
			Op:   "rendering.ImageRenderer.SetContent",
			Kind: errors.KindRender,
			Err:  errEmptyViewport,
		}
	}
	face := r.face()
	tree := layout.Layout(root, r.Viewport, FaceMeasurer{Face: face})

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.Palette.Background.NRGBA()), image.Point{}, draw.Src)
	r.paint(img, tree, face)

	r.mu.Lock()
	r.img = img
	r.lay = tree
	r.mu.Unlock()
	return nil
}

// Image returns the last drawn frame, or nil before any content was set.
func (r *ImageRenderer) Image() *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.img
}

// Layout returns the layout of the last drawn frame.
func (r *ImageRenderer) Layout() *layout.Node {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lay
}

// WritePNG encodes the last drawn frame.
func (r *ImageRenderer) WritePNG(w io.Writer) error {
	img := r.Image()
	if img == nil {
		return errNoFrame
	}
	return png.Encode(w, img)
}

func (r *ImageRenderer) paint(dst *image.RGBA, n *layout.Node, face font.Face) {
	if b, ok := n.Widget.(widgets.Button); ok {
		rect := toImageRect(n.Rect)
		draw.Draw(dst, rect, image.NewUniform(r.Palette.ButtonBorder.NRGBA()), image.Point{}, draw.Src)
		draw.Draw(dst, rect.Inset(1), image.NewUniform(r.Palette.ButtonFill.NRGBA()), image.Point{}, draw.Src)
		drawLabel(dst, rect, b.Label, face, r.Palette.ButtonText)
	}
	for _, c := range n.Children {
		r.paint(dst, c, face)
	}
}

// drawLabel centers a single line of text in rect.
func drawLabel(dst *image.RGBA, rect image.Rectangle, label string, face font.Face, c Color) {
	metrics := face.Metrics()
	width := font.MeasureString(face, label)
	textHeight := metrics.Ascent + metrics.Descent
	x := fixed.I(rect.Min.X) + (fixed.I(rect.Dx())-width)/2
	y := fixed.I(rect.Min.Y) + (fixed.I(rect.Dy())-textHeight)/2 + metrics.Ascent
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.NRGBA()),
		Face: face,
		Dot:  fixed.Point26_6{X: x, Y: y},
	}
	d.DrawString(label)
}

func toImageRect(r layout.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.Left)),
		int(math.Round(r.Top)),
		int(math.Round(r.Right)),
		int(math.Round(r.Bottom)),
	)
}
