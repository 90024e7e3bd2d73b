// Package widgets describes screen content as plain values.
//
// A widget tree says what a screen shows, not how a toolkit builds it:
//
//	widgets.Column(widgets.GravityCenter,
//	    widgets.Child{
//	        Widget: widgets.Button{Label: "Button!"},
//	        Params: widgets.WrapContent(),
//	    },
//	)
//
// Renderers in pkg/rendering turn a tree into native views (over a platform
// channel), a text dump, or an image. Trees round-trip through [Encode] and
// [Decode] so a native host can rebuild them with its own toolkit.
//
// Widgets are values. Building a tree never touches the host, so
// construction cannot fail.
package widgets
