package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-drift/blocks/pkg/rendering"
	"github.com/go-drift/blocks/pkg/screen"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Write a PNG snapshot of the screen",
		Long: `Create the screen with an image renderer and write the frame as PNG.

Flags:
  --out FILE     Output file, or - for standard output (default: screen.png)
  --width W      Frame width in pixels (default: screen.width from blocks.yaml)
  --height H     Frame height in pixels (default: screen.height from blocks.yaml)`,
		Usage: "blocks render [--out FILE] [--width W] [--height H]",
		Run:   runRender,
	})
}

type renderOptions struct {
	out    string
	width  int
	height int
}

func parseRenderArgs(args []string) (renderOptions, error) {
	opts := renderOptions{out: "screen.png"}
	for i := 0; i < len(args); i++ {
		var err error
		switch name := flagName(args[i]); name {
		case "--out":
			opts.out, i, err = stringFlag(args, i, name)
		case "--width":
			opts.width, i, err = intFlag(args, i, name)
		case "--height":
			opts.height, i, err = intFlag(args, i, name)
		default:
			err = fmt.Errorf("unknown argument %q", args[i])
		}
		if err != nil {
			return opts, err
		}
	}
	if opts.width < 0 || opts.height < 0 {
		return opts, fmt.Errorf("frame size must be positive (got %dx%d)", opts.width, opts.height)
	}
	return opts, nil
}

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if opts.width == 0 {
		opts.width = cfg.ScreenWidth
	}
	if opts.height == 0 {
		opts.height = cfg.ScreenHeight
	}

	r := rendering.NewImageRenderer(opts.width, opts.height)
	if err := screen.New("main", r).OnCreate(nil); err != nil {
		return err
	}

	if opts.out == "-" {
		return r.WritePNG(stdout)
	}
	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", opts.out, err)
	}
	if err := writeAndClose(f, r); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %dx%d snapshot to %s\n", opts.width, opts.height, opts.out)
	return nil
}

func writeAndClose(f io.WriteCloser, r *rendering.ImageRenderer) error {
	if err := r.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
