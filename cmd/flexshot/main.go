// Command flexshot lays out a TOML document headlessly and writes the
// result to a PNG.
//
//	flexshot -w 800 -h 600 -o out.png layout.toml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/phanxgames/flexui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "flexshot:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("flexshot", flag.ExitOnError)
	width := fs.Int("w", 0, "render target width (default: document window width, then 800)")
	height := fs.Int("h", 0, "render target height (default: document window height, then 600)")
	out := fs.String("o", "flexshot.png", "output PNG path")
	frames := fs.Int("frames", 1, "update passes to run before drawing")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: flexshot [flags] layout.toml")
	}
	doc, err := flexui.LoadDocumentFile(fs.Arg(0))
	if err != nil {
		return err
	}

	cfg := doc.RunConfig()
	w, h := *width, *height
	if w <= 0 {
		w = cfg.Width
	}
	if h <= 0 {
		h = cfg.Height
	}
	if w <= 0 {
		w = 800
	}
	if h <= 0 {
		h = 600
	}

	scene := flexui.NewScene(doc.Root)
	target := flexui.Vec2{X: float64(w), Y: float64(h)}
	for i := 0; i < max(1, *frames); i++ {
		scene.Update(target)
	}
	commands := scene.BuildCommands(target)

	r := flexui.NewRasterizer()
	if cfg.ClearColor != nil {
		r.Background = cfg.ClearColor
	}
	if err := r.SavePNG(*out, w, h, commands); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%dx%d, %d commands)\n", *out, w, h, len(commands))
	return nil
}
