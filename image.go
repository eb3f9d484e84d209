package flexui

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ImageLoader is the texture load service used by Image.
type ImageLoader interface {
	LoadImage(path string) (*ebiten.Image, error)
}

// FileImageLoader loads PNG, JPEG and GIF files from disk.
type FileImageLoader struct{}

// LoadImage implements ImageLoader.
func (FileImageLoader) LoadImage(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	return img, nil
}

// ImageState is the load state of an Image widget.
type ImageState uint8

const (
	ImageUnloaded ImageState = iota
	ImageLoaded
	ImageError
)

// Image draws a texture stretched over its content box. The texture is either
// supplied directly through Texture or loaded from Source. A failed load
// leaves the widget in ImageError until Source changes; it is never retried.
type Image struct {
	Node
	Source  string
	Texture *ebiten.Image
	Loader  ImageLoader

	OnLoad      func(*ebiten.Image)
	OnLoadError func(error)

	tex       *ebiten.Image
	state     ImageState
	err       error
	loadedSrc string
	loadedTex *ebiten.Image
}

// NewImage creates an image widget that loads source with FileImageLoader.
// Width and height default to Auto, sizing the node to the texture.
func NewImage(id, source string) *Image {
	img := &Image{Source: source, Loader: FileImageLoader{}}
	img.ID = id
	img.Layout.Width = Auto()
	img.Layout.Height = Auto()
	return img
}

// NewImageFromTexture creates an image widget around an existing texture.
func NewImageFromTexture(id string, tex *ebiten.Image) *Image {
	img := NewImage(id, "")
	img.Texture = tex
	return img
}

// State returns the load state.
func (i *Image) State() ImageState { return i.state }

// Err returns the last load error, or nil.
func (i *Image) Err() error { return i.err }

// Loaded returns the texture being drawn, or nil.
func (i *Image) Loaded() *ebiten.Image { return i.tex }

// PreUpdate snapshots Layout and Style, loads the texture when its source changed
// and records the texture size as content size.
func (i *Image) PreUpdate() {
	i.Node.PreUpdate()
	i.sync()
	if i.tex == nil {
		i.SetContentSize(Vec2{})
		return
	}
	b := i.tex.Bounds()
	i.SetContentSize(Vec2{X: float64(b.Dx()), Y: float64(b.Dy())})
}

func (i *Image) sync() {
	if i.Texture != nil {
		if i.Texture != i.loadedTex {
			i.loadedTex = i.Texture
			i.loadedSrc = ""
			i.setLoaded(i.Texture)
		}
		return
	}
	if i.loadedTex != nil {
		// Handle was cleared; fall back to Source.
		i.loadedTex = nil
		i.tex = nil
		i.state = ImageUnloaded
	}
	if i.Source == "" {
		i.tex, i.err, i.loadedSrc = nil, nil, ""
		i.state = ImageUnloaded
		return
	}
	if i.Source == i.loadedSrc && i.state != ImageUnloaded {
		return
	}
	i.loadedSrc = i.Source
	loader := i.Loader
	if loader == nil {
		loader = FileImageLoader{}
	}
	tex, err := loader.LoadImage(i.Source)
	if err != nil {
		i.tex = nil
		i.err = err
		i.state = ImageError
		if globalDebug {
			log.Printf("flexui: image %q: %v", i.ID, err)
		}
		if i.OnLoadError != nil {
			i.OnLoadError(err)
		}
		return
	}
	i.setLoaded(tex)
}

func (i *Image) setLoaded(tex *ebiten.Image) {
	i.tex = tex
	i.err = nil
	i.state = ImageLoaded
	if i.OnLoad != nil {
		i.OnLoad(tex)
	}
}

// Draw draws the node's box and then the texture over the content box.
func (i *Image) Draw(dc *DrawContext) {
	i.Node.Draw(dc)
	if i.tex != nil {
		dc.DrawImage(i.tex, i.ContentBox())
	}
}
