package flexui

import (
	"fmt"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakeLoader struct {
	images map[string]*ebiten.Image
	calls  []string
}

func (f *fakeLoader) LoadImage(path string) (*ebiten.Image, error) {
	f.calls = append(f.calls, path)
	if img, ok := f.images[path]; ok {
		return img, nil
	}
	return nil, fmt.Errorf("no such image: %s", path)
}

func TestImageLoadErrorIsNotRetried(t *testing.T) {
	tex := ebiten.NewImage(4, 3)
	loader := &fakeLoader{images: map[string]*ebiten.Image{"ok.png": tex}}
	img := NewImage("img", "missing.png")
	img.Loader = loader
	var loadErr error
	var loaded *ebiten.Image
	img.OnLoadError = func(err error) { loadErr = err }
	img.OnLoad = func(tex *ebiten.Image) { loaded = tex }

	img.PreUpdate()
	img.PreUpdate()
	if img.State() != ImageError || img.Err() == nil || loadErr == nil {
		t.Fatalf("state %v err %v, want error state", img.State(), img.Err())
	}
	if len(loader.calls) != 1 {
		t.Errorf("loader called %d times, want 1", len(loader.calls))
	}
	if img.ContentSize() != (Vec2{}) {
		t.Errorf("content size = %v, want zero", img.ContentSize())
	}

	img.Source = "ok.png"
	img.PreUpdate()
	if img.State() != ImageLoaded || img.Err() != nil || img.Loaded() != tex || loaded != tex {
		t.Fatalf("state %v err %v after source change", img.State(), img.Err())
	}
	if img.ContentSize() != (Vec2{X: 4, Y: 3}) {
		t.Errorf("content size = %v, want 4x3", img.ContentSize())
	}
	if len(loader.calls) != 2 {
		t.Errorf("loader called %d times, want 2", len(loader.calls))
	}
}

func TestImageTexturePrecedence(t *testing.T) {
	fromFile := ebiten.NewImage(4, 3)
	direct := ebiten.NewImage(8, 8)
	loader := &fakeLoader{images: map[string]*ebiten.Image{"ok.png": fromFile}}
	img := NewImage("img", "ok.png")
	img.Loader = loader
	img.Texture = direct

	img.PreUpdate()
	if img.Loaded() != direct || len(loader.calls) != 0 {
		t.Fatalf("loaded %v calls %v, want direct texture and no load", img.Loaded(), loader.calls)
	}

	img.Texture = nil
	img.PreUpdate()
	if img.Loaded() != fromFile || len(loader.calls) != 1 {
		t.Errorf("after clearing Texture: loaded %v calls %v", img.Loaded(), loader.calls)
	}
}

func TestImageEmptySource(t *testing.T) {
	img := NewImage("img", "")
	img.Loader = &fakeLoader{}
	img.PreUpdate()
	if img.State() != ImageUnloaded || img.Loaded() != nil {
		t.Errorf("state %v, want unloaded", img.State())
	}
}

func TestImageAutoSizeAndDraw(t *testing.T) {
	tex := ebiten.NewImage(4, 3)
	root := box("root", 100, 100)
	img := NewImageFromTexture("img", tex)
	root.AddChild(img)
	target := Vec2{X: 100, Y: 100}
	s := updateTree(root, target)

	if got := img.Bounds(); got != (Rect{Width: 4, Height: 3}) {
		t.Errorf("bounds = %v, want 4x3 at origin", got)
	}
	var found bool
	for _, cmd := range s.BuildCommands(target) {
		if cmd.Type == CommandImage {
			found = true
			if cmd.Image != tex || cmd.Dst != img.ContentBox() {
				t.Errorf("image command = %+v", cmd)
			}
		}
	}
	if !found {
		t.Error("no image command recorded")
	}
}
