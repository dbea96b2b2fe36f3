// Package asset loads the game's images and sounds by file name.
//
// Images live under images/ and sounds under sounds/ of the asset root.
// A missing or undecodable asset is reported as a *LoadError; deciding
// that it is fatal is left to the caller.
package asset

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/disintegration/imaging"
)

const (
	ImageDir = "images"
	SoundDir = "sounds"
)

type LoadError struct {
	Kind string // "image" or "sound"
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load %s: %s: %v", e.Kind, e.Name, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ImageOptions mirror how sprites are prepared: kept with per-pixel alpha
// or flattened onto black, and optionally resized.
type ImageOptions struct {
	Alpha         bool
	Width, Height int
}

type Loader struct {
	fsys fs.FS
}

func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Image decodes images/<name> and returns it with its bounding rectangle.
func (l *Loader) Image(name string, opt ImageOptions) (image.Image, image.Rectangle, error) {
	f, err := l.fsys.Open(path.Join(ImageDir, name))
	if err != nil {
		return nil, image.Rectangle{}, &LoadError{Kind: "image", Name: name, Err: err}
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, image.Rectangle{}, &LoadError{Kind: "image", Name: name, Err: err}
	}
	if opt.Width > 0 || opt.Height > 0 {
		img = imaging.Resize(img, opt.Width, opt.Height, imaging.Lanczos)
	}
	if !opt.Alpha {
		b := img.Bounds()
		img = imaging.Overlay(imaging.New(b.Dx(), b.Dy(), color.Black), img, image.Pt(0, 0), 1.0)
	}
	return img, img.Bounds(), nil
}

// Sound returns the raw bytes of sounds/<name>; decoding belongs to the
// audio backend that plays it.
func (l *Loader) Sound(name string) ([]byte, error) {
	p := path.Join(SoundDir, name)
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, &LoadError{Kind: "sound", Name: p, Err: err}
	}
	return data, nil
}
