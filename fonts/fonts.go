package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Title   FontName = "title"
	Small   FontName = "small"
	Mono    FontName = "mono"
)

// Get returns the loaded face wrapped for text/v2 drawing.
func (f FontName) Get() text.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]text.Face{}
)

// LoadDefaults parses the bundled Go fonts at the sizes the game uses.
// The menu uses Title, Regular and Small; the HUD uses Mono.
func LoadDefaults(hudSize float64) error {
	sizes := []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{Title, goregular.TTF, 18},
		{Regular, goregular.TTF, 12},
		{Small, goregular.TTF, 10},
		{Mono, gomono.TTF, hudSize},
	}
	for _, s := range sizes {
		if err := LoadFontWithSize(s.name, s.ttf, s.size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	var face font.Face = truetype.NewFace(fontData, &truetype.Options{Size: size})
	fonts[name] = text.NewGoXFace(face)
	return nil
}

func getFont(name FontName) text.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
