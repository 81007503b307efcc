package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontSource *text.GoTextFaceSource
	fontFaces  map[float64]*text.GoTextFace
)

// LoadFont returns the TTF data of the named system font, falling back to
// the bundled Go font when it cannot be found.
func LoadFont(name string) []byte {
	if name == "" {
		return goregular.TTF
	}
	path, err := findfont.Find(name + ".ttf")
	if err != nil {
		log.Printf("font %q not found, using built-in: %v", name, err)
		return goregular.TTF
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("read font %s: %v", path, err)
		return goregular.TTF
	}
	return data
}

func InitFonts(ttfData []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	fontSource = src
	fontFaces = make(map[float64]*text.GoTextFace)
	return nil
}

func GetFace(size float64) *text.GoTextFace {
	if face, ok := fontFaces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source: fontSource,
		Size:   size,
	}
	fontFaces[size] = face
	return face
}

func DrawText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	face := GetFace(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, txt, face, op)
}

func DrawTextCentered(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color) {
	w, h := MeasureText(txt, size)
	DrawText(dst, txt, cx-w/2, cy-h/2, size, clr)
}

func MeasureText(txt string, size float64) (float64, float64) {
	face := GetFace(size)
	return text.Measure(txt, face, 0)
}

// Truncate shortens txt with an ellipsis until it fits maxWidth.
func Truncate(txt string, size, maxWidth float64) string {
	if w, _ := MeasureText(txt, size); w <= maxWidth {
		return txt
	}
	runes := []rune(txt)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		s := strings.TrimRight(string(runes), " ") + "…"
		if w, _ := MeasureText(s, size); w <= maxWidth {
			return s
		}
	}
	return ""
}

func DrawTextWrapped(dst *ebiten.Image, txt string, x, y, maxWidth float64, size float64, clr color.Color) float64 {
	face := GetFace(size)
	lineHeight := face.Size * 1.4
	words := strings.Fields(txt)
	if len(words) == 0 {
		return 0
	}

	line := words[0]
	cy := y
	for _, word := range words[1:] {
		test := line + " " + word
		w, _ := text.Measure(test, face, 0)
		if w > maxWidth {
			DrawText(dst, line, x, cy, size, clr)
			cy += lineHeight
			line = word
		} else {
			line = test
		}
	}
	DrawText(dst, line, x, cy, size, clr)
	cy += lineHeight
	return cy - y
}
