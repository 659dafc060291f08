package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// exportSnapshotPNG writes the current fireworks frame with a caption line.
func exportSnapshotPNG(filename string, surface *ggSurface, caption string) error {
	if surface == nil {
		return fmt.Errorf("nothing to export: %w", ErrNoSurface)
	}
	width, height := surface.Size()

	// Character cell dimensions (pixels per character)
	charHeight := float64(cellHeight)
	captionHeight := int(charHeight * 2)

	dc := gg.NewContext(width, height+captionHeight)
	dc.SetColor(color.Black)
	dc.Clear()
	dc.DrawImage(surface.Image(), 0, 0)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12.0,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	dc.SetColor(color.White)
	dc.DrawStringAnchored(caption, float64(width)/2, float64(height)+charHeight, 0.5, 0.5)

	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

// exportCountdownTXT writes the countdown line exactly as it is copied.
func exportCountdownTXT(filename, text string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := fmt.Fprintln(file, text); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}
