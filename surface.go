package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/gg"
)

// ErrNoSurface is returned when the drawing surface cannot be acquired.
var ErrNoSurface = errors.New("drawing surface unavailable")

// GradientStop is one color stop of a radial fill, offset in [0,1].
type GradientStop struct {
	Offset float64
	Color  color.Color
}

// Surface is the 2D drawing target of the fireworks simulation.
type Surface interface {
	Size() (width, height int)
	Clear()
	FillRect(x, y, w, h float64, c color.Color)
	// FillRadial fills a circle of radius r at (x, y) with a radial gradient
	// from the center outwards, scaled by alpha.
	FillRadial(x, y, r float64, stops []GradientStop, alpha float64)
}

// ggSurface is a Surface backed by an in-memory gg context.
type ggSurface struct {
	dc *gg.Context
}

func NewGGSurface(width, height int) (*ggSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface %dx%d: %w", width, height, ErrNoSurface)
	}
	return &ggSurface{dc: gg.NewContext(width, height)}, nil
}

func (s *ggSurface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

// Resize replaces the backing context. Contents are dropped.
func (s *ggSurface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("surface %dx%d: %w", width, height, ErrNoSurface)
	}
	if width == s.dc.Width() && height == s.dc.Height() {
		return nil
	}
	s.dc = gg.NewContext(width, height)
	return nil
}

func (s *ggSurface) Clear() {
	s.dc.SetColor(color.Transparent)
	s.dc.Clear()
}

func (s *ggSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

func (s *ggSurface) FillRadial(x, y, r float64, stops []GradientStop, alpha float64) {
	if alpha <= 0 || r <= 0 {
		return
	}
	grad := gg.NewRadialGradient(x, y, 0, x, y, r)
	for _, st := range stops {
		grad.AddColorStop(st.Offset, withAlpha(st.Color, alpha))
	}
	s.dc.SetFillStyle(grad)
	s.dc.DrawCircle(x, y, r)
	s.dc.Fill()
}

func (s *ggSurface) Image() image.Image {
	return s.dc.Image()
}

// withAlpha scales a color's alpha by a in [0,1].
func withAlpha(c color.Color, a float64) color.Color {
	a = clamp01(a)
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*a + 0.5)
	return n
}

// renderHalfBlocks down-samples img onto cols x rows terminal cells. Each cell
// shows two vertically stacked pixels as an upper half block, foreground the
// top half and background the bottom half. A block's color is the per-channel
// maximum of the pixels it covers so small sparks stay visible.
func renderHalfBlocks(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}
	b := img.Bounds()
	blockW := b.Dx() / cols
	blockH := b.Dy() / (rows * 2)
	if blockW < 1 {
		blockW = 1
	}
	if blockH < 1 {
		blockH = 1
	}

	styles := make(map[[2]color.RGBA]lipgloss.Style)
	var sb strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x0 := b.Min.X + col*blockW
			top := blockMax(img, x0, b.Min.Y+row*2*blockH, blockW, blockH)
			bottom := blockMax(img, x0, b.Min.Y+(row*2+1)*blockH, blockW, blockH)
			if isBlack(top) && isBlack(bottom) {
				sb.WriteByte(' ')
				continue
			}
			key := [2]color.RGBA{top, bottom}
			st, ok := styles[key]
			if !ok {
				st = lipgloss.NewStyle().
					Foreground(lipgloss.Color(hexColor(top))).
					Background(lipgloss.Color(hexColor(bottom)))
				styles[key] = st
			}
			sb.WriteString(st.Render("▀"))
		}
		if row < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func blockMax(img image.Image, x0, y0, w, h int) color.RGBA {
	var out color.RGBA
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok {
		for y := y0; y < y0+h && y < b.Max.Y; y++ {
			off := rgba.PixOffset(x0, y)
			for x := x0; x < x0+w && x < b.Max.X; x++ {
				px := rgba.Pix[off : off+4 : off+4]
				out.R = max(out.R, px[0])
				out.G = max(out.G, px[1])
				out.B = max(out.B, px[2])
				off += 4
			}
		}
		out.A = 255
		return out
	}
	for y := y0; y < y0+h && y < b.Max.Y; y++ {
		for x := x0; x < x0+w && x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			out.R = max(out.R, c.R)
			out.G = max(out.G, c.G)
			out.B = max(out.B, c.B)
		}
	}
	out.A = 255
	return out
}

func isBlack(c color.RGBA) bool {
	return c.R < 8 && c.G < 8 && c.B < 8
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
