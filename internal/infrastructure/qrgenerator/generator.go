package qrgenerator

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	qr "github.com/skip2/go-qrcode"

	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/domain/qrcode"
)

// Generator encodes text as a QR symbol with skip2/go-qrcode and rasterizes the
// module matrix to PNG using its own box size and quiet zone.
type Generator struct {
	opts qrcode.Options
}

func NewGenerator(opts qrcode.Options) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Foreground == nil {
		opts.Foreground = color.Black
	}
	if opts.Background == nil {
		opts.Background = color.White
	}
	return &Generator{opts: opts}, nil
}

func (g *Generator) Encode(content string) ([]byte, error) {
	sym, err := g.symbol(content)
	if err != nil {
		return nil, err
	}
	sym.DisableBorder = true

	var buf bytes.Buffer
	if err := png.Encode(&buf, g.rasterize(sym.Bitmap())); err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	return buf.Bytes(), nil
}

// symbol uses the configured version and, with Fit on, the smallest larger version
// that holds the content.
func (g *Generator) symbol(content string) (*qr.QRCode, error) {
	level := recoveryLevel(g.opts.Level)

	sym, err := qr.NewWithForcedVersion(content, g.opts.Version, level)
	if err == nil {
		return sym, nil
	}
	if !g.opts.Fit {
		return nil, fmt.Errorf("qr version %d: %w", g.opts.Version, err)
	}

	for v := g.opts.Version + 1; v <= qrcode.MaxVersion; v++ {
		sym, err = qr.NewWithForcedVersion(content, v, level)
		if err == nil {
			return sym, nil
		}
	}
	return nil, fmt.Errorf("qr versions %d..%d: %w", g.opts.Version, qrcode.MaxVersion, err)
}

func (g *Generator) rasterize(bitmap [][]bool) *image.Paletted {
	box, border := g.opts.BoxSize, g.opts.Border
	side := (len(bitmap) + 2*border) * box

	img := image.NewPaletted(
		image.Rect(0, 0, side, side),
		color.Palette{g.opts.Background, g.opts.Foreground},
	)

	for row, modules := range bitmap {
		for col, dark := range modules {
			if !dark {
				continue
			}
			x0 := (col + border) * box
			y0 := (row + border) * box
			for y := y0; y < y0+box; y++ {
				for x := x0; x < x0+box; x++ {
					img.SetColorIndex(x, y, 1)
				}
			}
		}
	}
	return img
}

func recoveryLevel(l qrcode.Level) qr.RecoveryLevel {
	switch l {
	case qrcode.LevelM:
		return qr.Medium
	case qrcode.LevelQ:
		return qr.High
	case qrcode.LevelH:
		return qr.Highest
	default:
		return qr.Low
	}
}
