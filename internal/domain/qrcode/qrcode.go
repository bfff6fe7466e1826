package qrcode

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

const (
	MinVersion = 1
	MaxVersion = 40
)

var ErrInvalidOptions = errors.New("invalid qr options")

// Level is the error-correction level of the symbol.
type Level int

const (
	LevelL Level = iota
	LevelM
	LevelQ
	LevelH
)

func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return LevelL, nil
	case "M":
		return LevelM, nil
	case "Q":
		return LevelQ, nil
	case "H":
		return LevelH, nil
	}
	return 0, fmt.Errorf("%w: unknown error correction level %q", ErrInvalidOptions, s)
}

func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

type Options struct {
	Version    int
	Level      Level
	BoxSize    int
	Border     int
	Fit        bool
	Foreground color.Color
	Background color.Color
}

func DefaultOptions() Options {
	return Options{
		Version:    1,
		Level:      LevelL,
		BoxSize:    10,
		Border:     4,
		Fit:        true,
		Foreground: color.Black,
		Background: color.White,
	}
}

func (o Options) Validate() error {
	if o.Version < MinVersion || o.Version > MaxVersion {
		return fmt.Errorf("%w: version %d out of range %d..%d", ErrInvalidOptions, o.Version, MinVersion, MaxVersion)
	}
	if o.Level < LevelL || o.Level > LevelH {
		return fmt.Errorf("%w: level %s", ErrInvalidOptions, o.Level)
	}
	if o.BoxSize <= 0 {
		return fmt.Errorf("%w: box size must be positive", ErrInvalidOptions)
	}
	if o.Border < 0 {
		return fmt.Errorf("%w: border must not be negative", ErrInvalidOptions)
	}
	return nil
}

// Encoder turns text into an encoded raster image.
type Encoder interface {
	Encode(content string) ([]byte, error)
}

type Store interface {
	Save(path string, image []byte) error
}
