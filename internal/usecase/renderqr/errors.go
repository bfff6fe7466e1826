package renderqr

import (
	"errors"
	"fmt"
)

type Stage string

const (
	StageSerialize Stage = "serialize"
	StageEncode    Stage = "encode"
	StageWrite     Stage = "write"
)

var (
	ErrSerialize = errors.New("serialization failed")
	ErrEncode    = errors.New("qr encoding failed")
	ErrWrite     = errors.New("file write failed")
)

// RenderError tags a render failure with the stage that produced it.
type RenderError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

func (e *RenderError) Is(target error) bool {
	switch target {
	case ErrSerialize:
		return e.Stage == StageSerialize
	case ErrEncode:
		return e.Stage == StageEncode
	case ErrWrite:
		return e.Stage == StageWrite
	}
	return false
}
