package renderqr

import (
	"bytes"
	"errors"
	"log/slog"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/domain/paymentrequest"
	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/domain/qrcode"
)

//go:generate mockgen -source=../../domain/qrcode/qrcode.go -destination=mocks/qrcode.go -package=mocks

const DefaultPath = "payment_qr.png"

const indent = "    "

type Request struct {
	Record *paymentrequest.Record
	Path   string
}

type MarshalFunc func(*paymentrequest.Record) ([]byte, error)

type Option func(*UseCase)

func WithLogger(logger *slog.Logger) Option {
	return func(uc *UseCase) {
		uc.logger = logger
	}
}

func WithMarshal(fn MarshalFunc) Option {
	return func(uc *UseCase) {
		uc.marshal = fn
	}
}

type UseCase struct {
	encoder qrcode.Encoder
	store   qrcode.Store
	marshal MarshalFunc
	logger  *slog.Logger
}

func NewUseCase(encoder qrcode.Encoder, store qrcode.Store, opts ...Option) *UseCase {
	uc := &UseCase{
		encoder: encoder,
		store:   store,
		marshal: MarshalRecord,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute renders the record to a QR image at req.Path, or DefaultPath when empty,
// and returns the path written. Failures are logged and returned as *RenderError.
func (uc *UseCase) Execute(req Request) (string, error) {
	const op = "RenderQR.Execute"

	path := req.Path
	if path == "" {
		path = DefaultPath
	}
	log := uc.logger.With("op", op, "path", path)

	content, err := uc.marshal(req.Record)
	if err != nil {
		return "", uc.fail(log, StageSerialize, path, err)
	}

	image, err := uc.encoder.Encode(string(content))
	if err != nil {
		return "", uc.fail(log, StageEncode, path, err)
	}

	if err := uc.store.Save(path, image); err != nil {
		return "", uc.fail(log, StageWrite, path, err)
	}

	log.Info("qr code saved", "bytes", len(image))
	return path, nil
}

func (uc *UseCase) fail(log *slog.Logger, stage Stage, path string, err error) error {
	log.Error("qr render failed", "stage", string(stage), "error", err)
	return &RenderError{Stage: stage, Path: path, Err: err}
}

// MarshalRecord is the JSON text embedded in the QR code: four-space indentation,
// no HTML escaping, non-ASCII characters as \u escapes so the payload stays
// readable in QR byte mode without an ECI header.
func MarshalRecord(rec *paymentrequest.Record) ([]byte, error) {
	if rec == nil {
		return nil, errors.New("nil payment request record")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(rec); err != nil {
		return nil, err
	}
	return escapeNonASCII(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// escapeNonASCII rewrites every non-ASCII rune as a \uXXXX escape, using surrogate
// pairs above the BMP. Non-ASCII bytes only occur inside JSON strings.
func escapeNonASCII(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for len(b) > 0 {
		if b[0] < utf8.RuneSelf {
			out = append(out, b[0])
			b = b[1:]
			continue
		}
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
			out = appendUnicodeEscape(out, r1)
			out = appendUnicodeEscape(out, r2)
			continue
		}
		out = appendUnicodeEscape(out, r)
	}
	return out
}

func appendUnicodeEscape(out []byte, r rune) []byte {
	const hex = "0123456789abcdef"
	return append(out, '\\', 'u', hex[r>>12&0xf], hex[r>>8&0xf], hex[r>>4&0xf], hex[r&0xf])
}
