package qrgenerator_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/domain/qrcode"
	"github.com/Xausdorf/qr-pay-hub/seller-app/internal/infrastructure/qrgenerator"
)

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func readQR(t *testing.T, img image.Image) string {
	t.Helper()
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	require.NoError(t, err)
	res, err := zxqr.NewQRCodeReader().Decode(bmp, nil)
	require.NoError(t, err)
	return res.GetText()
}

func TestGenerator_DefaultOptionsVersionOne(t *testing.T) {
	gen, err := qrgenerator.NewGenerator(qrcode.DefaultOptions())
	require.NoError(t, err)

	data, err := gen.Encode("hello")
	require.NoError(t, err)

	img := decodePNG(t, data)
	// 21 modules + 2*4 border, 10 px each.
	assert.Equal(t, image.Rect(0, 0, 290, 290), img.Bounds())

	assertColor(t, color.White, img.At(0, 0))
	// Top-left finder pattern starts right after the quiet zone.
	assertColor(t, color.Black, img.At(40, 40))
	assertColor(t, color.Black, img.At(49, 49))

	assert.Equal(t, "hello", readQR(t, img))
}

func TestGenerator_ForcedVersionAndBoxSize(t *testing.T) {
	opts := qrcode.DefaultOptions()
	opts.Version = 2
	opts.BoxSize = 3
	opts.Border = 0

	gen, err := qrgenerator.NewGenerator(opts)
	require.NoError(t, err)

	data, err := gen.Encode("hello")
	require.NoError(t, err)

	img := decodePNG(t, data)
	// Version 2 is 25 modules wide.
	assert.Equal(t, image.Rect(0, 0, 75, 75), img.Bounds())
	assertColor(t, color.Black, img.At(0, 0))
}

func TestGenerator_FitGrowsVersion(t *testing.T) {
	gen, err := qrgenerator.NewGenerator(qrcode.DefaultOptions())
	require.NoError(t, err)

	content := strings.Repeat("payment-request ", 20)
	data, err := gen.Encode(content)
	require.NoError(t, err)

	img := decodePNG(t, data)
	assert.Greater(t, img.Bounds().Dx(), 290)
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
	assert.Zero(t, img.Bounds().Dx()%10)
	assert.Equal(t, content, readQR(t, img))
}

func TestGenerator_NoFitFailsOnOverflow(t *testing.T) {
	opts := qrcode.DefaultOptions()
	opts.Fit = false

	gen, err := qrgenerator.NewGenerator(opts)
	require.NoError(t, err)

	_, err = gen.Encode(strings.Repeat("x", 100))
	require.Error(t, err)
}

func TestGenerator_TooLargeForAnyVersion(t *testing.T) {
	gen, err := qrgenerator.NewGenerator(qrcode.DefaultOptions())
	require.NoError(t, err)

	_, err = gen.Encode(strings.Repeat("x", 8000))
	require.Error(t, err)
}

func TestGenerator_Deterministic(t *testing.T) {
	gen, err := qrgenerator.NewGenerator(qrcode.DefaultOptions())
	require.NoError(t, err)

	first, err := gen.Encode(`{"type": "PAYMENT_REQUEST"}`)
	require.NoError(t, err)
	second, err := gen.Encode(`{"type": "PAYMENT_REQUEST"}`)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNewGenerator_InvalidOptions(t *testing.T) {
	opts := qrcode.DefaultOptions()
	opts.BoxSize = 0

	_, err := qrgenerator.NewGenerator(opts)
	require.ErrorIs(t, err, qrcode.ErrInvalidOptions)

	opts = qrcode.DefaultOptions()
	opts.Version = 41
	_, err = qrgenerator.NewGenerator(opts)
	require.ErrorIs(t, err, qrcode.ErrInvalidOptions)
}

func assertColor(t *testing.T, want, got color.Color) {
	t.Helper()
	wr, wg, wb, wa := want.RGBA()
	gr, gg, gb, ga := got.RGBA()
	assert.Equal(t, [4]uint32{wr, wg, wb, wa}, [4]uint32{gr, gg, gb, ga})
}
