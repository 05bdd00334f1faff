package text

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validColor = `! RESEMBLETEXT
2 2
0x112233ff 0xffffffff
0x00000000 0xaabbcc99
`

const validGray = `! RESEMBLETEXT
2 1
0x10 0xfe
`

func TestDecode_ColorNotation(t *testing.T) {
	img, err := Decode(strings.NewReader(validColor))
	require.NoError(t, err)
	nrgba := img.(*image.NRGBA)
	assert.Equal(t, image.Rect(0, 0, 2, 2), nrgba.Bounds())
	assert.Equal(t, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}, nrgba.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, nrgba.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{}, nrgba.NRGBAAt(0, 1))
	assert.Equal(t, color.NRGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0x99}, nrgba.NRGBAAt(1, 1))
}

func TestDecode_GrayscaleNotation(t *testing.T) {
	img, err := Decode(strings.NewReader(validGray))
	require.NoError(t, err)
	nrgba := img.(*image.NRGBA)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}, nrgba.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 0xfe, G: 0xfe, B: 0xfe, A: 0xff}, nrgba.NRGBAAt(1, 0))
}

func TestDecode_Invalid(t *testing.T) {
	for name, src := range map[string]string{
		"wrong header":  "! SOMETHINGELSE\n1 1\n0x00\n",
		"no dimensions": "! RESEMBLETEXT\n",
		"bad pixel":     "! RESEMBLETEXT\n1 1\n123456\n",
		"short pixel":   "! RESEMBLETEXT\n1 1\n0x123\n",
		"short row":     "! RESEMBLETEXT\n2 1\n0x00\n",
		"too many rows": "! RESEMBLETEXT\n1 1\n0x00\n0x00\n",
		"too few rows":  "! RESEMBLETEXT\n1 2\n0x00\n",
	} {
		_, err := Decode(strings.NewReader(src))
		assert.Error(t, err, name)
	}
}

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(validColor))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Width)
	assert.Equal(t, 2, cfg.Height)
	assert.Equal(t, color.NRGBAModel, cfg.ColorModel)
}

func TestEncode_ThenDecode_RoundTrips(t *testing.T) {
	orig := MustToNRGBA(validColor)
	buf := &bytes.Buffer{}
	require.NoError(t, Encode(buf, orig))
	back, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, orig, back.(*image.NRGBA))
}

func TestMustToNRGBA_PanicsOnBadData(t *testing.T) {
	assert.Panics(t, func() {
		MustToNRGBA("not an image")
	})
}
