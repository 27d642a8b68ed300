package landing

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOGImageCard(t *testing.T) {
	data, err := renderOGImage(t.TempDir(), "FashFlow", "Human‑Like Automation — for Depop")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, ogWidth, ogHeight), img.Bounds())

	r, g, b, _ := img.At(5, 5).RGBA()
	assert.Equal(t, [3]uint32{0x11, 0x18, 0x27}, [3]uint32{r >> 8, g >> 8, b >> 8})
}

func TestRenderOGImageFromSource(t *testing.T) {
	dir := t.TempDir()
	src := image.NewRGBA(image.Rect(0, 0, 400, 400))
	for y := 0; y < 400; y++ {
		for x := 0; x < 400; x++ {
			src.Set(x, y, color.RGBA{0, 0xff, 0, 0xff})
		}
	}
	f, err := os.Create(filepath.Join(dir, "og-source.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	data, err := renderOGImage(dir, "FashFlow", "tagline")
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, ogWidth, img.Bounds().Dx())

	_, g, _, _ := img.At(ogWidth/2, ogHeight/2).RGBA()
	assert.Equal(t, uint32(0xff), g>>8)
}

func TestRenderOGImageBadSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "og-source.png"), []byte("not a png"), 0o644))
	_, err := renderOGImage(dir, "FashFlow", "tagline")
	assert.ErrorContains(t, err, "og-source.png")
}

func TestCoverRect(t *testing.T) {
	// Wide source is cropped horizontally.
	assert.Equal(t, image.Rect(50, 0, 250, 100), coverRect(image.Rect(0, 0, 300, 100), 2, 1))
	// Tall source is cropped vertically.
	assert.Equal(t, image.Rect(0, 75, 100, 125), coverRect(image.Rect(0, 0, 100, 200), 2, 1))
}

func TestAsciiFold(t *testing.T) {
	assert.Equal(t, `Human-Like - Don't "x"`, asciiFold("Human‑Like — Don’t “x”"))
	assert.Equal(t, "caf", asciiFold("café"))
}

func TestRenderFavicon(t *testing.T) {
	data, err := renderFavicon("fashflow")
	require.NoError(t, err)

	var header struct{ Reserved, Type, Count uint16 }
	require.NoError(t, binary.Read(bytes.NewReader(data[:6]), binary.LittleEndian, &header))
	assert.Equal(t, uint16(1), header.Type)
	assert.Equal(t, uint16(1), header.Count)
	assert.Equal(t, byte(faviconSize), data[6])

	img, err := png.Decode(bytes.NewReader(data[22:]))
	require.NoError(t, err)
	assert.Equal(t, faviconSize, img.Bounds().Dx())
}

func TestEncodeICO(t *testing.T) {
	data, err := encodeICO([]byte("png"), 256)
	require.NoError(t, err)
	require.Len(t, data, 22+3)
	// 256 px is stored as 0.
	assert.Equal(t, byte(0), data[6])
	assert.Equal(t, uint32(3), binary.LittleEndian.Uint32(data[14:18]))
	assert.Equal(t, uint32(22), binary.LittleEndian.Uint32(data[18:22]))
	assert.Equal(t, "png", string(data[22:]))
}
