package landing

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	ogWidth     = 1200
	ogHeight    = 630
	ogMargin    = 80
	faviconSize = 32
)

// ogSourceNames are tried in order under the static dir; the first that
// exists is cropped and scaled into the preview image.
var ogSourceNames = []string{"og-source.png", "og-source.jpg", "og-source.jpeg", "og-source.gif"}

var (
	ink   = color.RGBA{0x11, 0x18, 0x27, 0xff} // gray-900
	paper = color.RGBA{0xff, 0xff, 0xff, 0xff}
	muted = color.RGBA{0xd1, 0xd5, 0xdb, 0xff} // gray-300
)

// renderOGImage builds the 1200x630 Open Graph preview as PNG. A source
// image in staticDir wins; otherwise a card with name and tagline is drawn.
func renderOGImage(staticDir, name, tagline string) ([]byte, error) {
	src, err := loadOGSource(staticDir)
	if err != nil {
		return nil, err
	}
	dst := image.NewRGBA(image.Rect(0, 0, ogWidth, ogHeight))
	if src != nil {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, coverRect(src.Bounds(), ogWidth, ogHeight), draw.Over, nil)
	} else {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(ink), image.Point{}, draw.Src)
		drawText(dst, name, ogMargin, 170, 12, paper)
		drawText(dst, tagline, ogMargin, 390, 0, muted)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode og image: %w", err)
	}
	return buf.Bytes(), nil
}

func loadOGSource(staticDir string) (image.Image, error) {
	for _, n := range ogSourceNames {
		f, err := os.Open(filepath.Join(staticDir, n))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", n, err)
		}
		return img, nil
	}
	return nil, nil
}

// coverRect returns the centred region of b with the aspect ratio w:h, so
// scaling it to w x h fills the frame without distortion.
func coverRect(b image.Rectangle, w, h int) image.Rectangle {
	sw, sh := b.Dx(), b.Dy()
	if sw*h > sh*w {
		cw := sh * w / h
		x := b.Min.X + (sw-cw)/2
		return image.Rect(x, b.Min.Y, x+cw, b.Max.Y)
	}
	ch := sw * h / w
	y := b.Min.Y + (sh-ch)/2
	return image.Rect(b.Min.X, y, b.Max.X, y+ch)
}

// drawText renders s with the 7x13 bitmap face and scales it up by scale
// with nearest-neighbour sampling, top-left at (x, y). A scale of 0 picks
// the largest integer scale that fits between the margins.
func drawText(dst *image.RGBA, s string, x, y, scale int, col color.Color) {
	s = asciiFold(s)
	face := basicfont.Face7x13
	width := font.MeasureString(face, s).Ceil()
	height := face.Metrics().Height.Ceil()
	if width == 0 {
		return
	}
	if scale <= 0 {
		scale = (dst.Bounds().Dx() - x - ogMargin) / width
		if scale < 1 {
			scale = 1
		}
	}

	glyphs := image.NewRGBA(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)

	target := image.Rect(x, y, x+width*scale, y+height*scale)
	draw.NearestNeighbor.Scale(dst, target, glyphs, glyphs.Bounds(), draw.Over, nil)
}

// asciiFold replaces typographic punctuation the bitmap face cannot draw.
func asciiFold(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '‐', '‑', '‒', '–', '—':
			return '-'
		case '‘', '’':
			return '\''
		case '“', '”':
			return '"'
		}
		if r > 0x7e {
			return -1
		}
		return r
	}, s)
}

// renderFavicon draws the site initial on a dark square and wraps the PNG
// in a single-entry ICO container.
func renderFavicon(name string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, faviconSize, faviconSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(ink), image.Point{}, draw.Src)
	initial := "F"
	if folded := asciiFold(name); folded != "" {
		initial = strings.ToUpper(folded[:1])
	}
	// 7x13 glyph at 2x is 14x26, centred.
	drawText(img, initial, (faviconSize-14)/2, (faviconSize-26)/2, 2, paper)

	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		return nil, fmt.Errorf("encode favicon: %w", err)
	}
	return encodeICO(pngBuf.Bytes(), faviconSize)
}

// encodeICO wraps one PNG image of size x size pixels in an ICO file.
func encodeICO(pngData []byte, size int) ([]byte, error) {
	var buf bytes.Buffer
	header := struct {
		Reserved, Type, Count uint16
	}{0, 1, 1}
	entry := struct {
		Width, Height, Colors, Reserved uint8
		Planes, BitCount                uint16
		BytesInRes, ImageOffset         uint32
	}{
		Width:       uint8(size % 256),
		Height:      uint8(size % 256),
		Planes:      1,
		BitCount:    32,
		BytesInRes:  uint32(len(pngData)),
		ImageOffset: 6 + 16,
	}
	if err := binary.Write(&buf, binary.LittleEndian, header); err != nil {
		return nil, fmt.Errorf("encode ico header: %w", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, entry); err != nil {
		return nil, fmt.Errorf("encode ico entry: %w", err)
	}
	buf.Write(pngData)
	return buf.Bytes(), nil
}
