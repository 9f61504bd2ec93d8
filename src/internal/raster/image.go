// FILE: alin/src/internal/raster/image.go
package raster

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrHeader      = errors.New("malformed raster header")
	ErrUnsupported = errors.New("unsupported raster format")
	ErrTruncated   = errors.New("truncated pixel plane")
)

// MagicRGB is the binary RGB container tag.
const MagicRGB = "P6"

// Image is a decoded raster container. Data holds the complete container
// bytes; the pixel plane starts at Offset.
type Image struct {
	Magic    string
	Width    int
	Height   int
	MaxValue int
	Offset   int
	Data     []byte
}

// Plane returns the pixel bytes following the header.
func (img *Image) Plane() []byte {
	return img.Data[img.Offset:]
}

// PlaneSize is the exact plane length implied by the header.
func (img *Image) PlaneSize() int {
	return img.Width * img.Height * 3
}

// Complete reports whether the plane holds exactly PlaneSize bytes.
func (img *Image) Complete() bool {
	return len(img.Plane()) == img.PlaneSize()
}

// Parse reads the header of data and returns an Image sharing data as its
// backing buffer. The plane is not length-checked, so filters can still run
// on truncated or padded payloads.
func Parse(data []byte) (*Image, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: missing magic", ErrHeader)
	}

	p := headerParser{data: data, pos: 2}
	var fields [3]int
	names := [3]string{"width", "height", "max value"}
	for i := range fields {
		v, err := p.integer()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrHeader, names[i], err)
		}
		fields[i] = v
	}

	// Exactly one whitespace byte separates the header from the plane
	if p.pos < len(data) {
		if !isSpace(data[p.pos]) {
			return nil, fmt.Errorf("%w: no separator after max value", ErrHeader)
		}
		p.pos++
	}

	return &Image{
		Magic:    string(data[:2]),
		Width:    fields[0],
		Height:   fields[1],
		MaxValue: fields[2],
		Offset:   p.pos,
		Data:     data,
	}, nil
}

// Decode is the strict form of Parse: the container must be 8-bit RGB and
// the plane must be complete. Bytes beyond the plane are dropped.
func Decode(data []byte) (*Image, error) {
	img, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if img.Magic != MagicRGB {
		return nil, fmt.Errorf("%w: magic %q", ErrUnsupported, img.Magic)
	}
	if img.MaxValue < 1 || img.MaxValue > 255 {
		return nil, fmt.Errorf("%w: max value %d", ErrUnsupported, img.MaxValue)
	}
	if len(img.Plane()) < img.PlaneSize() {
		return nil, fmt.Errorf("%w: have %d bytes, want %d", ErrTruncated, len(img.Plane()), img.PlaneSize())
	}
	img.Data = img.Data[:img.Offset+img.PlaneSize()]
	return img, nil
}

// New allocates a black image with a canonical header.
func New(width, height int) *Image {
	header := Header(width, height, 255)
	data := make([]byte, len(header)+width*height*3)
	copy(data, header)
	return &Image{
		Magic:    MagicRGB,
		Width:    width,
		Height:   height,
		MaxValue: 255,
		Offset:   len(header),
		Data:     data,
	}
}

// Header renders a canonical binary RGB header.
func Header(width, height, maxValue int) []byte {
	h := make([]byte, 0, 24)
	h = append(h, MagicRGB...)
	h = append(h, '\n')
	h = strconv.AppendInt(h, int64(width), 10)
	h = append(h, ' ')
	h = strconv.AppendInt(h, int64(height), 10)
	h = append(h, '\n')
	h = strconv.AppendInt(h, int64(maxValue), 10)
	h = append(h, '\n')
	return h
}

// Encode returns the container bytes, header included, as they stand.
func (img *Image) Encode() []byte {
	return img.Data
}

type headerParser struct {
	data []byte
	pos  int
}

// skip advances over whitespace and comment lines
func (p *headerParser) skip() {
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		switch {
		case isSpace(c):
			p.pos++
		case c == '#':
			for p.pos < len(p.data) && p.data[p.pos] != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

func (p *headerParser) integer() (int, error) {
	p.skip()
	start := p.pos
	for p.pos < len(p.data) && p.data[p.pos] >= '0' && p.data[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		if p.pos >= len(p.data) {
			return 0, errors.New("unexpected end of header")
		}
		return 0, fmt.Errorf("unexpected byte %q", p.data[p.pos])
	}
	v, err := strconv.Atoi(string(p.data[start:p.pos]))
	if err != nil {
		return 0, err
	}
	if v > 1<<20 {
		return 0, fmt.Errorf("value %d out of range", v)
	}
	return v, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
