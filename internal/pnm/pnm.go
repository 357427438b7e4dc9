// Package pnm implements the subset of the binary PPM (P6) container the
// upscaler exchanges with the outside world: three-channel rasters with
// 8-bit samples (maxval 255) or big-endian 16-bit samples (maxval 65535).
//
// Only row-at-a-time access is provided; the callers stream rows through
// the kernel rather than holding whole images.
package pnm

import (
	"errors"
	"fmt"
	"io"
)

const (
	// channels per pixel; the container always carries RGB here.
	channels = 3

	// MaxVal8 and MaxVal16 are the declared maximum sample values of the
	// two supported depth variants.
	MaxVal8  = 255
	MaxVal16 = 65535

	// toolComment is the fixed comment line written into output headers.
	toolComment = "# created by eanbqh"

	// maxHeaderDigits bounds a header field; anything longer is junk.
	maxHeaderDigits = 10
)

// ErrFormat reports malformed or unsupported PPM data.
var ErrFormat = errors.New("invalid PPM data")

// Sample constrains the pixel sample depths the container supports.
type Sample interface {
	uint8 | uint16
}

// Header holds the parsed P6 header fields.
type Header struct {
	Width, Height int
	MaxVal        int
}

// byteReader is the reader surface header parsing needs; *bufio.Reader
// satisfies it.
type byteReader interface {
	io.Reader
	ReadByte() (byte, error)
	UnreadByte() error
}

// ReadHeader parses a binary-mode PPM (P6) header: the magic bytes,
// optional comment lines, the two dimensions, the maximum sample value,
// and the single whitespace byte that separates the header from pixel
// data. Comment lines may appear between the magic and the width, mirroring
// the reference tool. MaxVal must be 255 or 65535.
func ReadHeader(r byteReader) (Header, error) {
	var magic [2]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return Header{}, fmt.Errorf("%w: missing magic bytes", ErrFormat)
	}
	if magic[0] != 'P' || magic[1] != '6' {
		return Header{}, fmt.Errorf("%w: not a binary-mode PPM (P6) file", ErrFormat)
	}

	width, err := readHeaderField(r, true)
	if err != nil {
		return Header{}, err
	}
	height, err := readHeaderField(r, false)
	if err != nil {
		return Header{}, err
	}
	maxVal, err := readHeaderField(r, false)
	if err != nil {
		return Header{}, err
	}

	// Exactly one whitespace byte separates the header from pixel data.
	b, err := r.ReadByte()
	if err != nil || !isSpace(b) {
		return Header{}, fmt.Errorf("%w: header not terminated by whitespace", ErrFormat)
	}

	if width <= 0 || height <= 0 {
		return Header{}, fmt.Errorf("%w: non-positive dimensions %dx%d", ErrFormat, width, height)
	}
	if maxVal != MaxVal8 && maxVal != MaxVal16 {
		return Header{}, fmt.Errorf("%w: unsupported maxval %d", ErrFormat, maxVal)
	}

	return Header{Width: width, Height: height, MaxVal: maxVal}, nil
}

// readHeaderField skips whitespace (and, before the first field, comment
// lines) and reads one unsigned decimal field.
func readHeaderField(r byteReader, allowComments bool) (int, error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("%w: truncated header", ErrFormat)
		}
		switch {
		case isSpace(b):
			continue
		case allowComments && b == '#':
			if err := skipCommentLine(r); err != nil {
				return 0, err
			}
		case b >= '0' && b <= '9':
			if err := r.UnreadByte(); err != nil {
				return 0, err
			}
			return readHeaderInt(r)
		default:
			return 0, fmt.Errorf("%w: non-numeric header field", ErrFormat)
		}
	}
}

func skipCommentLine(r byteReader) error {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return fmt.Errorf("%w: truncated header", ErrFormat)
		}
		if b == '\n' {
			return nil
		}
	}
}

func readHeaderInt(r byteReader) (int, error) {
	v := 0
	for digits := 0; ; digits++ {
		b, err := r.ReadByte()
		if err != nil {
			// EOF ends the field; validity is checked by the caller.
			return v, nil
		}
		if b < '0' || b > '9' {
			if err := r.UnreadByte(); err != nil {
				return 0, err
			}
			return v, nil
		}
		if digits == maxHeaderDigits {
			return 0, fmt.Errorf("%w: header field too long", ErrFormat)
		}
		v = v*10 + int(b-'0')
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// MaxValFor returns the declared maximum sample value of a depth variant.
func MaxValFor[T Sample]() int {
	if bytesPerSample[T]() == 1 {
		return MaxVal8
	}
	return MaxVal16
}

func bytesPerSample[T Sample]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	default:
		panic("pnm: unsupported sample type")
	}
}
