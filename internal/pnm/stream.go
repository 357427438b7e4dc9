package pnm

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// writerBufferSize keeps output syscalls coarse when streaming large rasters.
const writerBufferSize = 256 * 1024

// Reader decodes one raster row per call. Sixteen-bit samples are stored
// big-endian in the container and converted to native values on read.
type Reader[T Sample] struct {
	r   io.Reader
	buf []byte
}

// NewReader returns a row reader for a raster of the given pixel width.
// The header must already have been consumed from r.
func NewReader[T Sample](r io.Reader, width int) *Reader[T] {
	return &Reader[T]{
		r:   r,
		buf: make([]byte, width*channels*bytesPerSample[T]()),
	}
}

// ReadRow reads the next row of interleaved samples into dst, which must
// hold exactly width*3 samples.
func (rd *Reader[T]) ReadRow(dst []T) error {
	if _, err := io.ReadFull(rd.r, rd.buf); err != nil {
		return fmt.Errorf("%w: truncated pixel data", ErrFormat)
	}
	switch dst := any(dst).(type) {
	case []uint8:
		copy(dst, rd.buf)
	case []uint16:
		for i := range dst {
			dst[i] = binary.BigEndian.Uint16(rd.buf[2*i:])
		}
	}
	return nil
}

// Writer encodes a P6 raster row by row through a buffered writer. Flush
// must be called after the last row.
type Writer[T Sample] struct {
	bw  *bufio.Writer
	buf []byte
}

// NewWriter writes the P6 header for the given geometry and returns a row
// writer. The maxval is chosen by the sample depth.
func NewWriter[T Sample](w io.Writer, width, height int) (*Writer[T], error) {
	bw := bufio.NewWriterSize(w, writerBufferSize)
	_, err := fmt.Fprintf(bw, "P6\n%s\n%d %d\n%d\n", toolComment, width, height, MaxValFor[T]())
	if err != nil {
		return nil, err
	}
	return &Writer[T]{
		bw:  bw,
		buf: make([]byte, width*channels*bytesPerSample[T]()),
	}, nil
}

// WriteRow encodes one row of interleaved samples.
func (wr *Writer[T]) WriteRow(row []T) error {
	switch row := any(row).(type) {
	case []uint8:
		copy(wr.buf, row)
	case []uint16:
		for i, v := range row {
			binary.BigEndian.PutUint16(wr.buf[2*i:], v)
		}
	}
	_, err := wr.bw.Write(wr.buf)
	return err
}

// Flush drains the internal buffer to the underlying writer.
func (wr *Writer[T]) Flush() error {
	return wr.bw.Flush()
}
