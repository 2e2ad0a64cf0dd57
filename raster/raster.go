package raster

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cwbudde/algo-kernel2d/kernel"
)

const (
	tagImageWidth      = 256
	tagImageLength     = 257
	tagBitsPerSample   = 258
	tagCompression     = 259
	tagPhotometric     = 262
	tagStripOffsets    = 273
	tagSamplesPerPixel = 277
	tagRowsPerStrip    = 278
	tagStripByteCounts = 279
	tagSampleFormat    = 339

	typeShort = 3
	typeLong  = 4

	sampleFormatIEEEFP = 3
	headerSize         = 8
)

type ifdEntry struct {
	tag   uint16
	typ   uint16
	value uint32
}

// Write encodes m as an uncompressed single-band 64-bit IEEE floating-point
// TIFF. Pixel data precedes the IFD so the strip always starts at offset 8.
func Write(w io.Writer, m kernel.Matrix) error {
	n := len(m)
	if n == 0 {
		return fmt.Errorf("raster: empty kernel")
	}
	for _, row := range m {
		if len(row) != n {
			return fmt.Errorf("raster: kernel is not square")
		}
	}

	dataLen := n * n * 8
	entries := []ifdEntry{
		{tagImageWidth, typeLong, uint32(n)},
		{tagImageLength, typeLong, uint32(n)},
		{tagBitsPerSample, typeShort, 64},
		{tagCompression, typeShort, 1},
		{tagPhotometric, typeShort, 1},
		{tagStripOffsets, typeLong, headerSize},
		{tagSamplesPerPixel, typeShort, 1},
		{tagRowsPerStrip, typeLong, uint32(n)},
		{tagStripByteCounts, typeLong, uint32(dataLen)},
		{tagSampleFormat, typeShort, sampleFormatIEEEFP},
	}

	var buf bytes.Buffer
	buf.Grow(headerSize + dataLen + 2 + len(entries)*12 + 4)

	le := binary.LittleEndian

	var scratch [12]byte
	buf.WriteString("II")
	le.PutUint16(scratch[:2], 42)
	buf.Write(scratch[:2])
	le.PutUint32(scratch[:4], uint32(headerSize+dataLen))
	buf.Write(scratch[:4])

	for _, row := range m {
		for _, v := range row {
			le.PutUint64(scratch[:8], math.Float64bits(v))
			buf.Write(scratch[:8])
		}
	}

	le.PutUint16(scratch[:2], uint16(len(entries)))
	buf.Write(scratch[:2])

	for _, e := range entries {
		le.PutUint16(scratch[0:2], e.tag)
		le.PutUint16(scratch[2:4], e.typ)
		le.PutUint32(scratch[4:8], 1)
		if e.typ == typeShort {
			le.PutUint16(scratch[8:10], uint16(e.value))
			scratch[10], scratch[11] = 0, 0
		} else {
			le.PutUint32(scratch[8:12], e.value)
		}
		buf.Write(scratch[:12])
	}

	le.PutUint32(scratch[:4], 0)
	buf.Write(scratch[:4])

	_, err := w.Write(buf.Bytes())
	return err
}

// Read decodes a floating-point TIFF produced by [Write].
func Read(r io.Reader) (kernel.Matrix, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	le := binary.LittleEndian
	if len(data) < headerSize || data[0] != 'I' || data[1] != 'I' || le.Uint16(data[2:4]) != 42 {
		return nil, fmt.Errorf("raster: not a little-endian TIFF")
	}

	ifdOff := int(le.Uint32(data[4:8]))
	if ifdOff < headerSize || ifdOff+2 > len(data) {
		return nil, fmt.Errorf("raster: truncated IFD")
	}

	count := int(le.Uint16(data[ifdOff : ifdOff+2]))
	tags := make(map[uint16]uint32, count)
	for i := 0; i < count; i++ {
		off := ifdOff + 2 + i*12
		if off+12 > len(data) {
			return nil, fmt.Errorf("raster: truncated IFD entry")
		}

		tag := le.Uint16(data[off : off+2])
		typ := le.Uint16(data[off+2 : off+4])
		if le.Uint32(data[off+4:off+8]) != 1 {
			continue
		}

		switch typ {
		case typeShort:
			tags[tag] = uint32(le.Uint16(data[off+8 : off+10]))
		case typeLong:
			tags[tag] = le.Uint32(data[off+8 : off+12])
		}
	}

	width := int(tags[tagImageWidth])
	height := int(tags[tagImageLength])
	if width <= 0 || height <= 0 || width != height {
		return nil, fmt.Errorf("raster: unsupported dimensions %dx%d", width, height)
	}

	if tags[tagBitsPerSample] != 64 || tags[tagSampleFormat] != sampleFormatIEEEFP {
		return nil, fmt.Errorf("raster: not a 64-bit float raster")
	}

	if v, ok := tags[tagCompression]; ok && v != 1 {
		return nil, fmt.Errorf("raster: unsupported compression %d", v)
	}

	if v, ok := tags[tagSamplesPerPixel]; ok && v != 1 {
		return nil, fmt.Errorf("raster: unsupported band count %d", v)
	}

	strip := int(tags[tagStripOffsets])
	need := width * height * 8
	if got := int(tags[tagStripByteCounts]); got != need {
		return nil, fmt.Errorf("raster: strip has %d bytes, want %d", got, need)
	}

	if strip < 0 || strip+need > len(data) {
		return nil, fmt.Errorf("raster: truncated pixel data")
	}

	m := make(kernel.Matrix, height)
	pos := strip
	for i := range m {
		m[i] = make([]float64, width)
		for j := range m[i] {
			m[i][j] = math.Float64frombits(le.Uint64(data[pos : pos+8]))
			pos += 8
		}
	}

	return m, nil
}

// WriteFile writes m to path as a floating-point TIFF.
func WriteFile(path string, m kernel.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(f, m); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// ReadFile reads a kernel raster from path.
func ReadFile(path string) (kernel.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}
