package bmp

import (
	"bufio"
	"encoding/binary"
	"os"
)

// SaveOptions controls how the buffer orientation is written to disk.
type SaveOptions struct {
	// KeepTopDown writes a top-down buffer as a top-down file (negative
	// height) instead of flipping it. The zero value forces bottom-up
	// output, which every BMP reader understands.
	KeepTopDown bool
}

// Save encodes buffer, laid out as described by props, as an uncompressed
// BMP file at path. Mono8 buffers are written as 8-bit files with a full
// synthetic identity-gray palette; BGR8 as 24-bit and BGRA8 as 32-bit files
// without one. Unless opts.KeepTopDown is set, rows are reordered so the
// file is bottom-up regardless of the buffer orientation.
func Save(path string, buffer []byte, props ImageProperties, opts SaveOptions) Result {
	if path == "" || buffer == nil {
		return NullArgument
	}
	if !props.valid() || props.LinePadding < 0 || len(buffer) == 0 {
		return InvalidArgument
	}

	strideInBuffer := bufferStride(props)
	height := int(props.Height)
	if strideInBuffer*height > len(buffer) {
		return BufferTooSmall
	}

	f, err := os.Create(path)
	if err != nil {
		return OpenForWriteFailed
	}
	defer f.Close()

	header, orientationInFile := buildHeader(props, opts)

	w := bufio.NewWriter(f)
	if res := writeHeader(w, &header); !res.IsOK() {
		return res
	}
	if props.PixelFormat == Mono8 {
		if res := writeGrayPalette(w); !res.IsOK() {
			return res
		}
	}

	paddingInFile := fileLinePadding(header.BitsPerPixel, header.Width)
	if paddingInFile > 3 {
		// The stride rule caps row padding at 3 bytes; more means the
		// geometry math is broken and nothing should be written.
		panic("bmp: file line padding out of range")
	}
	var padding [3]byte

	contentBytes := strideInBuffer - props.LinePadding
	for line := 0; line < height; line++ {
		off := destRowOffset(line, height, strideInBuffer, props.Orientation, orientationInFile)
		if _, err := w.Write(buffer[off : off+contentBytes]); err != nil {
			return WriteError
		}
		if paddingInFile != 0 {
			if _, err := w.Write(padding[:paddingInFile]); err != nil {
				return WriteError
			}
		}
	}
	if err := w.Flush(); err != nil {
		return WriteError
	}
	return OK
}

// buildHeader assembles the on-disk header for props and returns it along
// with the orientation the rows will have in the file.
func buildHeader(props ImageProperties, opts SaveOptions) (fileHeader, Orientation) {
	header := fileHeader{
		Type:           headerMagic,
		Size:           headerSize,
		Offset:         headerSize,
		InfoHeaderSize: infoHeaderSize,
		Width:          int32(props.Width),
		Height:         int32(props.Height),
		NumPlanes:      1,
		Compression:    0, // BI_RGB
	}

	orientationInFile := BottomUp
	if opts.KeepTopDown && props.Orientation == TopDown {
		header.Height = -header.Height
		orientationInFile = TopDown
	}

	switch props.PixelFormat {
	case Mono8:
		header.BitsPerPixel = 8
		header.Size += 256 * paletteEntrySize
		header.Offset += 256 * paletteEntrySize
		header.NumColors = 256
		header.ImportantColors = 256
	case BGR8:
		header.BitsPerPixel = 24
	case BGRA8:
		header.BitsPerPixel = 32
	}

	imageSizeInFile := fileStride(header.BitsPerPixel, header.Width) * int(props.Height)
	header.Size += uint32(imageSizeInFile)
	return header, orientationInFile
}

// writeGrayPalette emits the canonical 256-entry identity grayscale ramp.
// The caller's original palette is never written: the buffer-only
// representation does not retain one.
func writeGrayPalette(w *bufio.Writer) Result {
	table := make(colorTable, 256)
	for i := range table {
		v := uint8(i)
		table[i] = paletteEntry{B: v, G: v, R: v, Reserved: 255}
	}
	if err := binary.Write(w, binary.LittleEndian, table); err != nil {
		return WriteError
	}
	return OK
}
