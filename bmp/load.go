package bmp

import (
	"io"
	"os"
)

// LoadOptions selects which side wins when the caller's ImageProperties
// disagree with what the file declares. With a force flag set, the value
// the caller passed in survives the load and the pixel rows are converted
// to match; without it, the file-derived value is written back.
type LoadOptions struct {
	// ForceLinePadding keeps the caller's LinePadding instead of the
	// file-derived row padding.
	ForceLinePadding bool

	// ForceOrientation keeps the caller's Orientation. If it differs from
	// the orientation stored in the file, rows are flipped during the load.
	ForceOrientation bool
}

// LoadProperties reads only the header and palette of the BMP file at path
// and returns the image description, e.g. to size a buffer for Load.
func LoadProperties(path string) (ImageProperties, Result) {
	if path == "" {
		return ImageProperties{}, NullArgument
	}
	f, err := os.Open(path)
	if err != nil {
		return ImageProperties{}, FileNotFound
	}
	defer f.Close()

	props, _, _, res := loadImageProperties(f)
	return props, res
}

// Load decodes the BMP file at path into buffer, which must be at least
// ComputeBufferSize of the resulting properties. props is in/out: on entry
// it supplies the preferred padding and orientation when the corresponding
// LoadOptions force flags are set, on return it describes the buffer
// contents. On any validation failure props is reset to the zero value.
func Load(path string, buffer []byte, props *ImageProperties, opts LoadOptions) Result {
	if path == "" || buffer == nil || props == nil {
		return NullArgument
	}
	if opts.ForceOrientation && props.Orientation == OrientationInvalid {
		return InvalidArgument
	}
	if opts.ForceLinePadding && props.LinePadding < 0 {
		return InvalidArgument
	}

	f, err := os.Open(path)
	if err != nil {
		return FileNotFound
	}
	defer f.Close()

	suggestedOrientation := props.Orientation
	suggestedPadding := props.LinePadding

	loaded, header, table, res := loadImageProperties(f)
	*props = loaded
	if !res.IsOK() {
		return res
	}

	orientationInFile := loaded.Orientation
	if opts.ForceLinePadding {
		props.LinePadding = suggestedPadding
	}
	if opts.ForceOrientation {
		props.Orientation = suggestedOrientation
	}

	strideInFile := fileStride(header.BitsPerPixel, header.Width)
	strideInBuffer := bufferStride(*props)
	paddingInFile := fileLinePadding(header.BitsPerPixel, header.Width)
	height := int(props.Height)

	if strideInBuffer*height > len(buffer) {
		return BufferTooSmall
	}
	if _, err := f.Seek(int64(header.Offset), io.SeekStart); err != nil {
		return ReadError
	}

	switch {
	case header.BitsPerPixel > 8 && (props.PixelFormat == BGR8 || props.PixelFormat == BGRA8):
		return loadTruecolor(f, buffer, props, orientationInFile,
			strideInFile, strideInBuffer, paddingInFile)
	case props.PixelFormat == Mono8:
		return loadMono8(f, buffer, props, table, orientationInFile,
			strideInFile, strideInBuffer, paddingInFile)
	case props.PixelFormat == BGR8 && header.BitsPerPixel == 8:
		return loadIndexedBGR8(f, buffer, props, table, orientationInFile,
			strideInFile, strideInBuffer)
	default:
		return UnsupportedBitDepth
	}
}

// loadImageProperties runs header read, header validation, palette read and
// properties resolution against an open file. On failure the returned
// properties are the zero value, never partially filled.
func loadImageProperties(f *os.File) (ImageProperties, fileHeader, colorTable, Result) {
	header, res := readHeader(f)
	if res.IsOK() {
		res = header.validate()
	}

	var table colorTable
	if res.IsOK() && header.BitsPerPixel == 8 {
		table, res = readColorTable(f, &header)
	}
	if !res.IsOK() {
		return ImageProperties{}, header, nil, res
	}
	return resolveProperties(&header, table), header, table, OK
}

// destRowOffset maps a file row index to the byte offset of its buffer row.
// Whenever the requested orientation differs from the orientation stored in
// the file the image is flipped vertically here; this is the only place
// flipping happens on load.
func destRowOffset(line, height, stride int, want, inFile Orientation) int {
	if want == inFile {
		return line * stride
	}
	return (height - 1 - line) * stride
}

// loadTruecolor copies 24/32-bit rows straight into the buffer; the byte
// order on disk already matches BGR/BGRA.
func loadTruecolor(f *os.File, buffer []byte, props *ImageProperties,
	inFile Orientation, strideInFile, strideInBuffer, paddingInFile int) Result {

	height := int(props.Height)
	rowBytes := strideInFile - paddingInFile
	for line := 0; line < height; line++ {
		off := destRowOffset(line, height, strideInBuffer, props.Orientation, inFile)
		if _, err := io.ReadFull(f, buffer[off:off+rowBytes]); err != nil {
			return ReadError
		}
		if paddingInFile != 0 {
			if _, err := f.Seek(int64(paddingInFile), io.SeekCurrent); err != nil {
				return ReadError
			}
		}
	}
	return OK
}

// loadMono8 copies 8-bit rows as luminance. With the identity-gray palette
// the index bytes are the luminance values already; any other all-gray
// palette needs a per-byte remap through the table.
func loadMono8(f *os.File, buffer []byte, props *ImageProperties, table colorTable,
	inFile Orientation, strideInFile, strideInBuffer, paddingInFile int) Result {

	linear := table.isLinearGray()
	height := int(props.Height)
	width := int(props.Width)
	rowBytes := strideInFile - paddingInFile
	for line := 0; line < height; line++ {
		off := destRowOffset(line, height, strideInBuffer, props.Orientation, inFile)
		if _, err := io.ReadFull(f, buffer[off:off+rowBytes]); err != nil {
			return ReadError
		}
		if !linear {
			row := buffer[off : off+width]
			for i, idx := range row {
				if int(idx) >= len(table) {
					return Corrupt
				}
				row[i] = table[idx].B // B == G == R per classification
			}
		}
		if paddingInFile != 0 {
			if _, err := f.Seek(int64(paddingInFile), io.SeekCurrent); err != nil {
				return ReadError
			}
		}
	}
	return OK
}

// loadIndexedBGR8 expands an 8-bit file with a non-gray palette into three
// destination bytes per pixel. Rows are read into a scratch buffer at the
// full file stride, so no separate padding skip is needed.
func loadIndexedBGR8(f *os.File, buffer []byte, props *ImageProperties, table colorTable,
	inFile Orientation, strideInFile, strideInBuffer int) Result {

	height := int(props.Height)
	width := int(props.Width)
	scratch := make([]byte, strideInFile)
	for line := 0; line < height; line++ {
		if _, err := io.ReadFull(f, scratch); err != nil {
			return ReadError
		}
		off := destRowOffset(line, height, strideInBuffer, props.Orientation, inFile)
		for col := 0; col < width; col++ {
			idx := scratch[col]
			if int(idx) >= len(table) {
				return Corrupt
			}
			entry := table[idx]
			buffer[off] = entry.B
			buffer[off+1] = entry.G
			buffer[off+2] = entry.R
			off += 3
		}
	}
	return OK
}
