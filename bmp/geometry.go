package bmp

// Row geometry. BMP pads every stored row to a 4-byte boundary,
// unconditionally. The caller's buffer uses its own LinePadding instead.

// fileBytesPerPixel maps a bit depth to its pixel size on disk. The depth
// must already be validated to one of 8, 24 or 32; anything else yields 0.
func fileBytesPerPixel(bitsPerPixel uint16) int {
	switch bitsPerPixel {
	case 8:
		return 1
	case 24:
		return 3
	case 32:
		return 4
	default:
		return 0
	}
}

// fileStride returns the total bytes one row occupies on disk, including
// the alignment padding.
func fileStride(bitsPerPixel uint16, width int32) int {
	stride := fileBytesPerPixel(bitsPerPixel) * int(abs32(width))
	if rem := stride % 4; rem != 0 {
		stride += 4 - rem
	}
	return stride
}

// fileLinePadding returns the filler bytes appended to one row on disk.
func fileLinePadding(bitsPerPixel uint16, width int32) int {
	content := fileBytesPerPixel(bitsPerPixel) * int(abs32(width))
	if rem := content % 4; rem != 0 {
		return 4 - rem
	}
	return 0
}

// bufferStride returns the total bytes one row occupies in the caller's
// buffer, including the caller-chosen LinePadding.
func bufferStride(p ImageProperties) int {
	return int(p.Width)*p.PixelFormat.BytesPerPixel() + p.LinePadding
}

// ComputeBufferSize returns the buffer length needed to hold the image data
// described by props, or 0 if the size is not computable (zero width or
// height, or an invalid pixel format). It never performs I/O and never fails
// with a result code.
func ComputeBufferSize(props ImageProperties) int {
	if props.Width == 0 || props.Height == 0 || props.PixelFormat == FormatInvalid {
		return 0
	}
	return bufferStride(props) * int(props.Height)
}
