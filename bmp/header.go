package bmp

import (
	"encoding/binary"
	"io"
)

const (
	// headerMagic is the "BM" type tag, little-endian.
	headerMagic = 0x4D42

	// headerSize is the combined file header plus BITMAPINFOHEADER record.
	headerSize = 54

	// infoHeaderSize is the BITMAPINFOHEADER portion of the record.
	infoHeaderSize = headerSize - 14
)

// fileHeader mirrors the fixed 54-byte BMP header: the 14-byte file header
// followed by a BITMAPINFOHEADER. All fields are little-endian with 1-byte
// packing, which encoding/binary reproduces exactly for this layout.
//
// Instances are transient: built fresh per load or save call and discarded.
type fileHeader struct {
	Type            uint16 // must be headerMagic
	Size            uint32 // total file size; unreliable in the wild, ignored on read
	Reserved1       uint16
	Reserved2       uint16
	Offset          uint32 // byte offset of the pixel data from file start
	InfoHeaderSize  uint32 // >= 40; larger values mean an extended sub-header
	Width           int32  // must be positive
	Height          int32  // sign encodes orientation: negative is top-down
	NumPlanes       uint16
	BitsPerPixel    uint16
	Compression     uint32 // only 0 (BI_RGB) is supported
	ImageSizeBytes  uint32 // 0 or the exact pixel data size
	XResolution     int32
	YResolution     int32
	NumColors       uint32
	ImportantColors uint32
}

// readHeader reads the fixed header record. A stream too short to hold the
// record is reported as NotABMPFile rather than a plain read error.
func readHeader(r io.Reader) (fileHeader, Result) {
	var h fileHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return fileHeader{}, NotABMPFile
	}
	return h, OK
}

// validate checks the header in a fixed order; the first failing check wins.
// The bit depth is checked in two stages: first against every depth the BMP
// format defines (anything else means the file is damaged), then against
// the depths this codec actually decodes.
func (h *fileHeader) validate() Result {
	switch {
	case h.Type != headerMagic:
		return NotABMPFile
	case h.InfoHeaderSize < infoHeaderSize:
		return Corrupt
	case h.Offset < headerSize:
		return Corrupt
	case h.Height == 0 || h.Width <= 0:
		return Corrupt
	case !plausibleBitDepth(h.BitsPerPixel):
		return Corrupt
	case h.Compression != 0: // BI_RGB only
		return UnsupportedCompression
	case fileBytesPerPixel(h.BitsPerPixel) == 0:
		return UnsupportedBitDepth
	case (h.BitsPerPixel == 24 || h.BitsPerPixel == 32) &&
		(h.NumColors != 0 || h.ImportantColors != 0):
		return UnsupportedColorTableUse
	case h.BitsPerPixel == 8 && (h.NumColors > 256 || h.ImportantColors > 256):
		return ColorTableTooLarge
	}

	// A nonzero declared image size that disagrees with the geometry means
	// the file was truncated or tampered with.
	imageDataSize := fileStride(h.BitsPerPixel, h.Width) * int(abs32(h.Height))
	if h.ImageSizeBytes != 0 && int(h.ImageSizeBytes) != imageDataSize {
		return Corrupt
	}
	return OK
}

func plausibleBitDepth(bits uint16) bool {
	switch bits {
	case 1, 4, 8, 16, 24, 32:
		return true
	}
	return false
}

// writeHeader serializes the fixed-layout record verbatim.
func writeHeader(w io.Writer, h *fileHeader) Result {
	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return WriteError
	}
	return OK
}
