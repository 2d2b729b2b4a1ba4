package bmp

import (
	"encoding/binary"
	"io"
)

// paletteEntry is one 4-byte color table slot as stored on disk.
type paletteEntry struct {
	B, G, R  uint8
	Reserved uint8
}

// paletteEntrySize is the on-disk size of a paletteEntry.
const paletteEntrySize = 4

// colorTable is the ordered palette of an indexed BMP. It lives only for
// the duration of a single load call.
type colorTable []paletteEntry

// readColorTable reads the palette that immediately follows the sub-header.
// The table length is the declared color count; a zero count falls back to
// the depth-implied default (1, 16 or 256 entries for 1, 4 or 8 bit). The
// depth defaults beyond 8 bit exist so that future indexed depths slot into
// the same path; today only 8-bit files reach this code.
func readColorTable(r io.ReadSeeker, h *fileHeader) (colorTable, Result) {
	if _, err := r.Seek(int64(h.InfoHeaderSize)+14, io.SeekStart); err != nil {
		return nil, ReadError
	}

	length := int(h.NumColors)
	if length == 0 {
		switch h.BitsPerPixel {
		case 1:
			length = 1
		case 4:
			length = 16
		case 8:
			length = 256
		}
	}
	if length == 0 {
		return nil, UnsupportedColorTableUse
	}

	table := make(colorTable, length)
	if err := binary.Read(r, binary.LittleEndian, table); err != nil {
		return nil, ReadError
	}
	return table, OK
}

// isLinearGray reports whether the palette is the identity grayscale ramp:
// entry i maps to gray level i exactly. Such a table lets index bytes be
// used directly as luminance, skipping the per-pixel remap on load.
func (t colorTable) isLinearGray() bool {
	for i, entry := range t {
		v := uint8(i)
		if entry.B != v || entry.G != v || entry.R != v {
			return false
		}
	}
	return true
}

// isGray reports whether every entry is a gray tone (B == G == R), in any
// order. This decides whether an 8-bit file is surfaced as Mono8 at all;
// a single colored entry demotes the image to BGR8 with palette expansion.
func (t colorTable) isGray() bool {
	for _, entry := range t {
		if entry.R != entry.G || entry.R != entry.B {
			return false
		}
	}
	return true
}
