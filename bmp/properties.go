package bmp

// PixelFormat defines what pixels a buffer holds.
//
// The names give the byte order within a pixel: BGR8 stores blue, green,
// red; BGRA8 appends an alpha byte. Mono8 is a single luminance byte.
type PixelFormat uint8

const (
	// FormatInvalid is the zero value, used for initialization only.
	FormatInvalid PixelFormat = iota

	// Mono8 is 8-bit luminance.
	Mono8

	// BGR8 is 24-bit blue/green/red. Sometimes confusingly called RGB.
	BGR8

	// BGRA8 is 32-bit blue/green/red/alpha.
	BGRA8
)

// BytesPerPixel returns the pixel size in bytes, or 0 for FormatInvalid.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case Mono8:
		return 1
	case BGR8:
		return 3
	case BGRA8:
		return 4
	default:
		return 0
	}
}

func (f PixelFormat) String() string {
	switch f {
	case Mono8:
		return "Mono8"
	case BGR8:
		return "BGR8"
	case BGRA8:
		return "BGRA8"
	default:
		return "invalid"
	}
}

// Orientation defines at which end of the image row 0 is stored.
type Orientation uint8

const (
	// OrientationInvalid is the zero value, used for initialization only.
	OrientationInvalid Orientation = iota

	// TopDown stores the topmost image line first.
	TopDown

	// BottomUp stores the bottommost image line first. This is the native
	// BMP layout and the most compatible choice when writing files.
	BottomUp
)

func (o Orientation) String() string {
	switch o {
	case TopDown:
		return "top-down"
	case BottomUp:
		return "bottom-up"
	default:
		return "invalid"
	}
}

// ImageProperties describes the memory layout of a pixel buffer the caller
// owns. It is a plain value: copying it is cheap and it holds no references.
//
// A valid instance has Width > 0, Height > 0 and no invalid enum members.
// LinePadding is the number of filler bytes appended to every row in the
// buffer; it is chosen by the caller and independent of the 4-byte row
// alignment BMP uses on disk.
type ImageProperties struct {
	Width       uint32      `json:"width"`
	Height      uint32      `json:"height"`
	LinePadding int         `json:"line_padding"`
	PixelFormat PixelFormat `json:"pixel_format"`
	Orientation Orientation `json:"orientation"`
}

func (p ImageProperties) valid() bool {
	return p.Width > 0 && p.Height > 0 &&
		p.PixelFormat != FormatInvalid && p.Orientation != OrientationInvalid
}

// resolveProperties derives the public image description from a validated
// header and its classified color table. For 8-bit files the palette, not
// the depth, decides the format: an all-gray table is surfaced as Mono8,
// anything else as BGR8 with per-pixel palette expansion on load.
func resolveProperties(h *fileHeader, table colorTable) ImageProperties {
	p := ImageProperties{
		Width:       uint32(abs32(h.Width)),
		Height:      uint32(abs32(h.Height)),
		LinePadding: fileLinePadding(h.BitsPerPixel, h.Width),
		Orientation: BottomUp,
	}
	if h.Height < 0 {
		p.Orientation = TopDown
	}
	switch {
	case h.BitsPerPixel <= 8:
		if table.isGray() {
			p.PixelFormat = Mono8
		} else {
			p.PixelFormat = BGR8
		}
	case h.BitsPerPixel == 24:
		p.PixelFormat = BGR8
	case h.BitsPerPixel == 32:
		p.PixelFormat = BGRA8
	}
	return p
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
