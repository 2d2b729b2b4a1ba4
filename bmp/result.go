package bmp

// Result reports the outcome of a codec operation.
//
// Only OK means success. The zero value is Invalid, so an uninitialized
// Result never reads as successful. Results carry no payload beyond their
// kind; the failure categories are:
//
//   - Caller contract violations, detected before any I/O:
//     NullArgument, InvalidArgument, BufferTooSmall. Safe to retry with
//     corrected arguments.
//   - Environment failures, surfaced as-is with no internal retry:
//     FileNotFound, OpenForWriteFailed, ReadError, WriteError.
//   - Content validation failures, terminal for that file:
//     NotABMPFile, UnsupportedCompression, UnsupportedBitDepth,
//     UnsupportedColorTableUse, ColorTableTooLarge, Corrupt.
type Result uint8

const (
	// Invalid is the zero value; no operation was executed.
	Invalid Result = iota

	// OK reports a successful operation.
	OK

	// FileNotFound reports that the file could not be opened for reading.
	FileNotFound

	// OpenForWriteFailed reports that the file could not be opened for writing.
	OpenForWriteFailed

	// ReadError reports that reading or seeking within the file failed.
	ReadError

	// WriteError reports that writing the file failed.
	WriteError

	// BufferTooSmall reports that the provided buffer cannot hold the image.
	BufferTooSmall

	// NotABMPFile reports that the file does not start with a BMP header.
	NotABMPFile

	// UnsupportedCompression reports a compressed BMP variant (RLE, bitfields).
	UnsupportedCompression

	// UnsupportedBitDepth reports a well-formed BMP whose bit depth
	// (1, 4 or 16) this codec does not decode.
	UnsupportedBitDepth

	// UnsupportedColorTableUse reports a color table where none is allowed
	// (24/32 bit files) or a missing one where it is required (8 bit files).
	UnsupportedColorTableUse

	// ColorTableTooLarge reports an implausible declared color count.
	ColorTableTooLarge

	// Corrupt reports a file that looks like a BMP but fails header checks.
	Corrupt

	// NullArgument reports a nil buffer, nil properties or empty path.
	NullArgument

	// InvalidArgument reports an argument value outside its contract.
	InvalidArgument
)

// IsOK reports whether the operation succeeded.
func (r Result) IsOK() bool {
	return r == OK
}

// String returns a human-readable message for logging.
func (r Result) String() string {
	switch r {
	case OK:
		return "BMP file operation successful"
	case FileNotFound:
		return "BMP file not found"
	case OpenForWriteFailed:
		return "failed to open BMP file for writing"
	case ReadError:
		return "BMP file read error"
	case WriteError:
		return "BMP file write error"
	case BufferTooSmall:
		return "buffer too small for BMP file operation"
	case NotABMPFile:
		return "not a BMP file"
	case UnsupportedCompression:
		return "BMP compression type not supported"
	case UnsupportedBitDepth:
		return "BMP bit depth not supported"
	case UnsupportedColorTableUse:
		return "BMP color table variant not supported"
	case ColorTableTooLarge:
		return "BMP color table too large"
	case Corrupt:
		return "BMP file is corrupt"
	case NullArgument:
		return "argument must not be nil"
	case InvalidArgument:
		return "argument is not valid"
	case Invalid:
		return "no operation executed"
	default:
		return "unknown operation result"
	}
}
