// Package pixbuf bridges raw codec buffers and the standard image.Image
// types, so BMP pixel data can flow into ordinary Go image tooling and
// back. It also provides the test-card generators used by the bmpfile
// command.
//
// Conversions always produce top-down, unpadded layouts; the codec itself
// handles reordering when a different layout is requested.
package pixbuf
