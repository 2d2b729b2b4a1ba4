// Package bmp loads and saves uncompressed Windows BMP files to and from
// caller-owned pixel buffers.
//
// The package is a thin, deterministic byte codec: it never allocates the
// output image buffer, it performs no color-space conversion beyond palette
// resolution, and every call is self-contained. Supported pixel depths are
// 8 bit (palette indexed), 24 bit (BGR byte order) and 32 bit (BGRA byte
// order). Compressed variants (RLE, bitfields) and 1/4/16 bit depths are
// detected and rejected.
//
// # Buffer Layout
//
// Image data lives in a flat byte slice described by ImageProperties: rows
// of Width pixels at PixelFormat.BytesPerPixel() bytes each, followed by
// LinePadding filler bytes, stored top-down or bottom-up per Orientation.
// ComputeBufferSize reports the exact slice length such a layout needs.
// The buffer's padding is caller-chosen and independent of the 4-byte
// alignment rule BMP enforces on disk.
//
// # Results Instead of Errors
//
// Public operations report their outcome as a Result value, one of a fixed
// taxonomy (file errors, content validation failures, caller contract
// violations). Only OK means success; use Result.IsOK. This mirrors the
// operation-result style of the underlying file format tooling and keeps
// the codec free of control-flow panics across the public boundary.
//
// # Concurrency
//
// There is no package-level state. Calls are synchronous and independent;
// concurrent loads and saves against distinct files need no coordination.
package bmp
