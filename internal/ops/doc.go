// Package ops implements the image operations behind the bmpfile command:
// a small processing pipeline (crop, resize, flip, brightness, blur) and
// pixel color sampling. It works on standard image.Image values; the pixbuf
// package bridges those to codec buffers.
package ops
