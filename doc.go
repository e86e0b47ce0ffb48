// Package apng assembles animated PNG files out of ordinary single-frame PNG
// files without touching their pixel data.  Each source file is scanned for its
// IHDR and IDAT chunks, and the frames are then written back out behind an
// acTL chunk, each preceded by an fcTL chunk, with every frame after the first
// re-framed as an fdAT chunk.  Readers that do not understand APNG still see
// the first frame as a static image.
//
// For encoding details, see:
//
// https://en.wikipedia.org/wiki/APNG#Technical_details
// https://wiki.mozilla.org/APNG_Specification
// https://www.w3.org/TR/PNG/
package apng
