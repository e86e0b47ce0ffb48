package apng

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	red   = color.NRGBA{R: 0xff, A: 0xff}
	green = color.NRGBA{G: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
)

// solidPNG encodes a w x h image filled with c.
func solidPNG(t testing.TB, w, h int, c color.Color) []byte {
	t.Helper()
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, c)
		}
	}
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, m))
	return buf.Bytes()
}

// buildPNG writes a signature followed by chunks, with no IEND added.
func buildPNG(t testing.TB, chunks ...io.WriterTo) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	buf.WriteString(PngHeader)
	for _, c := range chunks {
		_, err := c.WriteTo(buf)
		require.NoError(t, err)
	}
	return buf.Bytes()
}

func writeFile(t testing.TB, dir, name string, b []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

// chunksOf splits an encoded PNG into its chunks, failing on any framing or
// checksum error.
func chunksOf(t testing.TB, b []byte) []Chunk {
	t.Helper()
	require.True(t, bytes.HasPrefix(b, []byte(PngHeader)), "missing signature")
	var out []Chunk
	for off := len(PngHeader); off < len(b); {
		c, n, err := ReadChunk(b[off:])
		require.NoError(t, err, "chunk at offset %d", off)
		out = append(out, c)
		off += n
	}
	return out
}

func chunkTypes(cs []Chunk) []string {
	types := make([]string, len(cs))
	for i, c := range cs {
		types[i] = c.Type
	}
	return types
}

// failingWriter accepts n bytes and fails every write after that.
type failingWriter struct {
	n int
}

var errDiskFull = errors.New("disk full")

func (w *failingWriter) Write(b []byte) (int, error) {
	if len(b) <= w.n {
		w.n -= len(b)
		return len(b), nil
	}
	n := w.n
	w.n = 0
	return n, errDiskFull
}
