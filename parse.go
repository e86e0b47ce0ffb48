package apng

import (
	"io"
	"log/slog"
	"os"
)

// Frame is one single-frame PNG reduced to what the assembler needs.  Frames
// are not modified after parsing.
type Frame struct {
	Path string

	// Header is the first IHDR chunk of the source, kept with its original CRC.
	Header Chunk

	// Width and Height are read from Header.
	Width  uint32
	Height uint32

	// Data holds the payloads of every IDAT chunk of the source, in order.
	Data Chunk_IDAT

	// Palette holds the PLTE and tRNS chunks seen before the first IDAT.
	Palette []Chunk
}

// Parser reads single-frame PNG files.  The zero value is ready to use.
type Parser struct {
	// Logger receives a debug record per chunk.  Nil disables logging.
	Logger *slog.Logger
}

// ParseFile parses the PNG file at path with the zero Parser.
func ParseFile(path string) (*Frame, error) {
	return (&Parser{}).ParseFile(path)
}

// Parse parses a PNG stream with the zero Parser.  The name is only used in
// errors.
func Parse(r io.Reader, name string) (*Frame, error) {
	return (&Parser{}).Parse(r, name)
}

// ParseFile parses the PNG file at path.
func (p *Parser) ParseFile(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()
	return p.Parse(f, path)
}

// Parse reads a PNG stream to the end and extracts its header and image data.
func (p *Parser) Parse(r io.Reader, name string) (*Frame, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Op: "read", Path: name, Err: err}
	}
	return p.parse(b, name)
}

func (p *Parser) parse(b []byte, name string) (*Frame, error) {
	if len(b) < len(PngHeader) || string(b[:len(PngHeader)]) != PngHeader {
		return nil, &FormatError{Path: name, Err: ErrSignature}
	}

	log := p.logger().With("file", name)
	fr := &Frame{Path: name, Data: Chunk_IDAT{}}
	haveHeader, seenIDAT := false, false
	for off := len(PngHeader); off < len(b); {
		c, n, err := ReadChunk(b[off:])
		if err != nil {
			return nil, &FormatError{Path: name, Offset: int64(off), Err: err}
		}
		log.Debug("chunk", "type", c.Type, "length", c.Len(), "offset", off)

		switch c.Type {
		case "IHDR":
			if haveHeader {
				break
			}
			if len(c.Data) < 2*sizeOfUint32 {
				return nil, &FormatError{Path: name, Offset: int64(off), Err: ErrNoHeader}
			}
			fr.Header = c.clone()
			fr.Width = readUint32(c.Data[0:4])
			fr.Height = readUint32(c.Data[4:8])
			haveHeader = true
		case "IDAT":
			fr.Data = append(fr.Data, c.Data...)
			seenIDAT = true
		case "PLTE", "tRNS":
			if !seenIDAT {
				fr.Palette = append(fr.Palette, c.clone())
			}
		}
		off += n
	}
	if !haveHeader {
		return nil, &FormatError{Path: name, Err: ErrNoHeader}
	}
	return fr, nil
}

func (p *Parser) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p.Logger
}
