package apng

import (
	"bytes"
	"hash/crc32"
	"io"
)

const PngHeader = "\x89PNG\r\n\x1a\n"

// The PNG spec limits chunk lengths to 2^31-1 bytes.
const maxChunkLength = 1<<31 - 1

// Length, type and CRC framing around every chunk's data.
const chunkOverhead = 12

// Chunk is one chunk as read from a PNG stream.  Data is the chunk's payload,
// without the length, type and CRC framing.
type Chunk struct {
	Type string
	Data []byte
	CRC  uint32

	// The chunk exactly as it was read, CRC included.
	raw []byte
}

// Len returns the number of payload bytes in the chunk.
func (c *Chunk) Len() uint32 {
	return uint32(len(c.Data))
}

// WriteTo encodes the chunk to the io.Writer.  A chunk that came from
// ReadChunk is copied byte for byte, CRC included; otherwise the CRC is
// computed over the type and data.  This supports the io.WriterTo interface.
func (c *Chunk) WriteTo(w io.Writer) (int64, error) {
	if c.raw != nil {
		n, err := w.Write(c.raw)
		return int64(n), err
	}
	return writeChunkTo(c.Type, w, c.Data)
}

// clone returns a copy of c that does not alias the buffer it was read from.
func (c Chunk) clone() Chunk {
	c.raw = bytes.Clone(c.raw)
	if c.raw != nil {
		c.Data = c.raw[8 : 8+len(c.Data)]
	}
	return c
}

// ReadChunk decodes the chunk at the start of b and returns it along with the
// number of bytes it occupies.  The declared length is checked against the
// bytes that remain and the CRC is verified before the chunk is returned.  The
// returned chunk aliases b.
func ReadChunk(b []byte) (Chunk, int, error) {
	if len(b) < 8 {
		return Chunk{}, 0, ErrTruncated
	}
	length := readUint32(b[0:4])
	if length > maxChunkLength {
		return Chunk{}, 0, ErrChunkLength
	}
	end := int64(chunkOverhead) + int64(length)
	if int64(len(b)) < end {
		return Chunk{}, 0, ErrTruncated
	}
	c := Chunk{
		Type: string(b[4:8]),
		Data: b[8 : 8+length],
		CRC:  readUint32(b[8+length : end]),
		raw:  b[:end],
	}
	if crc32.ChecksumIEEE(b[4:8+length]) != c.CRC {
		return Chunk{}, 0, ErrChecksum
	}
	return c, int(end), nil
}

// Big-endian.
func readUint32(b []uint8) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// Big-endian.
func writeUint16(b []uint8, u uint16) {
	b[0] = uint8(u >> 8)
	b[1] = uint8(u >> 0)
}

const sizeOfUint16 = 2

// Big-endian.
func writeUint32(b []uint8, u uint32) {
	b[0] = uint8(u >> 24)
	b[1] = uint8(u >> 16)
	b[2] = uint8(u >> 8)
	b[3] = uint8(u >> 0)
}

const sizeOfUint32 = 4

// writeChunkTo frames the concatenation of parts as a single chunk named name.
func writeChunkTo(name string, w io.Writer, parts ...[]byte) (int64, error) {
	header := [8]byte{}
	footer := [4]byte{}

	length := 0
	for _, p := range parts {
		length += len(p)
	}
	writeUint32(header[:4], uint32(length))
	copy(header[4:8], name)

	crc := crc32.NewIEEE()
	crc.Write(header[4:8])
	for _, p := range parts {
		crc.Write(p)
	}
	writeUint32(footer[:4], crc.Sum32())

	n, err := w.Write(header[:8])
	total := int64(n)
	if err != nil {
		return total, err
	}
	for _, p := range parts {
		n, err = w.Write(p)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	n, err = w.Write(footer[:4])
	return total + int64(n), err
}
