package apng

import (
	"bufio"
	"io"
	"log/slog"
	"os"
)

// Every fcTL carries a delay of delayNum/int(delayNum*fps) seconds.
const delayNum = 1000

// Options control how frames are assembled.
type Options struct {
	// FPS is the playback rate.  The delay denominator is int(1000*FPS), so
	// rates that do not divide 1000 evenly are truncated, not rounded.
	FPS float64

	// Loops is the acTL play count; 0 loops forever.
	Loops uint32

	// Strict rejects frames whose size differs from the first frame's.
	Strict bool

	// KeepPalette copies the first frame's PLTE and tRNS chunks into the output.
	KeepPalette bool

	// Progress, if set, is called after each frame has been written.
	Progress func(done, total int)

	Logger *slog.Logger
}

// DelayDen returns the fcTL delay denominator used for fps.
func DelayDen(fps float64) (uint16, error) {
	den := delayNum * fps
	if !(den >= 1) || den >= 1<<16 {
		return 0, ErrFrameRate
	}
	return uint16(den), nil
}

// check rejects inputs before anything is written.
func (o *Options) check(frames []*Frame) (uint16, error) {
	if len(frames) == 0 {
		return 0, ErrEmptyInput
	}
	den, err := DelayDen(o.FPS)
	if err != nil {
		return 0, err
	}
	if o.Strict {
		first := frames[0]
		for _, f := range frames[1:] {
			if f.Width != first.Width || f.Height != first.Height {
				return 0, &FormatError{Path: f.Path, Err: ErrGeometry}
			}
		}
	}
	return den, nil
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// Assemble writes frames to w as one APNG, in the order given, and returns the
// number of bytes written.  The first frame's IHDR becomes the file's IHDR and
// its image data the default image.
func Assemble(w io.Writer, frames []*Frame, opts Options) (int64, error) {
	den, err := opts.check(frames)
	if err != nil {
		return 0, err
	}
	return assemble(w, "", frames, den, &opts)
}

// AssembleFile writes frames to a new file at path, which is synced and closed
// before returning.  Nothing is created when the frames or options are
// rejected up front, but a failed write leaves the partial file behind.
func AssembleFile(path string, frames []*Frame, opts Options) (err error) {
	den, err := opts.check(frames)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	bw := bufio.NewWriter(f)
	if _, err := assemble(bw, path, frames, den, &opts); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Sync(); err != nil {
		return &IOError{Op: "sync", Path: path, Err: err}
	}
	return nil
}

func assemble(w io.Writer, name string, frames []*Frame, den uint16, opts *Options) (int64, error) {
	log := opts.logger()
	var total int64
	put := func(wt io.WriterTo) error {
		n, err := wt.WriteTo(w)
		total += n
		if err != nil {
			return &IOError{Op: "write", Path: name, Err: err}
		}
		return nil
	}

	n, err := io.WriteString(w, PngHeader)
	total += int64(n)
	if err != nil {
		return total, &IOError{Op: "write", Path: name, Err: err}
	}
	if err := put(&frames[0].Header); err != nil {
		return total, err
	}
	if opts.KeepPalette {
		for i := range frames[0].Palette {
			if err := put(&frames[0].Palette[i]); err != nil {
				return total, err
			}
		}
	}
	actl := &Chunk_acTL{
		NumFrames: uint32(len(frames)),
		NumPlays:  opts.Loops,
	}
	if err := put(actl); err != nil {
		return total, err
	}

	seq := NewSequenceNumbers()
	for i, f := range frames {
		fctl := &Chunk_fcTL{
			SequenceNumber: seq.Next(),
			Width:          f.Width,
			Height:         f.Height,
			DelayNum:       delayNum,
			DelayDen:       den,
			DisposeOp:      DisposeOp_None,
			BlendOp:        BlendOp_Source,
		}
		if err := put(fctl); err != nil {
			return total, err
		}

		// The first frame doubles as the default image.
		var data io.WriterTo = f.Data
		if i > 0 {
			data = &Chunk_fdAT{SequenceNumber: seq.Next(), Chunk_IDAT: f.Data}
		}
		if err := put(data); err != nil {
			return total, err
		}

		log.Debug("frame written", "index", i, "source", f.Path, "width", f.Width, "height", f.Height, "bytes", len(f.Data))
		if opts.Progress != nil {
			opts.Progress(i+1, len(frames))
		}
	}

	if err := put(&Chunk_IEND{}); err != nil {
		return total, err
	}
	log.Debug("animation written", "frames", len(frames), "sequence", uint32(*seq), "bytes", total)
	return total, nil
}
