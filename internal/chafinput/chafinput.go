// Package chafinput opens chaf input streams.
package chafinput

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/go-faster/errors"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/multierr"
)

// Compression defines input compression.
type Compression string

const (
	// None is an uncompressed input.
	None Compression = ""
	// Gzip is a gzip-compressed input.
	Gzip Compression = "gzip"
	// Zstd is a zstd-compressed input.
	Zstd Compression = "zstd"
	// Snappy is a snappy framing format input.
	Snappy Compression = "snappy"
)

// DetectCompression detects compression by file extension.
func DetectCompression(name string) Compression {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz", ".gzip":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".sz", ".snappy":
		return Snappy
	default:
		return None
	}
}

// Options sets Open options.
type Options struct {
	// Stdin is used if name is empty or "-", defaults to os.Stdin.
	Stdin io.Reader
	// Progress enables progress bar written to given writer.
	//
	// Progress is shown only for regular files.
	Progress io.Writer
}

// Input is an opened input stream.
type Input struct {
	io.Reader
	// Name is a file name or "-" for stdin.
	Name string

	bar     *pb.ProgressBar
	closers []func() error
}

// IsStdin whether input is the standard input.
func (i *Input) IsStdin() bool {
	return i.Name == "-"
}

// Close releases all resources of the input.
func (i *Input) Close() (rerr error) {
	if i.bar != nil {
		i.bar.Finish()
	}
	// Close in reverse order: decoder first, then file.
	for idx := len(i.closers) - 1; idx >= 0; idx-- {
		rerr = multierr.Append(rerr, i.closers[idx]())
	}
	i.closers = nil
	return rerr
}

// Open opens named file or standard input.
//
// Compressed files are decompressed transparently.
func Open(name string, opts Options) (_ *Input, rerr error) {
	if name == "" || name == "-" {
		stdin := opts.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		return &Input{Reader: stdin, Name: "-"}, nil
	}

	f, err := os.Open(filepath.Clean(name))
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	in := &Input{
		Reader:  f,
		Name:    name,
		closers: []func() error{f.Close},
	}
	defer func() {
		if rerr != nil {
			rerr = multierr.Append(rerr, in.Close())
		}
	}()

	if opts.Progress != nil {
		stat, err := f.Stat()
		if err != nil {
			return nil, errors.Wrap(err, "stat")
		}
		if stat.Mode().IsRegular() {
			in.bar = pb.New64(stat.Size()).
				SetWriter(opts.Progress).
				Set(pb.Bytes, true).
				Start()
			in.Reader = in.bar.NewProxyReader(in.Reader)
		}
	}

	switch c := DetectCompression(name); c {
	case Gzip:
		gr, err := gzip.NewReader(in.Reader)
		if err != nil {
			return nil, errors.Wrap(err, "create gzip reader")
		}
		in.Reader = gr
		in.closers = append(in.closers, gr.Close)
	case Zstd:
		zr, err := zstd.NewReader(in.Reader)
		if err != nil {
			return nil, errors.Wrap(err, "create zstd reader")
		}
		in.Reader = zr
		in.closers = append(in.closers, func() error {
			zr.Close()
			return nil
		})
	case Snappy:
		in.Reader = snappy.NewReader(in.Reader)
	}
	return in, nil
}
