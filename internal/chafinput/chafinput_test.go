package chafinput

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

const testData = "error: x\ninfo: y\ndebug: z\n"

func writeFile(t *testing.T, name string, compress func(w io.Writer) io.WriteCloser) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), name)
	var buf bytes.Buffer
	if compress != nil {
		w := compress(&buf)
		_, err := io.WriteString(w, testData)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	} else {
		buf.WriteString(testData)
	}
	require.NoError(t, os.WriteFile(p, buf.Bytes(), 0o600))
	return p
}

func TestDetectCompression(t *testing.T) {
	for name, want := range map[string]Compression{
		"app.log":      None,
		"app":          None,
		"app.log.gz":   Gzip,
		"APP.LOG.GZ":   Gzip,
		"app.log.zst":  Zstd,
		"app.log.zstd": Zstd,
		"app.log.sz":   Snappy,
		"app.snappy":   Snappy,
	} {
		require.Equal(t, want, DetectCompression(name), name)
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name     string
		compress func(w io.Writer) io.WriteCloser
	}{
		{"plain.log", nil},
		{"gzip.log.gz", func(w io.Writer) io.WriteCloser {
			return gzip.NewWriter(w)
		}},
		{"zstd.log.zst", func(w io.Writer) io.WriteCloser {
			zw, err := zstd.NewWriter(w)
			require.NoError(t, err)
			return zw
		}},
		{"snappy.log.sz", func(w io.Writer) io.WriteCloser {
			return snappy.NewBufferedWriter(w)
		}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			p := writeFile(t, tt.name, tt.compress)

			for _, progress := range []io.Writer{nil, io.Discard} {
				in, err := Open(p, Options{Progress: progress})
				require.NoError(t, err)
				require.False(t, in.IsStdin())

				data, err := io.ReadAll(in)
				require.NoError(t, err)
				require.Equal(t, testData, string(data))
				require.NoError(t, in.Close())
			}
		})
	}
}

func TestOpenStdin(t *testing.T) {
	for _, name := range []string{"", "-"} {
		in, err := Open(name, Options{Stdin: strings.NewReader(testData)})
		require.NoError(t, err)
		require.True(t, in.IsStdin())

		data, err := io.ReadAll(in)
		require.NoError(t, err)
		require.Equal(t, testData, string(data))
		require.NoError(t, in.Close())
	}
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.log"), Options{})
	require.ErrorIs(t, err, os.ErrNotExist)

	// Not a gzip stream.
	p := writeFile(t, "broken.gz", nil)
	_, err = Open(p, Options{})
	require.Error(t, err)
}
