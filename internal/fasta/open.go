package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// multiReadCloser closes every closer, in order, when it's closed.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader over the decompressed contents of path. "-" is stdin,
// which is never closed. Compression is detected by magic number or by a
// .gz/.xz suffix.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return decompress(bufio.NewReader(os.Stdin), "", nil)
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	rc, err := decompress(bufio.NewReader(fh), path, fh)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return rc, nil
}

func decompress(br *bufio.Reader, path string, fh io.Closer) (io.ReadCloser, error) {
	var closers []io.Closer
	if fh != nil {
		closers = append(closers, fh)
	}

	lower := strings.ToLower(path)
	switch {
	case hasMagic(br, gzipMagic) || strings.HasSuffix(lower, ".gz"):
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip error: %w", err)
		}
		return &multiReadCloser{Reader: gr, closers: append([]io.Closer{gr}, closers...)}, nil
	case hasMagic(br, xzMagic) || strings.HasSuffix(lower, ".xz"):
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("xz error: %w", err)
		}
		return &multiReadCloser{Reader: xr, closers: closers}, nil
	}
	return &multiReadCloser{Reader: br, closers: closers}, nil
}

func hasMagic(br *bufio.Reader, magic []byte) bool {
	sig, _ := br.Peek(len(magic))
	return bytes.Equal(sig, magic)
}
