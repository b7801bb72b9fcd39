package overlap

import (
	"bufio"
	"errors"
	"io"
	"syscall"
)

// Write prints one line per record to w. A reader that goes away early
// (like `head`) isn't treated as an error.
func Write(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if _, err := io.WriteString(bw, r.String()+"\n"); err != nil {
			return ignoreBrokenPipe(err)
		}
	}
	return ignoreBrokenPipe(bw.Flush())
}

// isBrokenPipe reports whether an error is a broken pipe / closed pipe.
func isBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

func ignoreBrokenPipe(err error) error {
	if isBrokenPipe(err) {
		return nil
	}
	return err
}
