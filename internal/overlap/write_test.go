package overlap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"syscall"
	"testing"
)

type errWriter struct{ err error }

func (w errWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestWrite(t *testing.T) {
	records := []Record{
		{Source: "seqA", SourceSide: End, Target: "seqB", TargetSide: Start, Length: 5, Seq: "CCCCC"},
		{Source: "seqB", SourceSide: Start, Target: "seqA", TargetSide: End, Length: 5, Seq: "CCCCC"},
	}

	var buf bytes.Buffer
	if err := Write(&buf, records); err != nil {
		t.Fatal(err)
	}

	want := "Overlap found: seqA (end) aligns with seqB (start) | Length: 5 | Sequence: CCCCC\n" +
		"Overlap found: seqB (start) aligns with seqA (end) | Length: 5 | Sequence: CCCCC\n"
	if got := buf.String(); got != want {
		t.Errorf("Write() wrote %q, want %q", got, want)
	}
}

func TestWrite_nothing(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("Write(nil) wrote %q", buf.String())
	}
}

func TestWrite_errors(t *testing.T) {
	records := []Record{{Source: "a", SourceSide: End, Target: "b", TargetSide: Start, Length: 1, Seq: "A"}}
	diskFull := errors.New("disk full")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"broken pipe", fmt.Errorf("write /dev/stdout: %w", syscall.EPIPE), nil},
		{"closed pipe", io.ErrClosedPipe, nil},
		{"other", diskFull, diskFull},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Write(errWriter{tt.err}, records); !errors.Is(got, tt.want) {
				t.Errorf("Write() = %v, want %v", got, tt.want)
			}
		})
	}
}
