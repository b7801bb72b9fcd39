// Package fasta reads multi-FASTA files into records, keeping the order they
// appear in the file.
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInput is wrapped by every error caused by a missing, unreadable or malformed input file.
var ErrInput = errors.New("invalid input")

// Record is a single FASTA entry.
type Record struct {
	// ID is the first whitespace delimited token of the header. In ">contig_1 len=20" its "contig_1"
	ID string

	// Desc is the rest of the header line after the ID
	Desc string

	// Seq is every sequence line of the entry joined together, whitespace removed.
	// Case and alphabet are left as they were in the file
	Seq string
}

// Read a FASTA file (by its path on local FS, or "-" for stdin) to a slice of Records.
// gzip and xz compressed files are decompressed transparently.
func Read(path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %w", ErrInput, path, err)
	}
	defer rc.Close()

	records, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return records, nil
}

// Parse reads FASTA records from r. It fails if there's sequence data before the
// first header, if a header has no identifier, or if there are no records at all.
func Parse(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)

	var (
		records []Record
		current *Record
		seq     strings.Builder
		lineNum int
	)

	flush := func() {
		if current == nil {
			return
		}
		current.Seq = seq.String()
		records = append(records, *current)
		seq.Reset()
	}

	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("%w: read failed after line %d: %w", ErrInput, lineNum, err)
		}
		if line == "" && err == io.EOF {
			break
		}
		lineNum++

		text := strings.TrimSpace(line)
		switch {
		case text == "":
		case text[0] == '>':
			flush()
			id, desc := splitHeader(text[1:])
			if id == "" {
				return nil, fmt.Errorf("%w: line %d: header has no identifier", ErrInput, lineNum)
			}
			current = &Record{ID: id, Desc: desc}
		case current == nil:
			return nil, fmt.Errorf("%w: line %d: sequence data before the first header", ErrInput, lineNum)
		default:
			for _, field := range strings.Fields(text) {
				seq.WriteString(field)
			}
		}

		if err == io.EOF {
			break
		}
	}
	flush()

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no FASTA records found", ErrInput)
	}
	return records, nil
}

// splitHeader separates the identifier in a header from its description.
func splitHeader(header string) (id, desc string) {
	header = strings.TrimSpace(header)
	i := strings.IndexAny(header, " \t")
	if i < 0 {
		return header, ""
	}
	return header[:i], strings.TrimSpace(header[i+1:])
}
