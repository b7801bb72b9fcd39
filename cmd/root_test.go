package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFasta(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "contigs.fa")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func Test_run(t *testing.T) {
	contigs := writeFasta(t, ">seqA\nAAAAACCCCC\n>seqB\nCCCCCGGGGG\n")
	single := writeFasta(t, ">only\nACGTACGTACGTACGT\n")
	empty := writeFasta(t, "")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantOut    string
		wantErrOut string
	}{
		{
			"short flag",
			[]string{contigs, "-m", "5"},
			exitOK,
			"Overlap found: seqA (end) aligns with seqB (start) | Length: 5 | Sequence: CCCCC\n" +
				"Overlap found: seqB (start) aligns with seqA (end) | Length: 5 | Sequence: CCCCC\n",
			"",
		},
		{
			"long flag before the path",
			[]string{"--min_overlap", "5", contigs},
			exitOK,
			"Overlap found: seqA (end) aligns with seqB (start) | Length: 5 | Sequence: CCCCC\n" +
				"Overlap found: seqB (start) aligns with seqA (end) | Length: 5 | Sequence: CCCCC\n",
			"",
		},
		{
			"default min overlap finds nothing",
			[]string{contigs},
			exitOK,
			"",
			"",
		},
		{
			"single record",
			[]string{single, "-m", "1"},
			exitOK,
			"",
			"",
		},
		{
			"missing path",
			nil,
			exitUsage,
			"",
			"Usage:",
		},
		{
			"too many paths",
			[]string{contigs, contigs},
			exitUsage,
			"",
			"accepts 1 arg(s)",
		},
		{
			"non-integer min overlap",
			[]string{contigs, "-m", "ten"},
			exitUsage,
			"",
			"min_overlap",
		},
		{
			"zero min overlap",
			[]string{contigs, "-m", "0"},
			exitUsage,
			"",
			"positive integer",
		},
		{
			"unknown flag",
			[]string{contigs, "--max_overlap", "5"},
			exitUsage,
			"",
			"unknown flag",
		},
		{
			"missing file",
			[]string{filepath.Join(t.TempDir(), "missing.fa")},
			exitError,
			"",
			"no such file",
		},
		{
			"empty file",
			[]string{empty},
			exitError,
			"",
			"no FASTA records",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != tt.wantCode {
				t.Errorf("run(%v) = %d, want %d; stderr: %s", tt.args, code, tt.wantCode, stderr.String())
			}
			if got := stdout.String(); got != tt.wantOut {
				t.Errorf("run(%v) wrote %q, want %q", tt.args, got, tt.wantOut)
			}
			if !strings.Contains(stderr.String(), tt.wantErrOut) {
				t.Errorf("run(%v) stderr = %q, want it to contain %q", tt.args, stderr.String(), tt.wantErrOut)
			}
		})
	}
}

func Test_run_version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--version"}, &stdout, &stderr); code != exitOK {
		t.Fatalf("run(--version) = %d; stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), version) {
		t.Errorf("run(--version) wrote %q", stdout.String())
	}
}

func Test_run_docs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"docs", dir}, &stdout, &stderr); code != exitOK {
		t.Fatalf("run(docs) = %d; stderr: %s", code, stderr.String())
	}

	page, err := os.ReadFile(filepath.Join(dir, "findoverlaps.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(page), "---\nlayout: default\ntitle: findoverlaps\n") {
		t.Errorf("docs page is missing its just-the-docs header:\n%s", page)
	}
	if !strings.Contains(string(page), "--min_overlap") {
		t.Errorf("docs page doesn't document --min_overlap:\n%s", page)
	}
	if _, err := os.Stat(filepath.Join(dir, "findoverlaps_docs.md")); !os.IsNotExist(err) {
		t.Errorf("hidden docs command was documented: %v", err)
	}
}
