package overlap

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gabrielvpina/utils/config"
	"github.com/gabrielvpina/utils/internal/fasta"
	"github.com/gabrielvpina/utils/internal/logging"
	"github.com/spf13/cobra"
)

// FindCmd takes a cobra command (with its flags) and prints the overlaps
// between the sequences of the FASTA file in args[0].
func FindCmd(cmd *cobra.Command, args []string) error {
	conf, err := config.New(cmd.Flags())
	if err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), conf.LogLevel, conf.Verbose)
	logger.Debug("loaded config", "min_overlap", conf.MinOverlap, "settings", conf.Settings, "log_level", conf.LogLevel)

	return Run(args[0], conf, cmd.OutOrStdout(), logger)
}

// Run reads the FASTA file at path, finds every overlap between its sequences
// and writes them to out. Nothing is written until the search is finished.
func Run(path string, conf *config.Config, out io.Writer, logger *log.Logger) error {
	start := time.Now()

	records, err := fasta.Read(path)
	if err != nil {
		return err
	}

	seqs := make([]Sequence, 0, len(records))
	for _, r := range records {
		seqs = append(seqs, Sequence{ID: r.ID, Seq: r.Seq})
	}
	set := NewSequenceSet(seqs...)
	logger.Debug("parsed fasta", "path", path, "records", len(records))

	if set.Len() < len(records) {
		logger.Warn("duplicate identifiers in input, keeping the last sequence for each",
			"records", len(records), "unique", set.Len())
	}

	overlaps := Find(set, conf.MinOverlap)
	logger.Debug("found overlaps",
		"overlaps", len(overlaps),
		"min_overlap", conf.MinOverlap,
		"duration_ms", time.Since(start).Milliseconds())

	return Write(out, overlaps)
}
