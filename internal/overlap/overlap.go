// Package overlap finds exact end/start matches between the sequences of a
// multi-FASTA file. These are candidate adjacencies for stitching contigs.
package overlap

import "fmt"

// Side is the end of a sequence that takes part in an overlap.
type Side string

const (
	// Start is the 5' end: the first characters of a sequence
	Start Side = "start"

	// End is the 3' end: the last characters of a sequence
	End Side = "end"
)

// Record is a single overlap between two sequences.
//
// Seq is Length characters long and is both the Source's SourceSide and the
// Target's TargetSide.
type Record struct {
	Source     string
	SourceSide Side
	Target     string
	TargetSide Side
	Length     int
	Seq        string
}

// String is the line findoverlaps prints for the record.
func (r Record) String() string {
	return fmt.Sprintf(
		"Overlap found: %s (%s) aligns with %s (%s) | Length: %d | Sequence: %s",
		r.Source, r.SourceSide, r.Target, r.TargetSide, r.Length, r.Seq,
	)
}

// Find returns every overlap of at least minOverlap characters between the sequences in set.
//
// Every ordered pair of distinct identifiers is checked, so (A, B) and (B, A) are both
// visited, with the first identifier in the outer loop and both loops in insertion order.
// For each pair, end->start overlaps come before start->end overlaps, each in ascending
// length. A pair that matches at several lengths gets a Record for each of them.
//
// A minOverlap below 1 is treated as 1: an empty match isn't an overlap.
func Find(set *SequenceSet, minOverlap int) []Record {
	if minOverlap < 1 {
		minOverlap = 1
	}

	var records []Record
	ids := set.IDs()
	for _, id1 := range ids {
		seq1, _ := set.Get(id1)

		for _, id2 := range ids {
			if id1 == id2 {
				continue
			}
			seq2, _ := set.Get(id2)

			// the end of seq1 matches the start of seq2
			for _, n := range junctions(seq1, seq2, minOverlap) {
				records = append(records, Record{
					Source:     id1,
					SourceSide: End,
					Target:     id2,
					TargetSide: Start,
					Length:     n,
					Seq:        seq1[len(seq1)-n:],
				})
			}

			// the start of seq1 matches the end of seq2
			for _, n := range junctions(seq2, seq1, minOverlap) {
				records = append(records, Record{
					Source:     id1,
					SourceSide: Start,
					Target:     id2,
					TargetSide: End,
					Length:     n,
					Seq:        seq1[:n],
				})
			}
		}
	}
	return records
}

// junctions returns, in ascending order, every length n >= minHomology for which
// the last n characters of left are identical to the first n characters of right.
func junctions(left, right string, minHomology int) (lengths []int) {
	maxHomology := len(left)
	if len(right) < maxHomology {
		maxHomology = len(right)
	}

	for n := minHomology; n <= maxHomology; n++ {
		if left[len(left)-n:] == right[:n] {
			lengths = append(lengths, n)
		}
	}
	return
}
