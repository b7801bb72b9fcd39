package overlap

// Sequence is a named residue string. Seq is kept exactly as read.
type Sequence struct {
	ID  string
	Seq string
}

// SequenceSet maps identifiers to sequences and remembers the order the
// identifiers were first seen in, so pairs are always visited in input order.
// It's read-only once built.
type SequenceSet struct {
	ids  []string
	seqs map[string]string
}

// NewSequenceSet builds a set from seqs. If an identifier repeats, the later
// sequence replaces the earlier one but the identifier keeps its first position.
func NewSequenceSet(seqs ...Sequence) *SequenceSet {
	s := &SequenceSet{
		ids:  make([]string, 0, len(seqs)),
		seqs: make(map[string]string, len(seqs)),
	}
	for _, seq := range seqs {
		if _, seen := s.seqs[seq.ID]; !seen {
			s.ids = append(s.ids, seq.ID)
		}
		s.seqs[seq.ID] = seq.Seq
	}
	return s
}

// Len is the number of distinct identifiers.
func (s *SequenceSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// Get returns the sequence for id.
func (s *SequenceSet) Get(id string) (string, bool) {
	if s == nil {
		return "", false
	}
	seq, ok := s.seqs[id]
	return seq, ok
}

// IDs returns a copy of the identifiers in insertion order.
func (s *SequenceSet) IDs() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.ids...)
}
