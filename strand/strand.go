// Package strand implements the Strand: the mutable, variable-length,
// indexable sequence of codons that is simultaneously a Helix program and
// its data.
package strand

import (
	"fmt"

	"github.com/helix-lang/helix/codon"
)

// AddressFault reports an out-of-range codon index during a Strand operation.
type AddressFault struct {
	Op    string
	Index int
	Len   int
}

func (e *AddressFault) Error() string {
	return fmt.Sprintf("strand: %s at index %d out of range [0,%d]", e.Op, e.Index, e.Len)
}

// Strand is the ordered, 0-based, contiguous sequence of codons. It is owned
// exclusively by one interpreter for the duration of a run.
type Strand struct {
	codons []codon.Codon
}

// New returns a Strand holding a copy of the given codons.
func New(codons []codon.Codon) *Strand {
	s := &Strand{codons: make([]codon.Codon, len(codons))}
	copy(s.codons, codons)
	return s
}

// Len returns the current number of codons.
func (s *Strand) Len() int {
	return len(s.codons)
}

// Get returns the codon at position i.
func (s *Strand) Get(i int) (codon.Codon, error) {
	if i < 0 || i >= len(s.codons) {
		return codon.Codon{}, &AddressFault{Op: "get", Index: i, Len: len(s.codons)}
	}
	return s.codons[i], nil
}

// Set overwrites the codon at position i.
func (s *Strand) Set(i int, c codon.Codon) error {
	if i < 0 || i >= len(s.codons) {
		return &AddressFault{Op: "set", Index: i, Len: len(s.codons)}
	}
	s.codons[i] = c
	return nil
}

// Insert inserts c before position i. i == Len() appends.
func (s *Strand) Insert(i int, c codon.Codon) error {
	if i < 0 || i > len(s.codons) {
		return &AddressFault{Op: "insert", Index: i, Len: len(s.codons)}
	}
	s.codons = append(s.codons, codon.Codon{})
	copy(s.codons[i+1:], s.codons[i:])
	s.codons[i] = c
	return nil
}

// Delete removes the codon at position i.
func (s *Strand) Delete(i int) error {
	if i < 0 || i >= len(s.codons) {
		return &AddressFault{Op: "delete", Index: i, Len: len(s.codons)}
	}
	s.codons = append(s.codons[:i], s.codons[i+1:]...)
	return nil
}

// CopyRange returns an owned copy of the n codons starting at start.
func (s *Strand) CopyRange(start, n int) ([]codon.Codon, error) {
	if n < 0 || start < 0 || start+n > len(s.codons) {
		return nil, &AddressFault{Op: "copy_range", Index: start + n, Len: len(s.codons)}
	}
	out := make([]codon.Codon, n)
	copy(out, s.codons[start:start+n])
	return out, nil
}

// Splice inserts seq before position at, atomically with respect to the
// ordering of seq (equivalent to repeated Insert but preserves order in one
// pass).
func (s *Strand) Splice(at int, seq []codon.Codon) error {
	if at < 0 || at > len(s.codons) {
		return &AddressFault{Op: "splice", Index: at, Len: len(s.codons)}
	}
	if len(seq) == 0 {
		return nil
	}
	grown := make([]codon.Codon, len(s.codons)+len(seq))
	copy(grown, s.codons[:at])
	copy(grown[at:], seq)
	copy(grown[at+len(seq):], s.codons[at:])
	s.codons = grown
	return nil
}

// Reverse reverses in place the block [start, start+n).
func (s *Strand) Reverse(start, n int) error {
	if n < 0 || start < 0 || start+n > len(s.codons) {
		return &AddressFault{Op: "reverse", Index: start + n, Len: len(s.codons)}
	}
	block := s.codons[start : start+n]
	for i, j := 0, len(block)-1; i < j; i, j = i+1, j-1 {
		block[i], block[j] = block[j], block[i]
	}
	return nil
}
