// Package loader converts a source character stream into a Strand: only the
// nucleotide characters A, C, G, T (either case) are significant; everything
// else, including ';'-introduced line comments, is a separator.
package loader

import (
	"bufio"
	"fmt"
	"io"

	"github.com/helix-lang/helix/codon"
	"github.com/helix-lang/helix/strand"
)

// ParseError reports a malformed source stream: a trailing group of 1 or 2
// significant characters that never completed a triple.
type ParseError struct {
	// Offset is the significant-character count at which the dangling group
	// began.
	Offset int
	Got    int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("loader: dangling %d-character group at significant-character offset %d (groups must be triples)", e.Got, e.Offset)
}

// Load reads r to completion and returns the Strand it encodes.
func Load(r io.Reader) (*strand.Strand, error) {
	br := bufio.NewReader(r)
	var significant []byte
	inComment := false

	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("loader: reading source: %w", err)
		}

		if inComment {
			if b == '\n' {
				inComment = false
			}
			continue
		}
		if b == ';' {
			inComment = true
			continue
		}
		if isNucleotide(b) {
			significant = append(significant, b)
		}
		// Anything else (whitespace, punctuation) is a separator.
	}

	if rem := len(significant) % 3; rem != 0 {
		return nil, &ParseError{Offset: len(significant) - rem, Got: rem}
	}

	codons := make([]codon.Codon, 0, len(significant)/3)
	for i := 0; i < len(significant); i += 3 {
		c, err := codon.FromChars(significant[i], significant[i+1], significant[i+2])
		if err != nil {
			return nil, fmt.Errorf("loader: %w", err)
		}
		codons = append(codons, c)
	}
	return strand.New(codons), nil
}

func isNucleotide(b byte) bool {
	switch b {
	case 'A', 'a', 'C', 'c', 'G', 'g', 'T', 't':
		return true
	default:
		return false
	}
}
