// Package disasm renders a Strand as a human-readable instruction listing,
// independent of and without mutating the interpreter. It performs a linear
// sweep from the first ATG+1 (Helix has no branches, so "reachable code" is
// always the straight-line continuation), annotating each opcode position
// with its decoded mnemonic and raw parameter codons.
package disasm

import (
	"fmt"
	"strings"

	"github.com/helix-lang/helix/strand"
)

// mnemonics mirrors the decode table in vm/decoder.go; duplicated here
// rather than imported since the decode table's instruction-kind enum is
// unexported and the listing only needs the opcode codon's name and arity,
// not execution behavior.
var mnemonics = map[string]struct {
	name  string
	arity int
}{
	"ATG": {"START", 0},
	"TGA": {"STOP", 0},
	"CAG": {"MUT", 2},
	"CTT": {"DEL", 1},
	"CTA": {"INS", 2},
	"CCA": {"DUP", 2},
	"CCG": {"TRP", 3},
	"CCC": {"REV", 2},
	"AAA": {"LDI", 1},
	"AGT": {"LDF", 0},
	"AAG": {"LD", 1},
	"AAC": {"ST", 1},
	"AAT": {"ADDI", 1},
	"ATA": {"CMP", 1},
	"TAT": {"SETF", 1},
	"GTA": {"OUT", 0},
	"GAT": {"IN", 0},
}

// Listing renders one line per codon position: its index, letters, unsigned
// and signed value, and — for positions reached by the linear sweep from the
// first ATG+1 — the decoded mnemonic and its raw parameter codons.
func Listing(s *strand.Strand) string {
	var b strings.Builder

	codePositions := sweep(s)

	for i := 0; i < s.Len(); i++ {
		c, _ := s.Get(i)
		fmt.Fprintf(&b, "%4d  %s  u=%-2d s=%-3d", i, c.String(), c.ToUnsigned(), c.ToSigned())
		if m, ok := codePositions[i]; ok {
			fmt.Fprintf(&b, "  %s", m.name)
			for j := 0; j < m.arity; j++ {
				if pc, err := s.Get(i + 1 + j); err == nil {
					fmt.Fprintf(&b, " %s", pc.String())
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// sweep walks the strand the way the interpreter's startup scan and
// fetch/advance loop would, without executing any self-modification, and
// returns the set of positions it would fetch as opcodes together with
// their decoded mnemonic. It stops at STOP, at an unknown opcode, or at the
// end of the strand — exactly the conditions that end a real run, minus any
// self-modification that a genuine run might perform along the way.
func sweep(s *strand.Strand) map[int]struct {
	name  string
	arity int
} {
	out := map[int]struct {
		name  string
		arity int
	}{}

	start := -1
	for i := 0; i < s.Len(); i++ {
		c, _ := s.Get(i)
		if c.String() == "ATG" {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return out
	}

	ip := start
	for ip < s.Len() {
		op, _ := s.Get(ip)
		m, ok := mnemonics[op.String()]
		if !ok {
			break
		}
		out[ip] = m
		if m.name == "STOP" {
			break
		}
		ip += 1 + m.arity
	}
	return out
}
