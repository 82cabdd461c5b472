package vm

import "github.com/helix-lang/helix/codon"

// Registers holds the accumulator and flag; created zeroed at program start.
type Registers struct {
	acc  codon.Codon
	flag bool
}

// NewRegisters returns zeroed registers: ACC = AAA (0), FLAG = false.
func NewRegisters() *Registers {
	return &Registers{acc: codon.FromUnsigned(0), flag: false}
}

// AccLoad replaces ACC with c.
func (r *Registers) AccLoad(c codon.Codon) {
	r.acc = c
}

// AccGet returns the current value of ACC.
func (r *Registers) AccGet() codon.Codon {
	return r.acc
}

// AccAddSigned replaces ACC by (acc.ToUnsigned() + s) mod 64 mapped back to a codon.
func (r *Registers) AccAddSigned(s int) {
	r.acc = codon.FromUnsigned(r.acc.ToUnsigned() + s)
}

// FlagSet sets FLAG.
func (r *Registers) FlagSet(b bool) {
	r.flag = b
}

// FlagGet returns FLAG.
func (r *Registers) FlagGet() bool {
	return r.flag
}
