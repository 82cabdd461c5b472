package vm

import (
	"fmt"

	"github.com/helix-lang/helix/codon"
)

// Kind identifies the category of a run-ending fault.
type Kind int

const (
	// KindUnknownOpcode marks an opcode codon not in the decode table.
	KindUnknownOpcode Kind = iota
	// KindAddressFault marks an out-of-range codon index.
	KindAddressFault
	// KindIoFault marks input exhaustion or an out-of-range input value.
	KindIoFault
	// KindDomainFault marks an OUT whose ACC maps to no defined character.
	KindDomainFault
	// KindBudgetExhausted marks an exceeded instruction budget.
	KindBudgetExhausted
)

func (k Kind) String() string {
	switch k {
	case KindUnknownOpcode:
		return "UnknownOpcode"
	case KindAddressFault:
		return "AddressFault"
	case KindIoFault:
		return "IoFault"
	case KindDomainFault:
		return "DomainFault"
	case KindBudgetExhausted:
		return "BudgetExhausted"
	default:
		return "UnknownFault"
	}
}

// Fault is the single error type surfaced by a run that cannot continue. It
// carries the diagnostic snapshot required by the propagation policy: IP,
// opcode, parameter snapshot, and strand length.
type Fault struct {
	Kind      Kind
	IP        int
	Op        codon.Codon
	Params    []codon.Codon
	StrandLen int
	cause     error
}

func (f *Fault) Error() string {
	msg := fmt.Sprintf("%s at ip=%d op=%s params=%v strand_len=%d", f.Kind, f.IP, f.Op, f.Params, f.StrandLen)
	if f.cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, f.cause)
	}
	return msg
}

// Unwrap exposes the underlying cause, if any, for errors.Is/errors.As.
func (f *Fault) Unwrap() error {
	return f.cause
}

func newFault(kind Kind, ip int, op codon.Codon, params []codon.Codon, strandLen int, cause error) *Fault {
	return &Fault{Kind: kind, IP: ip, Op: op, Params: params, StrandLen: strandLen, cause: cause}
}
