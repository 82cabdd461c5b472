// Package vm implements the Helix virtual machine: registers, I/O ports, the
// opcode decoder, and the fetch/execute interpreter loop.
package vm

import (
	"github.com/golang/glog"

	"github.com/helix-lang/helix/codon"
	"github.com/helix-lang/helix/strand"
)

// Outcome distinguishes the two non-fault ways a run can end.
type Outcome int

const (
	// Stopped means a STOP instruction executed.
	Stopped Outcome = iota
	// OutOfBoundsHalt means the instruction pointer ran past the end of the
	// Strand (this also covers the "no ATG found" startup case).
	OutOfBoundsHalt
)

func (o Outcome) String() string {
	switch o {
	case Stopped:
		return "stopped"
	case OutOfBoundsHalt:
		return "out-of-bounds halt"
	default:
		return "unknown outcome"
	}
}

// Interpreter owns one Strand and one set of Registers for the duration of a
// run.
type Interpreter struct {
	S   *strand.Strand
	Reg *Registers
	In  InputPort
	Out OutputPort

	// Verbose, when true, logs run start/stop and fault diagnostics through glog.
	Verbose bool

	ip        int
	budget    int
	remaining int
}

// New builds an Interpreter over s. budget is the optional instruction
// ceiling; 0 means unlimited.
func New(s *strand.Strand, in InputPort, out OutputPort, budget int) *Interpreter {
	return &Interpreter{
		S:         s,
		Reg:       NewRegisters(),
		In:        in,
		Out:       out,
		budget:    budget,
		remaining: budget,
	}
}

// IP returns the current instruction pointer, useful for diagnostics after a
// run ends.
func (vm *Interpreter) IP() int {
	return vm.ip
}

// Run scans for the first ATG, then executes instructions until a STOP, an
// out-of-bounds instruction pointer, or a fault.
func (vm *Interpreter) Run() (Outcome, error) {
	vm.ip = startIndex(vm.S)
	if vm.Verbose {
		glog.Infof("helix: run start ip=%d strand_len=%d budget=%d", vm.ip, vm.S.Len(), vm.budget)
	}

	for {
		if vm.budget > 0 && vm.remaining <= 0 {
			f := newFault(KindBudgetExhausted, vm.ip, codon.Codon{}, nil, vm.S.Len(), nil)
			vm.logFault(f)
			return 0, f
		}

		halted, outcome, err := vm.step()
		if err != nil {
			vm.logFault(err)
			return 0, err
		}
		if vm.budget > 0 {
			vm.remaining--
		}
		if halted {
			if vm.Verbose {
				glog.Infof("helix: run end outcome=%s ip=%d", outcome, vm.ip)
			}
			return outcome, nil
		}
	}
}

func (vm *Interpreter) logFault(err error) {
	if vm.Verbose {
		glog.Errorf("helix: fault %v", err)
	}
}

// startIndex scans left to right for the first ATG codon. If none is found,
// it returns s.Len() so the main loop's ordinary IP>=len check produces an
// immediate, successful OutOfBoundsHalt with no instructions executed.
func startIndex(s *strand.Strand) int {
	for i := 0; i < s.Len(); i++ {
		c, _ := s.Get(i)
		if c == startCodon {
			return i + 1
		}
	}
	return s.Len()
}

// step executes exactly one instruction (or the startup no-op), advancing
// ip. halted is true when the run should stop; outcome is only meaningful
// when halted is true and err is nil.
func (vm *Interpreter) step() (halted bool, outcome Outcome, err error) {
	ip := vm.ip
	if ip >= vm.S.Len() {
		return true, OutOfBoundsHalt, nil
	}

	op, _ := vm.S.Get(ip) // in range by the check above
	d, ok := decode(op)
	if !ok {
		return false, 0, newFault(KindUnknownOpcode, ip, op, nil, vm.S.Len(), nil)
	}

	params := make([]codon.Codon, d.arity)
	for j := 0; j < d.arity; j++ {
		p, gerr := vm.S.Get(ip + 1 + j)
		if gerr != nil {
			return false, 0, newFault(KindAddressFault, ip, op, params[:j], vm.S.Len(), gerr)
		}
		params[j] = p
	}

	nextIP := ip + 1 + d.arity
	fault := func(kind Kind, cause error) (bool, Outcome, error) {
		return false, 0, newFault(kind, ip, op, params, vm.S.Len(), cause)
	}

	switch d.kind {
	case kindSTART:
		// no-op

	case kindSTOP:
		vm.ip = ip
		return true, Stopped, nil

	case kindMUT:
		off := params[0].ToUnsigned()
		if err := vm.S.Set(ip+off, params[1]); err != nil {
			return fault(KindAddressFault, err)
		}

	case kindDEL:
		off := params[0].ToUnsigned()
		idx := ip + off
		if err := vm.S.Delete(idx); err != nil {
			return fault(KindAddressFault, err)
		}
		if idx < nextIP {
			nextIP--
		}

	case kindINS:
		off := params[0].ToUnsigned()
		idx := ip + off
		if err := vm.S.Insert(idx, params[1]); err != nil {
			return fault(KindAddressFault, err)
		}
		if idx <= nextIP {
			nextIP++
		}

	case kindDUP:
		startOff := params[0].ToUnsigned()
		n := params[1].ToUnsigned()
		s := ip + startOff
		block, err := vm.S.CopyRange(s, n)
		if err != nil {
			return fault(KindAddressFault, err)
		}
		if err := vm.S.Splice(s+n, block); err != nil {
			return fault(KindAddressFault, err)
		}
		if s+n <= nextIP {
			nextIP += n
		}

	case kindTRP:
		srcOff := params[0].ToUnsigned()
		n := params[1].ToUnsigned()
		dstOff := params[2].ToUnsigned()
		s := ip + srcOff
		dst := ip + dstOff

		block, err := vm.S.CopyRange(s, n)
		if err != nil {
			return fault(KindAddressFault, err)
		}

		dprime := dst
		if dst > s {
			dprime = dst - n
		}
		// Check the insertion point against the post-cut length before any
		// mutation, so a faulting TRP leaves the strand unchanged.
		if dprime > vm.S.Len()-n {
			return fault(KindAddressFault, &strand.AddressFault{Op: "insert", Index: dprime, Len: vm.S.Len() - n})
		}

		// Cut: n sequential deletions at the same index s, each shifting the
		// remainder left. Apply the DEL next_ip correction for each.
		for i := 0; i < n; i++ {
			if err := vm.S.Delete(s); err != nil {
				return fault(KindAddressFault, err)
			}
			if s < nextIP {
				nextIP--
			}
		}

		// Insert: n sequential insertions starting at dprime. Apply the INS
		// next_ip correction for each.
		for i, c := range block {
			insIdx := dprime + i
			if err := vm.S.Insert(insIdx, c); err != nil {
				return fault(KindAddressFault, err)
			}
			if insIdx <= nextIP {
				nextIP++
			}
		}

	case kindREV:
		startOff := params[0].ToUnsigned()
		n := params[1].ToUnsigned()
		if err := vm.S.Reverse(ip+startOff, n); err != nil {
			return fault(KindAddressFault, err)
		}

	case kindLDI:
		vm.Reg.AccLoad(params[0])

	case kindLDF:
		if vm.Reg.FlagGet() {
			vm.Reg.AccLoad(codon.FromUnsigned(1))
		} else {
			vm.Reg.AccLoad(codon.FromUnsigned(0))
		}

	case kindLD:
		off := params[0].ToSigned()
		idx := ip + off
		if idx < 0 {
			return fault(KindAddressFault, nil)
		}
		c, err := vm.S.Get(idx)
		if err != nil {
			return fault(KindAddressFault, err)
		}
		vm.Reg.AccLoad(c)

	case kindST:
		off := params[0].ToSigned()
		idx := ip + off
		if idx < 0 {
			return fault(KindAddressFault, nil)
		}
		if err := vm.S.Set(idx, vm.Reg.AccGet()); err != nil {
			return fault(KindAddressFault, err)
		}

	case kindADDI:
		vm.Reg.AccAddSigned(params[0].ToSigned())

	case kindCMP:
		vm.Reg.FlagSet(vm.Reg.AccGet().ToUnsigned() == params[0].ToUnsigned())

	case kindSETF:
		switch params[0].X {
		case codon.A, codon.C:
			vm.Reg.FlagSet(true)
		case codon.G, codon.T:
			vm.Reg.FlagSet(false)
		default:
			panic("vm: nucleotide outside {A,C,G,T}")
		}

	case kindOUT:
		ch, err := vm.Reg.AccGet().ToChar()
		if err != nil {
			return fault(KindDomainFault, err)
		}
		if err := vm.Out.Write(ch); err != nil {
			return fault(KindIoFault, err)
		}

	case kindIN:
		v, err := vm.In.Read()
		if err != nil {
			return fault(KindIoFault, err)
		}
		vm.Reg.AccLoad(codon.FromUnsigned(v))
	}

	vm.ip = nextIP
	return false, 0, nil
}
