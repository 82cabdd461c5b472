package vm

import "github.com/helix-lang/helix/codon"

// instructionKind is the tagged variant of every decodable opcode.
type instructionKind int

const (
	kindSTART instructionKind = iota
	kindSTOP
	kindMUT
	kindDEL
	kindINS
	kindDUP
	kindTRP
	kindREV
	kindLDI
	kindLDF
	kindLD
	kindST
	kindADDI
	kindCMP
	kindSETF
	kindOUT
	kindIN
)

func (k instructionKind) String() string {
	switch k {
	case kindSTART:
		return "START"
	case kindSTOP:
		return "STOP"
	case kindMUT:
		return "MUT"
	case kindDEL:
		return "DEL"
	case kindINS:
		return "INS"
	case kindDUP:
		return "DUP"
	case kindTRP:
		return "TRP"
	case kindREV:
		return "REV"
	case kindLDI:
		return "LDI"
	case kindLDF:
		return "LDF"
	case kindLD:
		return "LD"
	case kindST:
		return "ST"
	case kindADDI:
		return "ADDI"
	case kindCMP:
		return "CMP"
	case kindSETF:
		return "SETF"
	case kindOUT:
		return "OUT"
	case kindIN:
		return "IN"
	default:
		return "?"
	}
}

// offsetSign declares how a parameter codon's value is to be interpreted
// when it is used as an address offset. Most self-modification parameters
// are plain data (signNone) or unsigned offsets; LD/ST use signed
// offsets.
type offsetSign int

const (
	signNone offsetSign = iota // parameter is immediate data, not an offset
	signUnsigned
	signSigned
)

// decoded describes one opcode's shape: its instruction kind, how many
// parameter codons follow it, and how those parameters are interpreted.
type decoded struct {
	kind  instructionKind
	arity int
	sign  offsetSign
}

// decodeTable is the complete opcode -> (kind, arity, offset-signedness)
// mapping from the decoder specification. Keyed by unsigned codon value so
// lookups are a plain array index.
var decodeTable [64]*decoded

func mustCodon(s string) codon.Codon {
	c, err := codon.FromChars(s[0], s[1], s[2])
	if err != nil {
		panic(err)
	}
	return c
}

func register(letters string, kind instructionKind, arity int, sign offsetSign) {
	decodeTable[mustCodon(letters).ToUnsigned()] = &decoded{kind: kind, arity: arity, sign: sign}
}

func init() {
	register("ATG", kindSTART, 0, signNone)
	register("TGA", kindSTOP, 0, signNone)
	register("CAG", kindMUT, 2, signUnsigned)
	register("CTT", kindDEL, 1, signUnsigned)
	register("CTA", kindINS, 2, signUnsigned)
	register("CCA", kindDUP, 2, signUnsigned)
	register("CCG", kindTRP, 3, signUnsigned)
	register("CCC", kindREV, 2, signUnsigned)
	register("AAA", kindLDI, 1, signNone)
	register("AGT", kindLDF, 0, signNone)
	register("AAG", kindLD, 1, signSigned)
	register("AAC", kindST, 1, signSigned)
	register("AAT", kindADDI, 1, signNone)
	register("ATA", kindCMP, 1, signNone)
	register("TAT", kindSETF, 1, signNone)
	register("GTA", kindOUT, 0, signNone)
	register("GAT", kindIN, 0, signNone)
}

// decode looks up the instruction kind and arity for an opcode codon. The
// second return is false if op is not in the decode table (UnknownOpcode).
func decode(op codon.Codon) (*decoded, bool) {
	d := decodeTable[op.ToUnsigned()]
	return d, d != nil
}

// startCodon is the ATG codon used by interpreter startup scanning.
var startCodon = mustCodon("ATG")
