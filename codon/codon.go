// Package codon implements the Codon value type: an ordered triple of
// nucleotides over the alphabet {A,C,G,T} and its unsigned/signed/character
// conversions.
package codon

import "fmt"

// Nucleotide is one of A, C, G, T.
type Nucleotide byte

const (
	A Nucleotide = 'A'
	C Nucleotide = 'C'
	G Nucleotide = 'G'
	T Nucleotide = 'T'
)

// digit maps a nucleotide to its base-4 value, per the mapping
// digit(A)=0, digit(C)=1, digit(G)=2, digit(T)=3.
func digit(n Nucleotide) (int, bool) {
	switch n {
	case A:
		return 0, true
	case C:
		return 1, true
	case G:
		return 2, true
	case T:
		return 3, true
	default:
		return 0, false
	}
}

func fromDigit(d int) Nucleotide {
	switch d {
	case 0:
		return A
	case 1:
		return C
	case 2:
		return G
	case 3:
		return T
	default:
		panic(fmt.Sprintf("codon: digit %d out of range [0,3]", d))
	}
}

// Codon is an ordered triple (X,Y,Z) with each element in {A,C,G,T}. Codons
// are plain values: copied, never aliased.
type Codon struct {
	X, Y, Z Nucleotide
}

// ParseError reports a malformed attempt to build a Codon from characters.
type ParseError struct {
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("codon: parse error at offset %d: %s", e.Offset, e.Reason)
}

// FromChars builds a Codon from three characters, each one of A/C/G/T in
// either case. Any other character fails with *ParseError.
func FromChars(x, y, z byte) (Codon, error) {
	nx, ok := normalize(x)
	if !ok {
		return Codon{}, &ParseError{Reason: fmt.Sprintf("invalid nucleotide %q", x)}
	}
	ny, ok := normalize(y)
	if !ok {
		return Codon{}, &ParseError{Reason: fmt.Sprintf("invalid nucleotide %q", y)}
	}
	nz, ok := normalize(z)
	if !ok {
		return Codon{}, &ParseError{Reason: fmt.Sprintf("invalid nucleotide %q", z)}
	}
	return Codon{X: nx, Y: ny, Z: nz}, nil
}

func normalize(b byte) (Nucleotide, bool) {
	switch b {
	case 'A', 'a':
		return A, true
	case 'C', 'c':
		return C, true
	case 'G', 'g':
		return G, true
	case 'T', 't':
		return T, true
	default:
		return 0, false
	}
}

// ToUnsigned returns the codon's value in [0,63]: u = 16*digit(X) + 4*digit(Y) + digit(Z).
func (c Codon) ToUnsigned() int {
	dx, _ := digit(c.X)
	dy, _ := digit(c.Y)
	dz, _ := digit(c.Z)
	return 16*dx + 4*dy + dz
}

// ToSigned returns the codon's signed interpretation in [-32,31]: u if u<32, else u-64.
func (c Codon) ToSigned() int {
	u := c.ToUnsigned()
	if u < 32 {
		return u
	}
	return u - 64
}

// FromUnsigned builds the Codon whose unsigned value is n. n is taken modulo 64.
func FromUnsigned(n int) Codon {
	u := ((n % 64) + 64) % 64
	dx := (u >> 4) & 0x3
	dy := (u >> 2) & 0x3
	dz := u & 0x3
	return Codon{X: fromDigit(dx), Y: fromDigit(dy), Z: fromDigit(dz)}
}

// FromSigned builds the Codon whose signed value is n, n in [-32,31].
func FromSigned(n int) Codon {
	u := n
	if u < 0 {
		u += 64
	}
	return FromUnsigned(u)
}

// String renders the three nucleotides, e.g. "ATG".
func (c Codon) String() string {
	return string([]byte{byte(c.X), byte(c.Y), byte(c.Z)})
}

// ToChar maps the codon's unsigned value to a printable character per the
// encoding table: 0-25 -> A-Z, 26-51 -> a-z, 52-61 -> 0-9, 62 -> space, 63 -> newline.
func (c Codon) ToChar() (byte, error) {
	return ValueToChar(c.ToUnsigned())
}

// ValueToChar maps a 6-bit value to its printable character.
func ValueToChar(v int) (byte, error) {
	switch {
	case v >= 0 && v <= 25:
		return byte('A' + v), nil
	case v >= 26 && v <= 51:
		return byte('a' + (v - 26)), nil
	case v >= 52 && v <= 61:
		return byte('0' + (v - 52)), nil
	case v == 62:
		return ' ', nil
	case v == 63:
		return '\n', nil
	default:
		return 0, fmt.Errorf("codon: value %d outside [0,63]", v)
	}
}

// CharToValue maps a printable character back to its 6-bit value, the
// inverse of ValueToChar. Returns an error for characters outside the
// encoding's range.
func CharToValue(ch byte) (int, error) {
	switch {
	case ch >= 'A' && ch <= 'Z':
		return int(ch - 'A'), nil
	case ch >= 'a' && ch <= 'z':
		return int(ch-'a') + 26, nil
	case ch >= '0' && ch <= '9':
		return int(ch-'0') + 52, nil
	case ch == ' ':
		return 62, nil
	case ch == '\n':
		return 63, nil
	default:
		return 0, fmt.Errorf("codon: character %q has no defined value", ch)
	}
}
