package codon_test

import (
	"testing"

	"github.com/helix-lang/helix/codon"
)

func TestFromChars(t *testing.T) {
	tests := []struct {
		name       string
		x, y, z    byte
		wantUnsign int
		wantErr    bool
	}{
		{"ATG start", 'A', 'T', 'G', 0*16 + 3*4 + 2, false},
		{"lowercase", 'a', 't', 'g', 0*16 + 3*4 + 2, false},
		{"AAA zero", 'A', 'A', 'A', 0, false},
		{"TTT max", 'T', 'T', 'T', 63, false},
		{"bad char", 'A', 'B', 'A', 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := codon.FromChars(tc.x, tc.y, tc.z)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got codon %v", c)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := c.ToUnsigned(); got != tc.wantUnsign {
				t.Errorf("ToUnsigned() = %d, want %d", got, tc.wantUnsign)
			}
		})
	}
}

func TestSignedRange(t *testing.T) {
	tests := []struct {
		u    int
		want int
	}{
		{0, 0},
		{31, 31},
		{32, -32},
		{63, -1},
	}
	for _, tc := range tests {
		c := codon.FromUnsigned(tc.u)
		if got := c.ToSigned(); got != tc.want {
			t.Errorf("FromUnsigned(%d).ToSigned() = %d, want %d", tc.u, got, tc.want)
		}
	}
}

// Codon round-trip: for every codon value, from_unsigned(to_unsigned) and
// from_signed(to_signed) return the original codon.
func TestRoundTrip(t *testing.T) {
	for u := 0; u < 64; u++ {
		c := codon.FromUnsigned(u)
		if got := codon.FromUnsigned(c.ToUnsigned()); got != c {
			t.Errorf("unsigned round-trip broke at u=%d: got %v, want %v", u, got, c)
		}
		if got := codon.FromSigned(c.ToSigned()); got != c {
			t.Errorf("signed round-trip broke at u=%d: got %v, want %v", u, got, c)
		}
	}
}

// Character round-trip: for every v in [0,63], char_to_value(value_to_char(v)) == v.
func TestCharRoundTrip(t *testing.T) {
	for v := 0; v < 64; v++ {
		ch, err := codon.ValueToChar(v)
		if err != nil {
			t.Fatalf("ValueToChar(%d): %v", v, err)
		}
		got, err := codon.CharToValue(ch)
		if err != nil {
			t.Fatalf("CharToValue(%q): %v", ch, err)
		}
		if got != v {
			t.Errorf("char round-trip broke at v=%d: got %d via %q", v, got, ch)
		}
	}
}

func TestToChar(t *testing.T) {
	tests := []struct {
		u    int
		want byte
	}{
		{0, 'A'},
		{25, 'Z'},
		{26, 'a'},
		{51, 'z'},
		{52, '0'},
		{61, '9'},
		{62, ' '},
		{63, '\n'},
	}
	for _, tc := range tests {
		c := codon.FromUnsigned(tc.u)
		got, err := c.ToChar()
		if err != nil {
			t.Fatalf("ToChar(): %v", err)
		}
		if got != tc.want {
			t.Errorf("u=%d: ToChar() = %q, want %q", tc.u, got, tc.want)
		}
	}
}

func TestString(t *testing.T) {
	c, err := codon.FromChars('A', 'T', 'G')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.String() != "ATG" {
		t.Errorf("String() = %q, want ATG", c.String())
	}
}
