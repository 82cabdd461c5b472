package loader_test

import (
	"strings"
	"testing"

	"github.com/helix-lang/helix/loader"
)

func TestLoadIgnoresWhitespaceAndCase(t *testing.T) {
	s, err := loader.Load(strings.NewReader("atg   TGA\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	c0, _ := s.Get(0)
	if c0.ToUnsigned() != 14 { // ATG: digit(A)=0,digit(T)=3,digit(G)=2 -> 0+12+2=14
		t.Errorf("first codon unsigned = %d, want 14", c0.ToUnsigned())
	}
}

func TestLoadStripsLineComments(t *testing.T) {
	s, err := loader.Load(strings.NewReader("; a header comment\nATG TGA ; trailing comment\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
}

func TestLoadIgnoresNonACGTPunctuation(t *testing.T) {
	s, err := loader.Load(strings.NewReader("ATG-TGA, 123!!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
}

func TestLoadEmptyYieldsEmptyStrand(t *testing.T) {
	s, err := loader.Load(strings.NewReader("   ; just a comment\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestLoadDanglingTripleIsParseError(t *testing.T) {
	_, err := loader.Load(strings.NewReader("ATG TG"))
	if err == nil {
		t.Fatal("expected ParseError for a dangling 2-character group")
	}
	if _, ok := err.(*loader.ParseError); !ok {
		t.Fatalf("error is not *loader.ParseError: %T", err)
	}
}
