package names

import (
	"strings"
	"testing"
)

func TestFreshIsDistinct(t *testing.T) {
	s := NewSupply()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := s.Fresh("x")
		if seen[n] {
			t.Fatalf("Fresh returned %q twice", n)
		}
		seen[n] = true
	}
}

func TestFreshStripsTrailingDigits(t *testing.T) {
	s := NewSupply()
	if got := s.Fresh("x12"); got != "x1" {
		t.Errorf("Fresh(x12) = %q, want x1", got)
	}
	if got := s.Fresh("x"); got != "x2" {
		t.Errorf("Fresh(x) = %q, want x2", got)
	}
	// An all-digit base still yields a usable name.
	if got := s.Fresh("42"); got != "v3" {
		t.Errorf("Fresh(42) = %q, want v3", got)
	}
}

func TestReset(t *testing.T) {
	s := NewSupply()
	first := s.Fresh("y")
	s.Fresh("y")
	s.Reset()
	if got := s.Fresh("y"); got != first {
		t.Errorf("after Reset, Fresh = %q, want %q", got, first)
	}
}

func TestRunIDSupply(t *testing.T) {
	a := NewSupply(WithRunID())
	b := NewSupply(WithRunID())
	na, nb := a.Fresh("x"), b.Fresh("x")
	if na == nb {
		t.Errorf("two run-id supplies produced the same name %q", na)
	}
	if !strings.HasPrefix(na, "x_") {
		t.Errorf("run-id name %q should carry the salt after the stem", na)
	}
}

func TestDefaultSupply(t *testing.T) {
	Reset()
	if got := Fresh("z"); got != "z1" {
		t.Errorf("default supply Fresh(z) = %q, want z1", got)
	}
	Reset()
}
