package fib

import "testing"

func TestN(t *testing.T) {
	want := []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233, 377, 610, 987, 1597, 2584, 4181, 6765}

	for n, expected := range want {
		if got := N(n); got != expected {
			t.Errorf("N(%d) = %d, want %d", n, got, expected)
		}
	}
}

func TestNNegative(t *testing.T) {
	for _, n := range []int{-1, -5, -100} {
		if got := N(n); got != 0 {
			t.Errorf("N(%d) = %d, want 0", n, got)
		}
	}
}

func TestNBeyondTable(t *testing.T) {
	// Values past the precomputed table come from the iterative path.
	if got := N(25); got != 75025 {
		t.Errorf("N(25) = %d, want 75025", got)
	}
	if got := N(30); got != 832040 {
		t.Errorf("N(30) = %d, want 832040", got)
	}
}

func TestNMonotonic(t *testing.T) {
	prev := N(0)
	for n := 1; n <= 40; n++ {
		cur := N(n)
		if cur < prev {
			t.Fatalf("sequence decreased at n=%d: %d < %d", n, cur, prev)
		}
		prev = cur
	}
}
