// Package fib provides the Fibonacci sequence used as the balancing
// primitive across the arena: damage, costs, HP pools, and reward odds
// are all expressed as Fibonacci numbers so the whole progression curve
// can be retuned from a single place.
package fib

// Small values are hit constantly during effect resolution, so they are
// precomputed once.
var table = [...]int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233, 377, 610, 987, 1597, 2584, 4181, 6765}

// N returns the nth Fibonacci number with N(0)=0 and N(1)=1.
// Negative n returns 0.
func N(n int) int {
	if n < 0 {
		return 0
	}
	if n < len(table) {
		return table[n]
	}
	a, b := table[len(table)-2], table[len(table)-1]
	for i := len(table) - 1; i < n; i++ {
		a, b = b, a+b
	}
	return b
}
