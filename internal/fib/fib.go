// Package fib implements the memoized Fibonacci sequence that spaces
// topic reviews. The sequence is 1-indexed: F(1) = 1, F(2) = 1, and
// there is no zeroth term.
package fib

import (
	"errors"
	"fmt"
	"iter"
)

// Sentinel errors for indices outside the sequence domain.
// Use errors.Is to check: errors.Is(err, fib.ErrInvalidIndex).
var (
	// ErrInvalidIndex matches any index outside the sequence domain.
	ErrInvalidIndex = errors.New("fib: invalid index")
	// ErrZerothTerm is returned for index 0; the sequence starts at F(1).
	ErrZerothTerm = fmt.Errorf("%w: no zeroth term", ErrInvalidIndex)
	// ErrNegativeTerm is returned for negative indices.
	ErrNegativeTerm = fmt.Errorf("%w: no negative term", ErrInvalidIndex)
)

// Sequence is an append-only memoized Fibonacci sequence. Terms are
// computed on demand and never recomputed or mutated afterwards, so
// repeated lookups are O(1) once a term exists. A Sequence is not safe
// for concurrent use; the planner is single-threaded and owns exactly
// one instance per process.
type Sequence struct {
	memo []int64
}

// New returns a Sequence seeded with F(1) = F(2) = 1.
func New() *Sequence {
	return &Sequence{memo: []int64{1, 1}}
}

// Nth returns F(n), extending the memo up to n if needed. Index 0
// fails with ErrZerothTerm and negative indices with ErrNegativeTerm.
func (s *Sequence) Nth(n int) (int64, error) {
	switch {
	case n == 0:
		return 0, ErrZerothTerm
	case n < 0:
		return 0, ErrNegativeTerm
	}
	for len(s.memo) < n {
		i := len(s.memo)
		s.memo = append(s.memo, s.memo[i-1]+s.memo[i-2])
	}
	return s.memo[n-1], nil
}

// Len returns the number of currently memoized terms.
func (s *Sequence) Len() int {
	return len(s.memo)
}

// Contains reports whether x appears in the sequence. Only meaningful
// for x >= 1; smaller values report false without scanning.
func (s *Sequence) Contains(x int64) bool {
	if x < 1 {
		return false
	}
	for i := 1; ; i++ {
		term, err := s.Nth(i)
		if err != nil {
			return false
		}
		if term == x {
			return true
		}
		if term > x {
			return false
		}
	}
}

// Terms returns a lazy sequence of F(i) for each index, in input order.
// Every call produces a fresh iteration over the same indices, and
// invalid indices surface the same errors as Nth.
func (s *Sequence) Terms(indices []int) iter.Seq2[int64, error] {
	return func(yield func(int64, error) bool) {
		for _, i := range indices {
			if !yield(s.Nth(i)) {
				return
			}
		}
	}
}
