package fib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNthBaseCases(t *testing.T) {
	s := New()

	f1, err := s.Nth(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), f1)

	f2, err := s.Nth(2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), f2)
}

func TestNthRecurrence(t *testing.T) {
	s := New()
	for n := 3; n <= 40; n++ {
		fn, err := s.Nth(n)
		require.NoError(t, err)
		fn1, err := s.Nth(n - 1)
		require.NoError(t, err)
		fn2, err := s.Nth(n - 2)
		require.NoError(t, err)
		assert.Equal(t, fn1+fn2, fn, "F(%d)", n)
	}
}

func TestNthInvalidIndex(t *testing.T) {
	s := New()

	_, err := s.Nth(0)
	assert.ErrorIs(t, err, ErrZerothTerm)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	_, err = s.Nth(-1)
	assert.ErrorIs(t, err, ErrNegativeTerm)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestNthMemoIdempotence(t *testing.T) {
	s := New()

	f10, err := s.Nth(10)
	require.NoError(t, err)
	assert.Equal(t, int64(55), f10)
	grown := s.Len()

	// Repeated calls return the same value without regrowing the memo.
	again, err := s.Nth(10)
	require.NoError(t, err)
	assert.Equal(t, f10, again)
	assert.Equal(t, grown, s.Len())

	// Extending the memo does not alter earlier terms.
	_, err = s.Nth(30)
	require.NoError(t, err)
	f5, err := s.Nth(5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), f5)
}

func TestContains(t *testing.T) {
	s := New()

	for _, x := range []int64{1, 2, 3, 5, 8, 13, 21, 34, 55} {
		assert.True(t, s.Contains(x), "%d should be a Fibonacci term", x)
	}
	for _, x := range []int64{4, 6, 7, 9, 10, 54, 56} {
		assert.False(t, s.Contains(x), "%d should not be a Fibonacci term", x)
	}

	assert.False(t, s.Contains(0))
	assert.False(t, s.Contains(-8))
}

func TestTermsOrder(t *testing.T) {
	s := New()

	var got []int64
	for term, err := range s.Terms([]int{5, 1, 7}) {
		require.NoError(t, err)
		got = append(got, term)
	}
	assert.Equal(t, []int64{5, 1, 13}, got)

	// Each call yields a fresh iteration.
	got = got[:0]
	for term, err := range s.Terms([]int{5, 1, 7}) {
		require.NoError(t, err)
		got = append(got, term)
	}
	assert.Equal(t, []int64{5, 1, 13}, got)
}

func TestTermsPropagatesErrors(t *testing.T) {
	s := New()

	var errs []error
	for _, err := range s.Terms([]int{2, 0, -3}) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 3)
	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], ErrZerothTerm)
	assert.ErrorIs(t, errs[2], ErrNegativeTerm)
}
