package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOkAndFail(t *testing.T) {
	ok := Ok(42)
	require.True(t, ok.IsOk())
	assert.False(t, ok.IsFailure())
	assert.Equal(t, 42, ok.Value())
	assert.Panics(t, func() { _ = ok.Error() })

	boom := errors.New("boom")
	failed := Fail[int](boom)
	require.True(t, failed.IsFailure())
	assert.Equal(t, boom, failed.Error())
	assert.Panics(t, func() { _ = failed.Value() })
}

func TestFailWithNilPanics(t *testing.T) {
	assert.Panics(t, func() { Fail[string](nil) })
}

func TestCombineReturnsFirstFailure(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")

	combined := Combine(Ok("a"), Fail[int](first), Fail[string](second))
	require.True(t, combined.IsFailure())
	assert.Equal(t, first, combined.Error())
}

func TestCombineAllOk(t *testing.T) {
	assert.True(t, Combine(Ok(1), Ok("two"), Ok(3.0)).IsOk())
	assert.True(t, Combine().IsOk())
}

func TestMap(t *testing.T) {
	doubled := Map(Ok(21), func(v int) int { return v * 2 })
	assert.Equal(t, 42, doubled.Value())

	boom := errors.New("boom")
	failed := Map(Fail[int](boom), func(v int) string { return "never" })
	assert.Equal(t, boom, failed.Error())
}

func TestEither(t *testing.T) {
	right := Right[error, string]("done")
	require.True(t, right.IsRight())
	assert.Equal(t, "done", right.RightValue())
	assert.Panics(t, func() { _ = right.LeftValue() })

	boom := errors.New("boom")
	left := Left[error, string](boom)
	require.True(t, left.IsLeft())
	assert.Equal(t, boom, left.LeftValue())
	assert.Panics(t, func() { _ = left.RightValue() })

	describe := func(e Either[error, string]) string {
		return Fold(e,
			func(err error) string { return "failed: " + err.Error() },
			func(s string) string { return "ok: " + s },
		)
	}
	assert.Equal(t, "ok: done", describe(right))
	assert.Equal(t, "failed: boom", describe(left))
}
