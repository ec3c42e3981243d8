package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_BadLocale(t *testing.T) {
	t.Parallel()

	_, err := New("not a locale")
	require.Error(t, err)
}

func TestCurrency_IndianGrouping(t *testing.T) {
	t.Parallel()

	f, err := New("en-IN")
	require.NoError(t, err)

	assert.Equal(t, "₹4,50,000", f.Currency(450000))
	assert.Equal(t, "₹5,000", f.Currency(5000))
	assert.Equal(t, "₹0", f.Currency(0))
}

func TestCurrency_USGrouping(t *testing.T) {
	t.Parallel()

	f, err := New("en-US")
	require.NoError(t, err)

	assert.Equal(t, "$450,000", f.Currency(450000))
	assert.Equal(t, "$1,234,568", f.Currency(1234567.8))
}

func TestCurrency_NonFiniteIsZero(t *testing.T) {
	t.Parallel()

	f, err := New("en-IN")
	require.NoError(t, err)

	// The Go analogue of a null/undefined amount renders like zero.
	assert.Equal(t, f.Currency(0), f.Currency(math.NaN()))
	assert.Equal(t, f.Currency(0), f.Currency(math.Inf(1)))
}

func TestPercent(t *testing.T) {
	t.Parallel()

	f, err := New("en-IN")
	require.NoError(t, err)

	assert.Equal(t, "23.40%", f.Percent(23.4, 2))
	assert.Equal(t, "23%", f.Percent(23.4, 0))
	assert.Equal(t, "0.0%", f.Percent(math.NaN(), 1))
	assert.Equal(t, "5%", f.Percent(5, -3), "negative decimals floor at 0")
}

func TestPercentFromFraction(t *testing.T) {
	t.Parallel()

	f, err := New("en-IN")
	require.NoError(t, err)

	assert.Equal(t, "82.0%", f.PercentFromFraction(0.82, 1))
	assert.Equal(t, "0.0%", f.PercentFromFraction(math.NaN(), 1))
	assert.Equal(t, "100.0%", f.PercentFromFraction(1, 1))
}

func TestScoreAndCount(t *testing.T) {
	t.Parallel()

	f, err := New("en-US")
	require.NoError(t, err)

	assert.Equal(t, "0.91", f.Score(0.91))
	assert.Equal(t, "0.00", f.Score(math.NaN()))
	assert.Equal(t, "1000", f.Count(1000))
}
