package triangle

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rec builds a record with a decimal value parsed from s.
func rec(product string, originYear, developmentYear int, s string) IncrementalRecord {
	return IncrementalRecord{
		Product:          product,
		OriginYear:       originYear,
		DevelopmentYear:  developmentYear,
		IncrementalValue: decimal.RequireFromString(s),
	}
}

// strs renders a value sequence the way the formatter does, for compact
// expectations.
func strs(values []decimal.Decimal) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

func TestAccumulate_EmptyInput(t *testing.T) {
	_, err := Accumulate(nil)
	require.Error(t, err)
}

func TestAccumulate_SingleProduct(t *testing.T) {
	// Scenario: product "x" over 2010..2012.
	records := []IncrementalRecord{
		rec("x", 2010, 2010, "0"),
		rec("x", 2010, 2011, "4"),
		rec("x", 2010, 2012, "5"),
	}

	result, err := Accumulate(records)
	require.NoError(t, err)

	assert.Equal(t, 2010, result.MinOriginYear)
	assert.Equal(t, 3, result.NDevelopmentYears)
	assert.Equal(t, []string{"x"}, result.Products())

	// Origin 2010 develops 0,4,9; origins 2011 and 2012 have no data and
	// accumulate zero for every remaining cell.
	assert.Equal(t,
		[]string{"0", "4", "9", "0", "0", "0"},
		strs(result.Values("x")))
}

func TestAccumulate_SingleCell(t *testing.T) {
	// One record, one development period.
	records := []IncrementalRecord{rec("b", 2015, 2015, "200")}

	result, err := Accumulate(records)
	require.NoError(t, err)

	assert.Equal(t, 2015, result.MinOriginYear)
	assert.Equal(t, 1, result.NDevelopmentYears)
	assert.Equal(t, []string{"200"}, strs(result.Values("b")))
}

func TestAccumulate_TriangularLength(t *testing.T) {
	// 4 development periods: every product's flattened sequence has
	// 4+3+2+1 = 10 values, whether or not it has data everywhere.
	records := []IncrementalRecord{
		rec("a", 2000, 2003, "1.5"),
		rec("b", 2001, 2001, "7"),
	}

	result, err := Accumulate(records)
	require.NoError(t, err)

	require.Equal(t, 4, result.NDevelopmentYears)
	for _, product := range result.Products() {
		assert.Len(t, result.Values(product), 10, "product %s", product)
	}
}

func TestAccumulate_ProductOrderIsFirstSeen(t *testing.T) {
	records := []IncrementalRecord{
		rec("gamma", 2020, 2020, "1"),
		rec("alpha", 2020, 2020, "1"),
		rec("gamma", 2020, 2021, "1"),
		rec("beta", 2021, 2021, "1"),
	}

	result, err := Accumulate(records)
	require.NoError(t, err)

	assert.Equal(t, []string{"gamma", "alpha", "beta"}, result.Products())
}

func TestAccumulate_ReorderingAcrossProductsKeepsValues(t *testing.T) {
	forward := []IncrementalRecord{
		rec("a", 2010, 2010, "10"),
		rec("a", 2010, 2011, "5.25"),
		rec("b", 2011, 2011, "3"),
	}
	reversed := []IncrementalRecord{forward[2], forward[1], forward[0]}

	first, err := Accumulate(forward)
	require.NoError(t, err)
	second, err := Accumulate(reversed)
	require.NoError(t, err)

	// Product line order may differ; per-product sequences may not.
	for _, product := range first.Products() {
		assert.Equal(t, strs(first.Values(product)), strs(second.Values(product)))
	}
}

func TestAccumulate_DuplicateCellsAreSummed(t *testing.T) {
	records := []IncrementalRecord{
		rec("x", 2010, 2010, "1.11"),
		rec("x", 2010, 2010, "2.22"),
		rec("x", 2010, 2011, "0.07"),
	}

	result, err := Accumulate(records)
	require.NoError(t, err)

	assert.Equal(t, []string{"3.33", "3.4"}, strs(result.Values("x")))
}

func TestAccumulate_RoundingAtEveryStep(t *testing.T) {
	// Each step rounds the running total to 2 places before the next
	// increment is added.
	records := []IncrementalRecord{
		rec("x", 2010, 2010, "0.005"),
		rec("x", 2010, 2011, "0.004"),
	}

	result, err := Accumulate(records)
	require.NoError(t, err)

	// 0.005 rounds half away from zero to 0.01; adding 0.004 gives 0.014,
	// which rounds back to 0.01. Without per-step rounding the second
	// value would round 0.009 to 0.01 as well, but the first would be
	// 0.01 only under per-step rounding.
	assert.Equal(t, []string{"0.01", "0.01"}, strs(result.Values("x")))
}

func TestAccumulate_ZeroFill(t *testing.T) {
	// A gap in development years repeats the prior running total.
	records := []IncrementalRecord{
		rec("x", 2010, 2010, "100"),
		rec("x", 2010, 2012, "50"),
	}

	result, err := Accumulate(records)
	require.NoError(t, err)

	values := strs(result.Values("x"))
	assert.Equal(t, []string{"100", "100", "150"}, values[:3])
}

func TestAccumulate_DevelopmentBeforeOriginContributesNothing(t *testing.T) {
	// A record with development year before its origin year matches no
	// accumulation cell; the product still spans the full horizon with
	// all zero values.
	records := []IncrementalRecord{
		rec("x", 2011, 2010, "999"),
	}

	result, err := Accumulate(records)
	require.NoError(t, err)

	// minOrigin=2011, maxDev=2010 would give a negative horizon; the
	// record's own years define it. Here minOrigin=2011 and maxDev=2010,
	// so the loop range is empty and the product accumulates nothing.
	assert.Equal(t, 2011, result.MinOriginYear)
	assert.Equal(t, 0, result.NDevelopmentYears)
	assert.Empty(t, result.Values("x"))
}

func TestAccumulate_DevelopmentBeforeOriginAmongOthers(t *testing.T) {
	records := []IncrementalRecord{
		rec("ok", 2010, 2011, "5"),
		rec("bad", 2011, 2010, "999"),
	}

	result, err := Accumulate(records)
	require.NoError(t, err)
	require.Equal(t, 2, result.NDevelopmentYears)

	// The out-of-range record contributes zero everywhere.
	assert.Equal(t, []string{"0", "0", "0"}, strs(result.Values("bad")))
	assert.Equal(t, []string{"0", "5", "0"}, strs(result.Values("ok")))
}

func TestAccumulate_NegativeIncrements(t *testing.T) {
	// Signed increments: every value equals the previous plus the matched
	// sum, rounded to 2 places.
	records := []IncrementalRecord{
		rec("x", 2010, 2010, "100"),
		rec("x", 2010, 2011, "-494.2"),
	}

	result, err := Accumulate(records)
	require.NoError(t, err)

	assert.Equal(t, []string{"100", "-394.2"}, strs(result.Values("x"))[:2])
}

func TestAccumulate_AdjacentPairExactSum(t *testing.T) {
	records := []IncrementalRecord{
		rec("x", 2010, 2010, "10.10"),
		rec("x", 2010, 2011, "-3.33"),
		rec("x", 2010, 2012, "0.004"),
		rec("x", 2011, 2012, "7"),
	}

	result, err := Accumulate(records)
	require.NoError(t, err)

	// Rebuild each origin-year segment from the increments and compare
	// pairwise: value[i] == round2(value[i-1] + matched).
	values := result.Values("x")
	require.Len(t, values, 6)

	segments := [][]decimal.Decimal{values[0:3], values[3:5], values[5:6]}
	increments := [][]string{
		{"10.10", "-3.33", "0.004"},
		{"0", "7"},
		{"0"},
	}

	for s, segment := range segments {
		running := decimal.Zero
		for i, v := range segment {
			running = running.Add(decimal.RequireFromString(increments[s][i])).Round(2)
			assert.True(t, running.Equal(v), "segment %d value %d: want %s got %s", s, i, running, v)
		}
	}
}

func TestNewTriangleSet(t *testing.T) {
	records := []IncrementalRecord{
		rec("b", 2010, 2010, "1"),
		rec("a", 2010, 2010, "2"),
		rec("b", 2011, 2011, "3"),
	}

	set := NewTriangleSet(records)

	assert.Equal(t, []string{"b", "a"}, set.Products())
	assert.Len(t, set.Records("b"), 2)
	assert.Len(t, set.Records("a"), 1)
	assert.Empty(t, set.Records("missing"))
}
