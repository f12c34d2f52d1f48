package mana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poolOf(amounts map[ManaType]int) *ManaPool {
	pool := NewManaPool()
	for mt, n := range amounts {
		pool.Add(mt, n)
	}
	return pool
}

func TestHybridPaysEitherHalf(t *testing.T) {
	cost := MustParseCost("{W/U}")

	white := poolOf(map[ManaType]int{ManaWhite: 1})
	life, err := white.TryPayTrackingLife(cost, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, life)
	assert.True(t, white.IsEmpty())

	blue := poolOf(map[ManaType]int{ManaBlue: 1})
	_, err = blue.TryPayTrackingLife(cost, 0)
	require.NoError(t, err)
	assert.True(t, blue.IsEmpty())

	red := poolOf(map[ManaType]int{ManaRed: 1})
	_, err = red.TryPayTrackingLife(cost, 0)
	assert.Error(t, err)
	assert.Equal(t, 1, red.Amount(ManaRed), "failed payment must leave the pool unchanged")
}

func TestPhyrexianPrefersManaThenLife(t *testing.T) {
	cost := MustParseCost("{B/P}")

	// Mana available: pay with mana, no life.
	black := poolOf(map[ManaType]int{ManaBlack: 1})
	life, err := black.TryPayTrackingLife(cost, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, life)
	assert.True(t, black.IsEmpty())

	// No mana: pay 2 life.
	empty := NewManaPool()
	life, err = empty.TryPayTrackingLife(cost, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, life)
}

func TestPhyrexianLifeFirstPassFreesColoredMana(t *testing.T) {
	// {B/P}{B} with one black in the pool. The mana-first pass spends
	// the black on the Phyrexian pip and fails on {B}; the life-first
	// pass pays 2 life for the Phyrexian pip and covers {B} with mana.
	cost := MustParseCost("{B/P}{B}")
	pool := poolOf(map[ManaType]int{ManaBlack: 1})

	life, err := pool.TryPayTrackingLife(cost, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, life)
	assert.True(t, pool.IsEmpty())
}

func TestGenericDrainsColorlessFirstThenWUBRG(t *testing.T) {
	cost := MustParseCost("{3}")
	pool := poolOf(map[ManaType]int{ManaColorless: 1, ManaWhite: 1, ManaBlue: 1, ManaGreen: 1})

	_, err := pool.TryPayTrackingLife(cost, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, pool.Amount(ManaColorless))
	assert.Equal(t, 0, pool.Amount(ManaWhite))
	assert.Equal(t, 0, pool.Amount(ManaBlue))
	assert.Equal(t, 1, pool.Amount(ManaGreen), "green should survive the WUBRG drain order")
}

func TestGenericPipsPayLast(t *testing.T) {
	// {1}{G} with one green plus one colorless. If the generic pip paid
	// first it could eat the green and strand the cost.
	cost := MustParseCost("{1}{G}")
	pool := poolOf(map[ManaType]int{ManaGreen: 1, ManaColorless: 1})

	_, err := pool.TryPayTrackingLife(cost, 0)
	require.NoError(t, err)
	assert.True(t, pool.IsEmpty())
}

func TestColorlessRequirementNeverPaidWithColors(t *testing.T) {
	cost := MustParseCost("{C}")
	pool := poolOf(map[ManaType]int{ManaWhite: 3})

	assert.False(t, pool.CanPay(cost, 0))
	assert.True(t, pool.CanPayWithAnyColor(MustParseCost("{U}"), 0))
	assert.False(t, pool.CanPayWithAnyColor(cost, 0), "any-color spending never satisfies {C}")
}

func TestSnowPaysWithAnyMana(t *testing.T) {
	cost := MustParseCost("{S}")
	pool := poolOf(map[ManaType]int{ManaRed: 1})

	_, err := pool.TryPayTrackingLife(cost, 0)
	require.NoError(t, err)
	assert.True(t, pool.IsEmpty())
}

func TestXPayment(t *testing.T) {
	cost := MustParseCost("{X}{R}")
	pool := poolOf(map[ManaType]int{ManaRed: 1, ManaColorless: 3})

	life, err := pool.TryPayTrackingLife(cost, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, life)
	assert.True(t, pool.IsEmpty())

	pool = poolOf(map[ManaType]int{ManaRed: 1, ManaColorless: 2})
	_, err = pool.TryPayTrackingLife(cost, 3)
	assert.Error(t, err)
	assert.Equal(t, 3, pool.Total())
}

func TestCanPayDoesNotMutate(t *testing.T) {
	cost := MustParseCost("{2}{G}")
	pool := poolOf(map[ManaType]int{ManaGreen: 1, ManaColorless: 2})

	require.True(t, pool.CanPay(cost, 0))
	assert.Equal(t, 3, pool.Total(), "CanPay must not consume mana")
}

func TestMaxXForCost(t *testing.T) {
	tests := []struct {
		name     string
		cost     string
		pool     map[ManaType]int
		expected int
	}{
		{"no X pips", "{2}{R}", map[ManaType]int{ManaRed: 5}, 0},
		{"single X", "{X}{R}", map[ManaType]int{ManaRed: 1, ManaColorless: 4}, 4},
		{"double X splits remainder", "{X}{X}{B}", map[ManaType]int{ManaBlack: 1, ManaColorless: 5}, 2},
		{"fixed pips unpayable", "{X}{U}{U}", map[ManaType]int{ManaColorless: 3}, 0},
		{"phyrexian pip paid with life", "{X}{G/P}", map[ManaType]int{ManaColorless: 3}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := poolOf(tt.pool)
			assert.Equal(t, tt.expected, pool.MaxXForCost(MustParseCost(tt.cost)))
			assert.Equal(t, sumAmounts(tt.pool), pool.Total(), "MaxXForCost must not consume mana")
		})
	}
}

func sumAmounts(amounts map[ManaType]int) int {
	total := 0
	for _, n := range amounts {
		total += n
	}
	return total
}
