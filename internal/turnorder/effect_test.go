package turnorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func remaining(t *testing.T, e *StatusEffect) int {
	t.Helper()
	n, ok := e.Duration().Finite()
	require.True(t, ok, "effect %s should be finite", e.Name())
	return n
}

func TestIndefiniteNeverExpires(t *testing.T) {
	e := newStatusEffect(0, "Blessed", Indefinite(), ClearBeginningOfTurn)
	for range 100 {
		assert.Equal(t, NonExpired, e.BeginTurn())
		assert.Equal(t, NonExpired, e.EndTurn())
	}
	_, finite := e.Duration().Finite()
	assert.False(t, finite)
	assert.Equal(t, "Blessed [∞]", e.String())
}

func TestZeroClearTypeIsBeginningOfTurn(t *testing.T) {
	var c ClearType
	assert.Equal(t, ClearBeginningOfTurn, c)
}

func TestFiniteBeginningOfTurnCountdown(t *testing.T) {
	e := newStatusEffect(0, "Stunned", Turns(3), ClearBeginningOfTurn)

	assert.Equal(t, NonExpired, e.BeginTurn())
	assert.Equal(t, 2, remaining(t, e))

	// End of turn is not this effect's phase.
	assert.Equal(t, NonExpired, e.EndTurn())
	assert.Equal(t, 2, remaining(t, e))

	assert.Equal(t, NonExpired, e.BeginTurn())
	assert.Equal(t, 1, remaining(t, e))

	assert.Equal(t, Expired, e.BeginTurn())
	assert.Equal(t, 1, remaining(t, e), "expiry leaves the count untouched")
}

func TestFiniteEndOfTurnCountdown(t *testing.T) {
	e := newStatusEffect(0, "Poisoned", Turns(2), ClearEndOfTurn)

	assert.Equal(t, NonExpired, e.BeginTurn())
	assert.Equal(t, 2, remaining(t, e))

	assert.Equal(t, NonExpired, e.EndTurn())
	assert.Equal(t, 1, remaining(t, e))

	assert.Equal(t, NonExpired, e.BeginTurn())
	assert.Equal(t, Expired, e.EndTurn())
}

func TestFiniteBoundaries(t *testing.T) {
	cases := []struct {
		name  string
		turns int
		clear ClearType
		begin DurationStatus
		end   DurationStatus
	}{
		{"one turn at start", 1, ClearBeginningOfTurn, Expired, NonExpired},
		{"zero turns at start", 0, ClearBeginningOfTurn, Expired, NonExpired},
		{"two turns at start", 2, ClearBeginningOfTurn, NonExpired, NonExpired},
		{"one turn at end", 1, ClearEndOfTurn, NonExpired, Expired},
		{"zero turns at end", 0, ClearEndOfTurn, NonExpired, Expired},
		{"two turns at end", 2, ClearEndOfTurn, NonExpired, NonExpired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			begin := newStatusEffect(0, "x", Turns(tc.turns), tc.clear)
			assert.Equal(t, tc.begin, begin.BeginTurn())

			end := newStatusEffect(0, "x", Turns(tc.turns), tc.clear)
			assert.Equal(t, tc.end, end.EndTurn())
		})
	}
}

func TestStatusEffectString(t *testing.T) {
	e := newStatusEffect(4, "Hasted", Turns(10), ClearEndOfTurn)
	assert.Equal(t, "Hasted [10]", e.String())
	assert.Equal(t, 4, e.ID())
	assert.Equal(t, ClearEndOfTurn, e.ClearType())
}

func TestParseClearType(t *testing.T) {
	cases := []struct {
		input   string
		want    ClearType
		wantErr bool
	}{
		{"start", ClearBeginningOfTurn, false},
		{"START", ClearBeginningOfTurn, false},
		{" begin ", ClearBeginningOfTurn, false},
		{"end", ClearEndOfTurn, false},
		{"End", ClearEndOfTurn, false},
		{"", 0, true},
		{"middle", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseClearType(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
