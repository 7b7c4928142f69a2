package turnorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatureEffectIDsIncrease(t *testing.T) {
	c := NewCreature("Arthur", 10)
	a := c.AddEffect("Blessed")
	b, err := c.AddTimedEffect("Stunned", 1, ClearBeginningOfTurn)
	require.NoError(t, err)
	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)

	// Expiring an effect does not free its id.
	require.Len(t, c.BeginTurn(), 1)
	d := c.AddEffect("Prone")
	assert.Equal(t, 2, d)
}

func TestCreatureRejectsNegativeDuration(t *testing.T) {
	c := NewCreature("Arthur", 10)
	_, err := c.AddTimedEffect("Cursed", -1, ClearEndOfTurn)
	require.ErrorIs(t, err, ErrNegativeDuration)
	assert.Empty(t, c.Effects())

	id := c.AddEffect("Blessed")
	assert.Equal(t, 0, id, "a rejected effect must not consume an id")
}

func TestCreatureNoUpdate(t *testing.T) {
	c := NewCreature("Arthur", 10)
	assert.Nil(t, c.BeginTurn())
	assert.Nil(t, c.EndTurn())

	c.AddEffect("Blessed")
	_, err := c.AddTimedEffect("Stunned", 3, ClearBeginningOfTurn)
	require.NoError(t, err)
	assert.Nil(t, c.BeginTurn())
	assert.Nil(t, c.EndTurn())
	assert.Len(t, c.Effects(), 2)
}

func TestCreatureExpiresTwoEffectsInOnePhase(t *testing.T) {
	c := NewCreature("Jeremy", 5)
	_, err := c.AddTimedEffect("Poisoned", 1, ClearEndOfTurn)
	require.NoError(t, err)
	c.AddEffect("Blessed")
	_, err = c.AddTimedEffect("Burning", 1, ClearEndOfTurn)
	require.NoError(t, err)

	assert.Nil(t, c.BeginTurn())

	updates := c.EndTurn()
	assert.Equal(t, []string{
		"Poisoned has expired for creature Jeremy.",
		"Burning has expired for creature Jeremy.",
	}, updates)

	effects := c.Effects()
	require.Len(t, effects, 1)
	assert.Equal(t, "Blessed", effects[0].Name())
}

func TestCreatureMixedPhases(t *testing.T) {
	c := NewCreature("Jeremy", 5)
	_, err := c.AddTimedEffect("Stunned", 1, ClearBeginningOfTurn)
	require.NoError(t, err)
	_, err = c.AddTimedEffect("Poisoned", 1, ClearEndOfTurn)
	require.NoError(t, err)

	assert.Equal(t, []string{"Stunned has expired for creature Jeremy."}, c.BeginTurn())
	assert.Equal(t, []string{"Poisoned has expired for creature Jeremy."}, c.EndTurn())
	assert.Empty(t, c.Effects())
}

func TestCreatureEffectsIsACopy(t *testing.T) {
	c := NewCreature("Arthur", 10)
	c.AddEffect("Blessed")
	effects := c.Effects()
	effects[0] = nil
	assert.NotNil(t, c.Effects()[0])
}

func TestCreatureConsistencyFaultPanics(t *testing.T) {
	c := NewCreature("Arthur", 10)
	c.AddEffect("Blessed")

	defer func() {
		r := recover()
		require.NotNil(t, r, "removing an unknown id must panic")
		ce, ok := r.(*ConsistencyError)
		require.True(t, ok, "panic value = %T", r)
		assert.Equal(t, 7, ce.EffectID)
		assert.Contains(t, ce.Error(), "Arthur")
	}()
	c.removeExpired([]int{7})
}

func TestCreatureString(t *testing.T) {
	c := NewCreature("Arthur", 10)
	assert.Equal(t, "Arthur", c.String())

	c.AddEffect("Blessed")
	_, err := c.AddTimedEffect("Stunned", 2, ClearBeginningOfTurn)
	require.NoError(t, err)
	assert.Equal(t, "Arthur [Blessed [∞], Stunned [2]]", c.String())
}
