package turnorder

import (
	"fmt"
	"slices"
	"strings"
)

// Creature is a combatant in the turn order. It owns its status effects and
// hands out their ids.
type Creature struct {
	name       string
	initiative int
	effects    []*StatusEffect
	nextID     int // never reset, so ids stay unique for the creature's lifetime
}

// NewCreature returns a creature with no effects.
func NewCreature(name string, initiative int) *Creature {
	return &Creature{name: name, initiative: initiative}
}

func (c *Creature) Name() string    { return c.name }
func (c *Creature) Initiative() int { return c.initiative }

// Effects returns the active effects in attachment order.
func (c *Creature) Effects() []*StatusEffect { return slices.Clone(c.effects) }

// AddEffect attaches an indefinite effect and returns its id.
func (c *Creature) AddEffect(name string) int {
	return c.attach(name, Indefinite(), ClearBeginningOfTurn)
}

// AddTimedEffect attaches an effect lasting turns turns, counted down on the
// phase named by clear.
func (c *Creature) AddTimedEffect(name string, turns int, clear ClearType) (int, error) {
	if turns < 0 {
		return 0, fmt.Errorf("%s on %s: %w", name, c.name, ErrNegativeDuration)
	}
	return c.attach(name, Turns(turns), clear), nil
}

func (c *Creature) attach(name string, d Duration, clear ClearType) int {
	id := c.nextID
	c.nextID++
	c.effects = append(c.effects, newStatusEffect(id, name, d, clear))
	return id
}

// BeginTurn runs start-of-turn processing on every effect and returns one
// message per effect that expired. A nil result means nothing changed.
func (c *Creature) BeginTurn() []string {
	var expired []int
	for _, e := range c.effects {
		if e.BeginTurn() == Expired {
			expired = append(expired, e.id)
		}
	}
	return c.removeExpired(expired)
}

// EndTurn is the end-of-turn counterpart of BeginTurn.
func (c *Creature) EndTurn() []string {
	var expired []int
	for _, e := range c.effects {
		if e.EndTurn() == Expired {
			expired = append(expired, e.id)
		}
	}
	return c.removeExpired(expired)
}

// removeExpired runs after the scan so the slice is never edited mid-iteration.
func (c *Creature) removeExpired(ids []int) []string {
	var updates []string
	for _, id := range ids {
		i := slices.IndexFunc(c.effects, func(e *StatusEffect) bool { return e.id == id })
		if i < 0 {
			panic(&ConsistencyError{Creature: c.name, EffectID: id})
		}
		updates = append(updates, fmt.Sprintf("%s has expired for creature %s.", c.effects[i].name, c.name))
		c.effects = slices.Delete(c.effects, i, i+1)
	}
	return updates
}

// String renders the name followed by the bracketed effect list, if any.
func (c *Creature) String() string {
	if len(c.effects) == 0 {
		return c.name
	}
	parts := make([]string, len(c.effects))
	for i, e := range c.effects {
		parts[i] = e.String()
	}
	return c.name + " [" + strings.Join(parts, ", ") + "]"
}
