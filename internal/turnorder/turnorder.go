// Package turnorder keeps an initiative-ordered roster of creatures, the
// pointer to whose turn it is, and the timed status effects on each creature.
//
// A TurnOrder is not safe for concurrent use; a session drives it from a
// single goroutine.
package turnorder

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// TurnOrder owns the roster and the current-turn cursor.
type TurnOrder struct {
	creatures []*Creature
	current   int // 0-based; shown 1-based
}

// New returns an empty turn order.
func New() *TurnOrder { return &TurnOrder{} }

// Len returns the number of creatures in the roster.
func (t *TurnOrder) Len() int { return len(t.creatures) }

// Current returns the 0-based index of the creature whose turn it is.
// It is 0 for an empty roster.
func (t *TurnOrder) Current() int { return t.current }

// Creatures returns the roster in turn order.
func (t *TurnOrder) Creatures() []*Creature { return slices.Clone(t.creatures) }

// AddCreature appends a creature and re-sorts the roster. The cursor index
// does not move.
func (t *TurnOrder) AddCreature(name string, initiative int) {
	t.creatures = append(t.creatures, NewCreature(name, initiative))
	t.sort()
}

// RemoveCreature removes the creature at a 0-based index of the sorted roster.
//
// The creature whose turn it is keeps the turn when an earlier creature is
// removed. Removing the current creature passes the turn to the creature
// that takes its slot, without running its start-of-turn processing.
func (t *TurnOrder) RemoveCreature(index int) error {
	if err := t.check("remove creature", index); err != nil {
		return err
	}
	t.creatures = slices.Delete(t.creatures, index, index+1)
	t.sort()

	if index < t.current {
		t.current--
	}
	if t.current >= len(t.creatures) {
		t.current = 0
	}
	return nil
}

// CreatureIndexValid reports whether index resolves to a creature.
func (t *TurnOrder) CreatureIndexValid(index int) error {
	return t.check("validate creature", index)
}

// AddStatusEffect attaches an indefinite effect to the creature at index.
func (t *TurnOrder) AddStatusEffect(index int, name string) error {
	if err := t.check("add status effect", index); err != nil {
		return err
	}
	t.creatures[index].AddEffect(name)
	return nil
}

// AddStatusEffectTimed attaches an effect lasting turns turns to the creature
// at index.
func (t *TurnOrder) AddStatusEffectTimed(index int, name string, turns int, clear ClearType) error {
	if err := t.check("add status effect", index); err != nil {
		return err
	}
	_, err := t.creatures[index].AddTimedEffect(name, turns, clear)
	return err
}

// AdvanceTurn ends the current creature's turn, moves the cursor to the next
// creature (wrapping to the top), and begins that creature's turn. It returns
// the expiry messages of the outgoing creature followed by those of the
// incoming one. On error nothing is returned and, if the first lookup
// failed, the cursor has not moved.
func (t *TurnOrder) AdvanceTurn() ([]string, error) {
	outgoing, err := t.at(t.current)
	if err != nil {
		return nil, err
	}
	updates := outgoing.EndTurn()

	t.current++
	if t.current >= len(t.creatures) {
		t.current = 0
	}

	incoming, err := t.at(t.current)
	if err != nil {
		return nil, err
	}
	updates = append(updates, incoming.BeginTurn()...)
	if updates == nil {
		updates = []string{}
	}
	return updates, nil
}

func (t *TurnOrder) at(index int) (*Creature, error) {
	if err := t.check("advance turn", index); err != nil {
		return nil, err
	}
	return t.creatures[index], nil
}

func (t *TurnOrder) check(op string, index int) error {
	if index < 0 || index >= len(t.creatures) {
		return &IndexError{Op: op, Index: index, Len: len(t.creatures)}
	}
	return nil
}

// sort orders by descending initiative; equal initiatives keep insertion order.
func (t *TurnOrder) sort() {
	slices.SortStableFunc(t.creatures, func(a, b *Creature) int {
		return cmp.Compare(b.initiative, a.initiative)
	})
}

// String renders one line per creature, marking the current turn.
func (t *TurnOrder) String() string {
	var b strings.Builder
	for i, c := range t.creatures {
		marker := ""
		if i == t.current {
			marker = "[CURRENT TURN] "
		}
		fmt.Fprintf(&b, "[%d] %sI:%d %s\n", i+1, marker, c.initiative, c)
	}
	return b.String()
}
