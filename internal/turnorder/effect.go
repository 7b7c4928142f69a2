package turnorder

import (
	"fmt"
	"strconv"
	"strings"
)

// ClearType selects the turn phase that counts down and expires a finite effect.
// The zero value is ClearBeginningOfTurn.
type ClearType uint8

const (
	ClearBeginningOfTurn ClearType = iota
	ClearEndOfTurn
)

func (c ClearType) String() string {
	switch c {
	case ClearBeginningOfTurn:
		return "start"
	case ClearEndOfTurn:
		return "end"
	}
	return "ClearType(" + strconv.Itoa(int(c)) + ")"
}

// ParseClearType accepts "start" (or "begin") and "end", ignoring case and
// surrounding space.
func ParseClearType(s string) (ClearType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start", "begin", "beginning":
		return ClearBeginningOfTurn, nil
	case "end":
		return ClearEndOfTurn, nil
	}
	return 0, fmt.Errorf("unrecognized clear type %q", s)
}

// DurationStatus is the outcome of one phase evaluation of an effect.
type DurationStatus uint8

const (
	NonExpired DurationStatus = iota
	Expired
)

// Duration is either indefinite or a finite count of remaining turns.
type Duration struct {
	finite bool
	turns  int
}

// Indefinite returns a duration that never expires.
func Indefinite() Duration { return Duration{} }

// Turns returns a finite duration of n turns. Callers validate n >= 0.
func Turns(n int) Duration { return Duration{finite: true, turns: n} }

// Finite reports whether the duration counts down, and the remaining turns.
func (d Duration) Finite() (int, bool) { return d.turns, d.finite }

func (d Duration) String() string {
	if !d.finite {
		return "∞"
	}
	return strconv.Itoa(d.turns)
}

// StatusEffect is a named effect attached to one creature.
type StatusEffect struct {
	id       int
	name     string
	duration Duration
	clear    ClearType
}

func newStatusEffect(id int, name string, d Duration, clear ClearType) *StatusEffect {
	return &StatusEffect{id: id, name: name, duration: d, clear: clear}
}

func (e *StatusEffect) ID() int              { return e.id }
func (e *StatusEffect) Name() string         { return e.name }
func (e *StatusEffect) Duration() Duration   { return e.duration }
func (e *StatusEffect) ClearType() ClearType { return e.clear }

// BeginTurn evaluates the effect at the start of its owner's turn.
func (e *StatusEffect) BeginTurn() DurationStatus {
	return e.tick(ClearBeginningOfTurn)
}

// EndTurn evaluates the effect at the end of its owner's turn.
func (e *StatusEffect) EndTurn() DurationStatus {
	return e.tick(ClearEndOfTurn)
}

// tick counts down only on the phase matching the clear type. A count of one
// or less expires without decrementing; the owner removes the effect.
func (e *StatusEffect) tick(phase ClearType) DurationStatus {
	if !e.duration.finite || e.clear != phase {
		return NonExpired
	}
	if e.duration.turns <= 1 {
		return Expired
	}
	e.duration.turns--
	return NonExpired
}

// String renders "name [remaining]", with ∞ for indefinite effects.
func (e *StatusEffect) String() string {
	return fmt.Sprintf("%s [%s]", e.name, e.duration)
}
