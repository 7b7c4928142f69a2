package turnorder

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is wrapped by every *IndexError.
	ErrIndexOutOfRange = errors.New("creature index out of range")
	// ErrNegativeDuration rejects a finite effect with fewer than zero turns.
	ErrNegativeDuration = errors.New("effect duration must not be negative")
)

// IndexError reports a creature index that does not resolve in the roster.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: creature index %d out of range (roster has %d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// ConsistencyError is the panic value raised when a creature loses track of
// one of its own effects. It signals a bug, never bad input.
type ConsistencyError struct {
	Creature string
	EffectID int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("creature %s: expired effect id %d missing from its effects", e.Creature, e.EffectID)
}
