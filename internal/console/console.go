// Package console is the line-oriented front end: it reads commands from a
// text stream, drives a TurnOrder, and prints the roster and turn updates.
package console

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"initiative-tracker/internal/turnorder"
)

const banner = `Available commands: add, remove, bulk, (n)ext, status, help, exit
Commands are not case sensitive; a letter in parentheses is the command's abbreviation.
Press enter on an empty line during a command to cancel it.
`

// Console runs one interactive session.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	order  *turnorder.TurnOrder
	logger *slog.Logger
	eof    bool
}

// New creates a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer, order *turnorder.TurnOrder, logger *slog.Logger) *Console {
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		order:  order,
		logger: logger,
	}
}

// Run loops until "exit" or end of input. It only returns an error if
// reading the input fails.
func (c *Console) Run() error {
	fmt.Fprintln(c.out)
	fmt.Fprint(c.out, banner)

	for !c.eof {
		fmt.Fprintf(c.out, "\n%s", c.order)
		line, st := c.prompt("Enter a command.")
		if st != inputOK {
			continue
		}
		if !c.dispatch(line) {
			break
		}
	}

	if err := c.in.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// dispatch runs one command and reports whether the session continues.
func (c *Console) dispatch(line string) bool {
	cmd := strings.ToLower(line)
	c.logger.Debug("command", "name", cmd)

	switch cmd {
	case "add":
		c.addCreature()
	case "remove":
		c.removeCreature()
	case "bulk":
		for c.addCreature() {
		}
	case "n", "next":
		c.nextTurn()
	case "status":
		c.addStatusEffect()
	case "help", "?":
		fmt.Fprint(c.out, banner)
	case "exit", "quit":
		return false
	default:
		fmt.Fprintf(c.out, "Unknown command %q. Type help for the list of commands.\n", line)
	}
	return true
}

// addCreature reports false when the user cancels or input fails.
func (c *Console) addCreature() bool {
	name, st := c.prompt("Please enter the name of the creature.")
	if st != inputOK {
		return false
	}
	initiative, st := c.promptInt("Enter the initiative.", "initiative")
	if st != inputOK {
		return false
	}
	c.order.AddCreature(name, initiative)
	c.logger.Info("creature added", "name", name, "initiative", initiative)
	return true
}

func (c *Console) removeCreature() {
	index, st := c.promptCreature()
	if st != inputOK {
		return
	}
	if err := c.order.RemoveCreature(index); err != nil {
		c.report("Error removing creature", err)
		return
	}
	c.logger.Info("creature removed", "index", index)
}

func (c *Console) nextTurn() {
	updates, err := c.order.AdvanceTurn()
	if err != nil {
		c.report("Error advancing turn", err)
		return
	}
	for _, u := range updates {
		fmt.Fprintln(c.out, u)
	}
	c.logger.Debug("turn advanced", "current", c.order.Current(), "updates", len(updates))
}

// addStatusEffect asks for creature, name, clear type and duration. Leaving
// the clear type or duration empty attaches an indefinite effect instead.
func (c *Console) addStatusEffect() {
	index, st := c.promptCreature()
	if st != inputOK {
		return
	}
	if err := c.order.CreatureIndexValid(index); err != nil {
		c.report("Error: invalid creature index", err)
		return
	}
	name, st := c.prompt("Enter the name of the status effect.")
	if st != inputOK {
		return
	}

	var ct turnorder.ClearType
	for {
		input, st := c.prompt(`Enter clear type ("start" or "end"), or press enter again for an indefinite effect.`)
		switch st {
		case inputCancel:
			c.addIndefinite(index, name)
			return
		case inputFailed:
			return
		}
		var err error
		if ct, err = turnorder.ParseClearType(input); err == nil {
			break
		}
		fmt.Fprintln(c.out, "Unrecognized clear type. Try again.")
	}

	turns, st := c.promptInt("Enter duration in number of turns, or press enter again for an indefinite effect.", "duration")
	switch st {
	case inputCancel:
		c.addIndefinite(index, name)
		return
	case inputFailed:
		return
	}
	if err := c.order.AddStatusEffectTimed(index, name, turns, ct); err != nil {
		c.report("Error adding status effect", err)
		return
	}
	c.logger.Info("status effect added", "index", index, "effect", name, "turns", turns, "clear", ct)
}

func (c *Console) addIndefinite(index int, name string) {
	if err := c.order.AddStatusEffect(index, name); err != nil {
		c.report("Error adding status effect", err)
		return
	}
	c.logger.Info("status effect added", "index", index, "effect", name)
}

// promptCreature reads a 1-based creature number and returns its 0-based index.
func (c *Console) promptCreature() (int, inputStatus) {
	n, st := c.promptInt("Enter the number of the creature.", "creature number")
	return n - 1, st
}

func (c *Console) report(what string, err error) {
	fmt.Fprintf(c.out, "%s: %v\n", what, err)
	c.logger.Warn(strings.ToLower(what), "error", err)
}
