// Package tui is the full-screen terminal front end built on tcell.
package tui

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"initiative-tracker/internal/config"
	"initiative-tracker/internal/turnorder"
)

const maxMessages = 50

var helpLines = []string{
	"[n/space/enter] next turn  [a] add  [b] bulk add  [r] remove",
	"[s] status effect  [?] help  [q/esc] quit",
	"In a prompt: [enter] submit, empty [enter] or [esc] cancels.",
}

// App owns the screen and drives one TurnOrder from its event loop.
type App struct {
	screen   tcell.Screen
	order    *turnorder.TurnOrder
	styles   Styles
	logger   *slog.Logger
	messages []string
	form     *form
	bulk     bool
}

// New creates an App on an initialized screen.
func New(screen tcell.Screen, order *turnorder.TurnOrder, theme config.Theme, logger *slog.Logger) *App {
	a := &App{
		screen: screen,
		order:  order,
		styles: NewStyles(theme),
		logger: logger,
	}
	a.addMessage("Press ? for help.")
	return a
}

// Run is the main loop. It returns when the user quits and finalizes the screen.
func (a *App) Run() {
	defer a.screen.Fini()

	for {
		a.draw()
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if !a.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey processes one key press and reports whether the app keeps running.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	if a.form != nil {
		switch a.form.handleKey(ev) {
		case formCancelled:
			a.form = nil
			a.bulk = false
		case formDone:
			a.form = nil
			if a.bulk {
				a.openAdd()
			}
		}
		return true
	}

	switch keyToAction(ev) {
	case ActionNext:
		a.nextTurn()
	case ActionAdd:
		a.openAdd()
	case ActionBulk:
		a.bulk = true
		a.openAdd()
	case ActionRemove:
		a.openRemove()
	case ActionStatus:
		a.openStatus()
	case ActionHelp:
		for _, l := range helpLines {
			a.addMessage(l)
		}
	case ActionQuit:
		a.logger.Debug("quit")
		return false
	}
	return true
}

func (a *App) nextTurn() {
	updates, err := a.order.AdvanceTurn()
	if err != nil {
		a.fail(fmt.Errorf("advancing turn: %w", err))
		return
	}
	for _, u := range updates {
		a.addMessage(u)
	}
	a.logger.Debug("turn advanced", "current", a.order.Current(), "updates", len(updates))
}

func (a *App) openAdd() {
	a.form = &form{
		fields: []field{
			{label: "Creature name"},
			{label: "Initiative", validate: validateInt},
		},
		submit: func(v []string) {
			initiative, _ := strconv.Atoi(v[1])
			a.order.AddCreature(v[0], initiative)
			a.logger.Info("creature added", "name", v[0], "initiative", initiative)
		},
		fail: a.fail,
	}
}

func (a *App) openRemove() {
	a.form = &form{
		fields: []field{
			{label: "Remove creature number", validate: a.validateCreature},
		},
		submit: func(v []string) {
			index := creatureIndex(v[0])
			name := a.order.Creatures()[index].Name()
			if err := a.order.RemoveCreature(index); err != nil {
				a.fail(err)
				return
			}
			a.addMessage(fmt.Sprintf("Removed %s.", name))
			a.logger.Info("creature removed", "index", index, "name", name)
		},
		fail: a.fail,
	}
}

// openStatus leaves clear type and duration optional; stopping early attaches
// an indefinite effect.
func (a *App) openStatus() {
	a.form = &form{
		fields: []field{
			{label: "Creature number", validate: a.validateCreature},
			{label: "Effect name"},
			{label: "Clear type (start/end, empty = indefinite)", optional: true, validate: validateClearType},
			{label: "Duration in turns (empty = indefinite)", optional: true, validate: validateTurns},
		},
		submit: a.addStatusEffect,
		fail:   a.fail,
	}
}

func (a *App) addStatusEffect(v []string) {
	if len(v) < 2 {
		return
	}
	index, name := creatureIndex(v[0]), v[1]
	if len(v) < 4 {
		if err := a.order.AddStatusEffect(index, name); err != nil {
			a.fail(err)
			return
		}
		a.logger.Info("status effect added", "index", index, "effect", name)
		return
	}
	ct, _ := turnorder.ParseClearType(v[2])
	turns, _ := strconv.Atoi(v[3])
	if err := a.order.AddStatusEffectTimed(index, name, turns, ct); err != nil {
		a.fail(err)
		return
	}
	a.logger.Info("status effect added", "index", index, "effect", name, "turns", turns, "clear", ct)
}

func (a *App) validateCreature(s string) error {
	if err := validateInt(s); err != nil {
		return err
	}
	return a.order.CreatureIndexValid(creatureIndex(s))
}

func (a *App) fail(err error) {
	a.addMessage("Error: " + err.Error())
	a.logger.Warn("command failed", "error", err)
}

func (a *App) addMessage(msg string) {
	a.messages = append(a.messages, msg)
	if len(a.messages) > maxMessages {
		a.messages = a.messages[len(a.messages)-maxMessages:]
	}
}

// creatureIndex converts a validated 1-based number to a roster index.
func creatureIndex(s string) int {
	n, _ := strconv.Atoi(s)
	return n - 1
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("%q is not a whole number", s)
	}
	return nil
}

func validateClearType(s string) error {
	_, err := turnorder.ParseClearType(s)
	return err
}

func validateTurns(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%q is not a whole number", s)
	}
	if n < 0 {
		return turnorder.ErrNegativeDuration
	}
	return nil
}
