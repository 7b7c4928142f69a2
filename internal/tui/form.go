package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// MaxInputLength caps a single prompt answer.
const MaxInputLength = 60

type field struct {
	label    string
	optional bool // an empty answer finishes the form early instead of cancelling it
	validate func(string) error
}

type formState uint8

const (
	formEditing formState = iota
	formDone
	formCancelled
)

// form collects answers to a fixed list of prompts, one line at a time.
type form struct {
	fields []field
	values []string
	buf    []rune
	submit func(values []string)
	fail   func(err error)
}

func (f *form) label() string { return f.fields[len(f.values)].label }

// handleKey edits the current answer. submit runs once with every answer
// given so far when the form completes; an invalid answer is reported
// through fail and asked for again.
func (f *form) handleKey(ev *tcell.EventKey) formState {
	switch ev.Key() {
	case tcell.KeyEscape:
		return formCancelled
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(f.buf) > 0 {
			f.buf = f.buf[:len(f.buf)-1]
		}
	case tcell.KeyRune:
		if len(f.buf) < MaxInputLength {
			f.buf = append(f.buf, ev.Rune())
		}
	case tcell.KeyEnter:
		return f.enter()
	}
	return formEditing
}

func (f *form) enter() formState {
	text := strings.TrimSpace(string(f.buf))
	f.buf = nil
	fd := f.fields[len(f.values)]

	if text == "" {
		if !fd.optional {
			return formCancelled
		}
		f.submit(f.values)
		return formDone
	}
	if fd.validate != nil {
		if err := fd.validate(text); err != nil {
			f.fail(err)
			return formEditing
		}
	}
	f.values = append(f.values, text)
	if len(f.values) == len(f.fields) {
		f.submit(f.values)
		return formDone
	}
	return formEditing
}
