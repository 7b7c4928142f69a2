package console

import (
	"fmt"
	"strconv"
	"strings"
)

type inputStatus uint8

const (
	inputOK inputStatus = iota
	// The user entered an empty line.
	inputCancel
	// End of input, or a value that did not parse.
	inputFailed
)

// prompt prints msg and reads one trimmed line.
func (c *Console) prompt(msg string) (string, inputStatus) {
	fmt.Fprintln(c.out, msg)
	if !c.in.Scan() {
		c.eof = true
		return "", inputFailed
	}
	line := strings.TrimSpace(c.in.Text())
	if line == "" {
		return "", inputCancel
	}
	return line, inputOK
}

// promptInt is prompt for a whole number; what names the value in errors.
func (c *Console) promptInt(msg, what string) (int, inputStatus) {
	line, st := c.prompt(msg)
	if st != inputOK {
		return 0, st
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintf(c.out, "Error in %s input: %v\n", what, err)
		return 0, inputFailed
	}
	return n, inputOK
}
