package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrInputClosed is returned when the input stream ends while prompting
var ErrInputClosed = errors.New("input closed")

// Prompter reads validated answers from a line-oriented input
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompter creates a prompter reading from in and echoing prompts to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// ReadLine prints prompt and returns the next line without its line ending.
// Inner spaces are kept; the result is cut to at most maxLen bytes when
// maxLen > 0, backing off to a rune boundary.
func (p *Prompter) ReadLine(prompt string, maxLen int) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", ErrInputClosed
		}
		return "", err
	}

	line = strings.TrimRight(line, "\r\n")
	if maxLen > 0 && len(line) > maxLen {
		// Never split a multi-byte rune
		for maxLen > 0 && !utf8.RuneStart(line[maxLen]) {
			maxLen--
		}
		line = line[:maxLen]
	}
	return line, nil
}

// ReadInt prompts until a whole number is entered
func (p *Prompter) ReadInt(prompt string) (int, error) {
	for {
		line, err := p.ReadLine(prompt, 0)
		if err != nil {
			return 0, err
		}

		value, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil {
			return value, nil
		}
		fmt.Fprintln(p.out, "Invalid input. Try again.")
	}
}

// ReadIntInRange prompts until a whole number within [min, max] is entered
func (p *Prompter) ReadIntInRange(prompt string, min, max int) (int, error) {
	for {
		value, err := p.ReadInt(prompt)
		if err != nil {
			return 0, err
		}
		if value >= min && value <= max {
			return value, nil
		}
		fmt.Fprintf(p.out, "Value out of range (%d..%d). Try again.\n", min, max)
	}
}

// Confirm prompts the user for confirmation
func (p *Prompter) Confirm(prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}

	response, err := p.ReadLine(prompt+suffix, 0)
	if err != nil {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))

	if response == "" {
		return defaultYes, nil
	}

	return response == "y" || response == "yes", nil
}
