package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. Surrounding whitespace is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := readLine(reader)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetTextWithDefault works like GetSimpleText but shows def in brackets and
// returns it when the user just presses Enter.
func GetTextWithDefault(reader *bufio.Reader, prompt, def string, w io.Writer) (string, error) {
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, def)
	}
	s, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return "", err
	}
	if s == "" {
		return def, nil
	}
	return s, nil
}

// GetConfirmation asks a yes/no question. Only "y" and "yes" (any case) count
// as yes; a read error counts as no.
func GetConfirmation(reader *bufio.Reader, prompt string, w io.Writer) bool {
	s, err := GetSimpleText(reader, prompt+" [y/N]", w)
	if err != nil {
		return false
	}
	switch strings.ToLower(s) {
	case "y", "yes":
		return true
	}
	return false
}
