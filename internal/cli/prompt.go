package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// terminalPrompter implements engine.Prompter against the process stdin.
// Any non-affirmative answer is treated as a skip by the engine.
type terminalPrompter struct {
	in *bufio.Reader
}

func newTerminalPrompter() *terminalPrompter {
	return &terminalPrompter{in: bufio.NewReader(os.Stdin)}
}

// Interactive reports whether stdin is a terminal.
func (p *terminalPrompter) Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Confirm asks the operator and returns true on "y" or "yes".
func (p *terminalPrompter) Confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N] ", prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
