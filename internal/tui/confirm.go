package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jagaleanoob/llm-commit/internal/core"
	"github.com/jagaleanoob/llm-commit/internal/utils"
)

var messageStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("170")).
	Padding(0, 1)

// Confirm displays the proposed commit message and reads a single line
// from in. The answer is matched case-insensitively: y accepts, e edits,
// anything else cancels.
func Confirm(in io.Reader, out io.Writer, message string) core.Decision {
	fmt.Fprintf(out, "\nSuggested commit message:\n%s\n", renderMessage(message))
	fmt.Fprint(out, "\nDo you want to create this commit? (y/n/e[dit]): ")

	line, _ := bufio.NewReader(in).ReadString('\n')
	return ParseDecision(line)
}

// ParseDecision maps one line of user input to a Decision.
func ParseDecision(line string) core.Decision {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y":
		return core.Accept
	case "e":
		return core.Edit
	default:
		return core.Cancel
	}
}

func renderMessage(message string) string {
	if !utils.IsTTY() {
		return fmt.Sprintf("\"\"\"\n%s\n\"\"\"", message)
	}
	return messageStyle.Render(message)
}
