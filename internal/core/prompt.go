package core

import (
	"fmt"
	"strings"
)

const promptHeader = `You are a helpful assistant that generates descriptive git commit messages.
Analyze the following changes and generate a clear, informative commit message that describes what was changed and why.
Focus on the functional changes and their impact. Use the active voice and present tense.

Just answer directly with the commit text.

The commit message should follow this format:
- First line: Short summary (50-72 characters)
- Second line: Blank
- Following lines: Detailed explanation if needed

Here are the changes:

`

const promptFooter = "\nBased on these changes, generate a commit message that explains what was changed and why."

// BuildPrompt serializes the changes into a single instruction text for
// the generator. Each record contributes its path, diff, and content in
// input order. No truncation is performed; oversized diffs are passed
// through as-is.
func BuildPrompt(changes []ChangeRecord) string {
	var b strings.Builder
	b.WriteString(promptHeader)

	for _, change := range changes {
		fmt.Fprintf(&b, "File: %s\n", change.Path)
		fmt.Fprintf(&b, "Diff:\n%s\n", change.Diff)
		fmt.Fprintf(&b, "Current file content:\n%s\n\n", change.Content)
	}

	b.WriteString(promptFooter)
	return b.String()
}
