package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptContainsEveryChangeOnceInOrder(t *testing.T) {
	changes := []ChangeRecord{
		{Path: "cmd/main.go", Diff: "diff-main-7f3a", Content: "content-main-7f3a"},
		{Path: "internal/db.go", Diff: "diff-db-91ce", Content: "content-db-91ce"},
		{Path: "README.md", Diff: "diff-readme-04bd", Content: "content-readme-04bd"},
	}

	prompt := BuildPrompt(changes)

	lastIndex := -1
	for _, change := range changes {
		for _, field := range []string{change.Path, change.Diff, change.Content} {
			assert.Equalf(t, 1, strings.Count(prompt, field),
				"%q must appear exactly once", field)

			idx := strings.Index(prompt, field)
			assert.Greaterf(t, idx, lastIndex,
				"%q must appear after the previous field", field)
			lastIndex = idx
		}
	}
}

func TestBuildPromptInstructions(t *testing.T) {
	prompt := BuildPrompt([]ChangeRecord{{Path: "foo.txt", Diff: "d", Content: "c"}})

	assert.True(t, strings.HasPrefix(prompt, promptHeader))
	assert.True(t, strings.HasSuffix(prompt, promptFooter))
	assert.Contains(t, prompt, "Short summary (50-72 characters)")
}

func TestBuildPromptPassesLargeDiffsThrough(t *testing.T) {
	big := strings.Repeat("x", 1<<20)
	prompt := BuildPrompt([]ChangeRecord{{Path: "big.txt", Diff: big}})

	assert.Contains(t, prompt, big)
}
