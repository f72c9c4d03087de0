package core

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// ChangeRecord describes one staged file: its path, its staged diff, and a
// best-effort snapshot of its current content.
type ChangeRecord struct {
	Path    string
	Diff    string
	Content string
}

// Repository is the version-control capability the workflow needs. The git
// package provides the real implementation; tests substitute doubles.
type Repository interface {
	StagedFiles() ([]string, error)
	StagedDiff(path string) (string, error)
	Commit(message string) error
	CommitWithEditor(message string) error
}

// Generator produces a commit message from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Collect gathers one ChangeRecord per staged file, preserving the order
// git reports. Content reads are best-effort: binary, deleted, or
// unreadable files contribute an empty string and are never fatal.
func Collect(repo Repository) ([]ChangeRecord, error) {
	files, err := repo.StagedFiles()
	if err != nil {
		return nil, err
	}

	var changes []ChangeRecord
	for _, path := range files {
		diff, err := repo.StagedDiff(path)
		if err != nil {
			return nil, err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			log.Debug().Err(err).Str("file", path).Msg("Skipping unreadable file content")
			content = nil
		}

		changes = append(changes, ChangeRecord{
			Path:    path,
			Diff:    diff,
			Content: string(content),
		})
	}

	return changes, nil
}

// GenerateMessage asks the generator for a commit message describing the
// changes. Any generation failure degrades to the deterministic fallback;
// this never fails.
func GenerateMessage(ctx context.Context, gen Generator, changes []ChangeRecord) string {
	message, err := gen.Generate(ctx, BuildPrompt(changes))
	if err != nil {
		log.Warn().Err(err).Msg("Falling back to a basic commit message")
		return FallbackMessage(changes)
	}
	return message
}

// FallbackMessage builds a commit message from the change count alone.
func FallbackMessage(changes []ChangeRecord) string {
	if len(changes) == 1 {
		return fmt.Sprintf("Update %s", changes[0].Path)
	}
	return fmt.Sprintf("Update %d files", len(changes))
}

// Decision is the user's verdict on a proposed commit message.
type Decision int

const (
	Cancel Decision = iota
	Accept
	Edit
)

// Execute applies the decision to the repository. Accept commits with the
// message as-is, Edit hands it to the interactive commit editor, Cancel
// performs no version-control mutation.
func Execute(repo Repository, message string, decision Decision) error {
	switch decision {
	case Accept:
		return repo.Commit(message)
	case Edit:
		return repo.CommitWithEditor(message)
	default:
		return nil
	}
}
