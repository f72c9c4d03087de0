// Package git drives the git command line. Only four operations over the
// staged area are used: listing staged paths, retrieving a staged diff,
// committing with a message, and committing through the user's editor.
package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// RepositoryError wraps a failed git invocation. Query failures and commit
// failures are both fatal for the caller.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("git %s failed: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

type Client struct{}

func NewClient() *Client {
	return &Client{}
}

// StagedFiles returns the paths staged for the next commit, in the order
// git reports them.
func (c *Client) StagedFiles() ([]string, error) {
	cmd := exec.Command("git", "diff", "--cached", "--name-only")
	output, err := cmd.Output()
	if err != nil {
		return nil, &RepositoryError{Op: "diff --cached --name-only", Err: commandError(err)}
	}
	return ParseFileList(string(output)), nil
}

// StagedDiff returns the staged unified diff for a single path.
func (c *Client) StagedDiff(path string) (string, error) {
	cmd := exec.Command("git", "diff", "--cached", "--", path)
	output, err := cmd.Output()
	if err != nil {
		return "", &RepositoryError{Op: "diff --cached", Err: commandError(err)}
	}
	return string(output), nil
}

// Commit creates a commit with the given message.
func (c *Client) Commit(message string) error {
	cmd := exec.Command("git", "commit", "-m", message)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return &RepositoryError{Op: "commit", Err: fmt.Errorf("%v\nOutput: %s", err, string(output))}
	}
	return nil
}

// CommitWithEditor seeds git's commit message scratch file with the given
// message and opens the commit editor so the user can revise it.
func (c *Client) CommitWithEditor(message string) error {
	gitDir, err := c.gitDir()
	if err != nil {
		return err
	}

	msgPath := filepath.Join(gitDir, "COMMIT_EDITMSG")
	if err := os.WriteFile(msgPath, []byte(message), 0o644); err != nil {
		return &RepositoryError{Op: "commit --edit", Err: fmt.Errorf("writing %s: %w", msgPath, err)}
	}

	cmd := exec.Command("git", "commit", "-e", "-F", msgPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return &RepositoryError{Op: "commit --edit", Err: err}
	}
	return nil
}

func (c *Client) gitDir() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	output, err := cmd.Output()
	if err != nil {
		return "", &RepositoryError{Op: "rev-parse --git-dir", Err: commandError(err)}
	}
	return strings.TrimSpace(string(output)), nil
}

// ParseFileList splits git's newline-separated path output, dropping empty
// lines.
func ParseFileList(output string) []string {
	lines := strings.Split(output, "\n")
	var files []string
	for _, line := range lines {
		if line == "" {
			continue
		}
		files = append(files, line)
	}
	return files
}

// commandError surfaces stderr captured by exec when the command exited
// non-zero, so the user sees git's own diagnostic.
func commandError(err error) error {
	if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
		return fmt.Errorf("%v: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
	}
	return err
}
