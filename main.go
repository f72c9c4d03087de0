package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jagaleanoob/llm-commit/internal/config"
	"github.com/jagaleanoob/llm-commit/internal/core"
	"github.com/jagaleanoob/llm-commit/internal/git"
	"github.com/jagaleanoob/llm-commit/internal/llm/anthropic"
	"github.com/jagaleanoob/llm-commit/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "llm-commit",
	Short: "Generate a commit message for the staged changes and commit them",
	Run:   runCommit,
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}

func runCommit(cmd *cobra.Command, args []string) {
	// The credential check happens before any repository access.
	cfg, err := config.Load()
	if err != nil {
		log.Error().Msg(err.Error())
		os.Exit(1)
	}

	repo := git.NewClient()

	changes, err := core.Collect(repo)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read staged changes")
		os.Exit(1)
	}

	if len(changes) == 0 {
		fmt.Println("No changes staged for commit")
		return
	}

	spin := tui.NewSpinner()
	spin.Start("Generating commit message...")
	message := core.GenerateMessage(cmd.Context(), anthropic.NewClient(cfg), changes)
	spin.Stop()

	decision := tui.Confirm(os.Stdin, os.Stdout, message)
	if decision == core.Cancel {
		fmt.Println("Commit cancelled")
		return
	}

	if err := core.Execute(repo, message, decision); err != nil {
		log.Error().Err(err).Msg("Failed to create commit")
		os.Exit(1)
	}

	if decision == core.Accept {
		fmt.Printf("Successfully created commit with message:\n%s\n", message)
	}
}
