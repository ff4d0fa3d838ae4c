package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	clearPromptInput  io.Reader = os.Stdin
	clearPromptOutput io.Writer = os.Stdout
)

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the history database and every stored run",
	Long: `Remove the history database file. Every stored run and its findings
are discarded; the next check recreates the file from scratch.

A prompt asks for confirmation first; type exactly "Y" to proceed.`,
	Example: `
  # Remove the whole history (asks for confirmation)
  plucheck history clear

  # Remove a history kept at a custom path
  plucheck history clear --db ./archive.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, err := confirmHistoryClear(clearPromptInput, clearPromptOutput, historyDBPath)
		if err != nil {
			return err
		}
		if !confirmed {
			return fmt.Errorf("history clear aborted: confirmation was not 'Y'")
		}

		if err := removeHistoryFile(historyDBPath); err != nil {
			return err
		}
		fmt.Printf("History cleared: %s removed\n", historyDBPath)
		return nil
	},
}

func confirmHistoryClear(input io.Reader, output io.Writer, path string) (bool, error) {
	if input == nil {
		return false, fmt.Errorf("no input available for the confirmation prompt")
	}
	if output == nil {
		output = io.Discard
	}

	if _, err := fmt.Fprintf(output, "This removes every run stored in %s. Type Y to continue: ", path); err != nil {
		return false, fmt.Errorf("write confirmation prompt: %w", err)
	}

	scanner := bufio.NewScanner(input)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, fmt.Errorf("read confirmation: %w", err)
		}
		return false, nil
	}
	return strings.TrimSpace(scanner.Text()) == "Y", nil
}

func removeHistoryFile(path string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("no history database at %s", path)
	case err != nil:
		return fmt.Errorf("stat history database: %w", err)
	case info.IsDir():
		return fmt.Errorf("history database path is a directory: %s", path)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove history database: %w", err)
	}
	return nil
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
}
