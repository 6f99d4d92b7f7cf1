package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func NewExecuteScriptCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:         "execute-script <file>",
		Short:       "Run the commands in a file, one per line",
		Long:        "Run the commands in a file, one per line. Blank lines and lines starting with # are skipped.\nExecution stops at the first failing line. A script may not run itself.",
		Args:        cobra.ExactArgs(1),
		Annotations: mutating(),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session()
			if err != nil {
				return err
			}
			leave, err := s.enterScript(args[0])
			if err != nil {
				return err
			}
			defer leave()
			return runScript(cmd, opts, args[0])
		},
	}
}

func runScript(cmd *cobra.Command, opts *RootOptions, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "exit" {
			return nil
		}
		if err := executeLine(cmd, opts, line); err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
	}
	return scanner.Err()
}
