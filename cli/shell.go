package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const prompt = "> "

func NewShellCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Read commands interactively until 'exit' or end of input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}
}

// runShell executes one command per input line. Errors are printed and the
// shell carries on. Nothing is saved unless a line says 'save'.
func runShell(cmd *cobra.Command, opts *RootOptions) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprint(out, prompt)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "exit":
			return nil
		case line != "" && !strings.HasPrefix(line, "#"):
			if err := executeLine(cmd, opts, line); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
		}
		fmt.Fprint(out, prompt)
	}
	return scanner.Err()
}

// executeLine runs a single command line against the session in opts. A
// fresh command tree is built per line so flag values never leak between
// lines.
func executeLine(parent *cobra.Command, opts *RootOptions, line string) error {
	args, err := splitArgs(line)
	if err != nil {
		return err
	}

	set := &cobra.Command{
		Use:           "dragonstore",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addCollectionCommands(set, opts)
	set.SetIn(parent.InOrStdin())
	set.SetOut(parent.OutOrStdout())
	set.SetErr(parent.ErrOrStderr())
	set.SetArgs(args)
	return set.Execute()
}

// splitArgs splits a line on whitespace. Double or single quotes group
// words, so names may contain spaces.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quote   rune
		inWord  bool
	)
	for _, r := range line {
		switch {
		case quote != 0 && r == quote:
			quote = 0
		case quote != 0:
			current.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				args = append(args, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated quote in %q", line)
	}
	if inWord {
		args = append(args, current.String())
	}
	return args, nil
}
