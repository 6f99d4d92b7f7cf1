package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guyvdb/dragonstore/config"
)

func NewInitConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "init-config <path>",
		Short:       "Write a default config file",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotationSession: "none"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteDefault(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", args[0])
			return nil
		},
	}
}
