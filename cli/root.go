package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/guyvdb/dragonstore/config"
	"github.com/guyvdb/dragonstore/logging"
)

const (
	annotationSession = "dragonstore/session" // "none": the command needs no collection
	annotationMutates = "dragonstore/mutates" // "true": autosave after a one-shot run
)

// RootOptions holds global flags and the state they produce.
type RootOptions struct {
	ConfigFile string
	File       string
	Format     string
	LogLevel   string

	Config  config.Config
	Session *Session
}

// NewRootCommand creates the root command. Run without a subcommand it
// starts the interactive shell.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "dragonstore",
		Short: "Manage an ordered collection of dragons",
		Long: "dragonstore keeps an ordered collection of dragons with dense ids 1..n,\n" +
			"persisted to a bolt or YAML file. Run without a command for an interactive shell.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return opts.autosave(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default: ./dragonstore.yaml or ~/.config/dragonstore/config.yaml)")
	cmd.PersistentFlags().StringVarP(&opts.File, "file", "f", "", "collection file (default: dragons.db)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "", "storage format (bolt|yaml), default by file extension")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")

	addCollectionCommands(cmd, opts)
	cmd.AddCommand(NewShellCommand(opts))
	cmd.AddCommand(NewInitConfigCommand())

	return cmd
}

// addCollectionCommands adds the commands that operate on the session's
// collection. The same set serves one-shot runs, shell lines and scripts.
func addCollectionCommands(cmd *cobra.Command, opts *RootOptions) {
	cmd.AddCommand(NewInfoCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewRemoveByIdCommand(opts))
	cmd.AddCommand(NewInsertAtCommand(opts))
	cmd.AddCommand(NewClearCommand(opts))
	cmd.AddCommand(NewReorderCommand(opts))
	cmd.AddCommand(NewCountByColorCommand(opts))
	cmd.AddCommand(NewFilterStartsWithNameCommand(opts))
	cmd.AddCommand(NewPrintDescendingCaveCommand(opts))
	cmd.AddCommand(NewRemoveLowerCommand(opts))
	cmd.AddCommand(NewSaveCommand(opts))
	cmd.AddCommand(NewExecuteScriptCommand(opts))
}

func (o *RootOptions) setup(cmd *cobra.Command) error {
	v := viper.New()
	root := cmd.Root().PersistentFlags()
	_ = v.BindPFlag("storage.path", root.Lookup("file"))
	_ = v.BindPFlag("storage.format", root.Lookup("format"))
	_ = v.BindPFlag("log.level", root.Lookup("log-level"))

	cfg, err := config.Load(v, o.ConfigFile)
	if err != nil {
		return err
	}
	o.Config = cfg

	if err := logging.Setup(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.NoColor); err != nil {
		return err
	}

	if cmd.Annotations[annotationSession] == "none" {
		return nil
	}

	session, err := OpenSession(cfg)
	if err != nil {
		return err
	}
	o.Session = session
	return nil
}

func (o *RootOptions) autosave(cmd *cobra.Command) error {
	if cmd.Annotations[annotationMutates] != "true" || !o.Config.Storage.Autosave {
		return nil
	}
	if o.Session == nil || !o.Session.Dirty() {
		return nil
	}
	if err := o.Session.Save(); err != nil {
		return fmt.Errorf("autosave: %w", err)
	}
	return nil
}

func (o *RootOptions) session() (*Session, error) {
	if o.Session == nil {
		return nil, ErrNoSession
	}
	return o.Session, nil
}

func mutating() map[string]string {
	return map[string]string{annotationMutates: "true"}
}
