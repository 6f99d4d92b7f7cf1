package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guyvdb/dragonstore/dragon"
	"github.com/guyvdb/dragonstore/report"
	"github.com/guyvdb/dragonstore/store"
)

func NewInfoCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the collection type, creation date, size and location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session()
			if err != nil {
				return err
			}
			report.New(cmd.OutOrStdout()).Info(s.Storage.Info())
			return nil
		},
	}
}

func NewShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every element of the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session()
			if err != nil {
				return err
			}
			report.New(cmd.OutOrStdout()).Show(s.Storage.Show())
			return nil
		},
	}
}

func NewAddCommand(opts *RootOptions) *cobra.Command {
	rf := &recordFlags{}
	cmd := &cobra.Command{
		Use:         "add",
		Short:       "Append a new element",
		Args:        cobra.NoArgs,
		Annotations: mutating(),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session()
			if err != nil {
				return err
			}
			d, err := rf.dragon()
			if err != nil {
				return err
			}
			if err := s.Storage.Add(d); err != nil {
				return fmt.Errorf("add: %w", err)
			}
			s.markDirty()
			report.New(cmd.OutOrStdout()).Added(d)
			return nil
		},
	}
	rf.bind(cmd)
	return cmd
}

func NewUpdateCommand(opts *RootOptions) *cobra.Command {
	rf := &recordFlags{}
	cmd := &cobra.Command{
		Use:         "update <id>",
		Short:       "Replace the element with the given id",
		Args:        cobra.ExactArgs(1),
		Annotations: mutating(),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session()
			if err != nil {
				return err
			}
			id, err := store.IdFromString(args[0])
			if err != nil {
				return err
			}
			d, err := rf.dragon()
			if err != nil {
				return err
			}
			if err := s.Storage.Update(id, d); err != nil {
				return fmt.Errorf("update: %w", err)
			}
			s.markDirty()
			report.New(cmd.OutOrStdout()).Done()
			return nil
		},
	}
	rf.bind(cmd)
	return cmd
}

func NewRemoveByIdCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:         "remove-by-id <id>",
		Short:       "Remove the element with the given id",
		Args:        cobra.ExactArgs(1),
		Annotations: mutating(),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session()
			if err != nil {
				return err
			}
			id, err := store.IdFromString(args[0])
			if err != nil {
				return err
			}
			r := report.New(cmd.OutOrStdout())
			if !s.Storage.RemoveById(id) {
				r.NotFound(id)
				return nil
			}
			s.markDirty()
			r.Removed(1)
			return nil
		},
	}
}

func NewInsertAtCommand(opts *RootOptions) *cobra.Command {
	rf := &recordFlags{}
	cmd := &cobra.Command{
		Use:         "insert-at <index>",
		Short:       "Insert a new element at a 0-based position",
		Args:        cobra.ExactArgs(1),
		Annotations: mutating(),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session()
			if err != nil {
				return err
			}
			position, err := store.PositionFromString(args[0])
			if err != nil {
				return err
			}
			d, err := rf.dragon()
			if err != nil {
				return err
			}
			if err := s.Storage.InsertAt(position, d); err != nil {
				return fmt.Errorf("insert-at: %w", err)
			}
			s.markDirty()
			report.New(cmd.OutOrStdout()).Done()
			return nil
		},
	}
	rf.bind(cmd)
	return cmd
}

func NewClearCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:         "clear",
		Short:       "Remove every element",
		Args:        cobra.NoArgs,
		Annotations: mutating(),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session()
			if err != nil {
				return err
			}
			s.Storage.Clear()
			s.markDirty()
			report.New(cmd.OutOrStdout()).Done()
			return nil
		},
	}
}

func NewReorderCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:         "reorder",
		Short:       "Reverse the order of the collection",
		Args:        cobra.NoArgs,
		Annotations: mutating(),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session()
			if err != nil {
				return err
			}
			s.Storage.Reorder()
			s.markDirty()
			report.New(cmd.OutOrStdout()).Done()
			return nil
		},
	}
}

func NewCountByColorCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "count-by-color <color>",
		Short: "Count the elements of a color (use 'none' for no color)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session()
			if err != nil {
				return err
			}
			color, err := dragon.ParseColor(args[0])
			if err != nil {
				return err
			}
			report.New(cmd.OutOrStdout()).Count(color, s.Storage.CountByColor(color))
			return nil
		},
	}
}

func NewFilterStartsWithNameCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "filter-starts-with-name <prefix>",
		Short: "Print the elements whose name starts with a prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session()
			if err != nil {
				return err
			}
			report.New(cmd.OutOrStdout()).Records(s.Storage.FilterStartsWithName(args[0]))
			return nil
		},
	}
}

func NewPrintDescendingCaveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "print-field-descending-cave",
		Short: "Print every cave, deepest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session()
			if err != nil {
				return err
			}
			report.New(cmd.OutOrStdout()).Caves(s.Storage.GetAllDescendingCave())
			return nil
		},
	}
}

func NewRemoveLowerCommand(opts *RootOptions) *cobra.Command {
	rf := &recordFlags{}
	cmd := &cobra.Command{
		Use:         "remove-lower",
		Short:       "Remove every element younger than the given one",
		Args:        cobra.NoArgs,
		Annotations: mutating(),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session()
			if err != nil {
				return err
			}
			threshold, err := rf.dragon()
			if err != nil {
				return err
			}
			n := s.Storage.RemoveLower(threshold)
			s.markDirty()
			report.New(cmd.OutOrStdout()).Removed(n)
			return nil
		},
	}
	rf.bind(cmd)
	return cmd
}

func NewSaveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Write the collection to its file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.session()
			if err != nil {
				return err
			}
			if err := s.Save(); err != nil {
				return err
			}
			report.New(cmd.OutOrStdout()).Saved(s.Path)
			return nil
		},
	}
}
