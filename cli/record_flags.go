package cli

import (
	"github.com/spf13/cobra"

	"github.com/guyvdb/dragonstore/dragon"
)

// recordFlags holds the flags describing one dragon.
type recordFlags struct {
	name      string
	x         int64
	y         float64
	age       int64
	color     string
	depth     int64
	treasures float64
}

func (f *recordFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "dragon name (optional)")
	cmd.Flags().Int64Var(&f.x, "x", 0, "x coordinate (greater than -596)")
	cmd.Flags().Float64Var(&f.y, "y", 0, "y coordinate (at most 655)")
	cmd.Flags().Int64VarP(&f.age, "age", "a", 0, "age (greater than 0)")
	cmd.Flags().StringVarP(&f.color, "color", "c", "", "color: GREEN, RED, BLACK, BLUE, ORANGE or none")
	cmd.Flags().Int64Var(&f.depth, "depth", 0, "cave depth")
	cmd.Flags().Float64Var(&f.treasures, "treasures", 0, "number of treasures in the cave (greater than 0)")
}

// dragon builds an unvalidated dragon from the flags.
func (f *recordFlags) dragon() (*dragon.Dragon, error) {
	color, err := dragon.ParseColor(f.color)
	if err != nil {
		return nil, err
	}
	return dragon.New(
		f.name,
		dragon.Coordinates{X: f.x, Y: f.y},
		f.age,
		color,
		dragon.Cave{Depth: f.depth, NumberOfTreasures: f.treasures},
	), nil
}
