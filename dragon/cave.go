package dragon

import (
	"cmp"
	"fmt"
)

// Cave is where a dragon lives. Caves are ordered by depth, then by the
// number of treasures.
type Cave struct {
	Depth             int64   `json:"depth" yaml:"depth"`
	NumberOfTreasures float64 `json:"numberOfTreasures" yaml:"number_of_treasures"`
}

func (c Cave) IsValid() bool {
	return c.NumberOfTreasures > 0
}

// Compare returns -1, 0 or +1 as c sorts before, with or after other.
func (c Cave) Compare(other Cave) int {
	if r := cmp.Compare(c.Depth, other.Depth); r != 0 {
		return r
	}
	return cmp.Compare(c.NumberOfTreasures, other.NumberOfTreasures)
}

func (c Cave) String() string {
	return fmt.Sprintf("(depth=%d, treasures=%g)", c.Depth, c.NumberOfTreasures)
}
