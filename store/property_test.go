package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// After every operation except Add-after-Clear the ids are exactly 1..n and
// the next id is n+1.
func TestProperty_IdsStayDense(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := newTestCollection(WithResetOnClear(true))
		steps := rapid.IntRange(1, 60).Draw(rt, "steps")

		for i := 0; i < steps; i++ {
			valid := rapid.Bool().Draw(rt, "valid")
			candidate := &testItem{Name: "x", Age: rapid.IntRange(0, 20).Draw(rt, "age"), Valid: valid}

			switch rapid.IntRange(0, 6).Draw(rt, "op") {
			case 0:
				_ = c.Add(candidate)
			case 1:
				_ = c.Update(Id(rapid.IntRange(-2, c.Len()+2).Draw(rt, "id")), candidate)
			case 2:
				c.RemoveById(Id(rapid.IntRange(-2, c.Len()+2).Draw(rt, "id")))
			case 3:
				_ = c.InsertAt(rapid.IntRange(-1, c.Len()+1).Draw(rt, "pos"), candidate)
			case 4:
				c.Reorder()
			case 5:
				threshold := rapid.IntRange(0, 20).Draw(rt, "threshold")
				c.RemoveIf(func(it *testItem) bool { return it.Age < threshold })
			case 6:
				c.Clear()
			}

			require.True(rt, dense(c), "ids not dense: %v next=%d", ids(c.Items()), c.NextId())
		}
	})
}

// Invalid candidates never change the sequence or the counter.
func TestProperty_InvalidCandidatesAreRejected(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := newTestCollection()
		n := rapid.IntRange(0, 10).Draw(rt, "n")
		for i := 0; i < n; i++ {
			require.NoError(rt, c.Add(item("x", i)))
		}
		before := ids(c.Items())
		next := c.NextId()

		bad := invalid("bad")
		require.Error(rt, c.Add(bad))
		require.Error(rt, c.Update(Id(rapid.IntRange(1, n+1).Draw(rt, "id")), bad))
		require.Error(rt, c.InsertAt(rapid.IntRange(0, n).Draw(rt, "pos"), bad))

		require.Equal(rt, before, ids(c.Items()))
		require.Equal(rt, next, c.NextId())
	})
}
