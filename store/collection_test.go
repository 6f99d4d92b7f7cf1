package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guyvdb/dragonstore/fault"
)

func TestNewCollection(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := newTestCollection(WithClock(func() time.Time { return created }))

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, Id(1), c.NextId())
	assert.Equal(t, created, c.CreatedAt())
	assert.Equal(t, "test.db", c.Location())
	assert.Equal(t, testTypeName, c.TypeName())
}

func TestAddAssignsSequentialIds(t *testing.T) {
	c := newTestCollection()
	for _, n := range []string{"A", "B", "C", "D"} {
		require.NoError(t, c.Add(item(n, 1)))
	}

	assert.Equal(t, []Id{1, 2, 3, 4}, ids(c.Items()))
	assert.Equal(t, []string{"A", "B", "C", "D"}, names(c.Items()))
	assert.Equal(t, Id(5), c.NextId())
}

func TestValidationGate(t *testing.T) {
	c := newTestCollection()
	require.NoError(t, c.Add(item("A", 1)))
	require.NoError(t, c.Add(item("B", 2)))

	before := names(c.Items())

	assert.ErrorIs(t, c.Add(invalid("X")), fault.ErrInvalidElement)
	assert.ErrorIs(t, c.Update(1, invalid("X")), fault.ErrInvalidElement)
	assert.ErrorIs(t, c.InsertAt(0, invalid("X")), fault.ErrInvalidElement)

	assert.Equal(t, before, names(c.Items()))
	assert.Equal(t, []Id{1, 2}, ids(c.Items()))
	assert.Equal(t, Id(3), c.NextId())
}

func TestUpdateByLogicalId(t *testing.T) {
	c := newTestCollection()
	for _, n := range []string{"A", "B", "C"} {
		require.NoError(t, c.Add(item(n, 1)))
	}

	require.NoError(t, c.Update(2, item("Z", 9)))

	assert.Equal(t, []string{"A", "Z", "C"}, names(c.Items()))
	assert.True(t, dense(c))

	got, ok := c.Get(2)
	require.True(t, ok)
	assert.Equal(t, "Z", got.Name)
}

func TestUpdateUnknownId(t *testing.T) {
	c := newTestCollection()
	require.NoError(t, c.Add(item("A", 1)))

	err := c.Update(7, item("Z", 1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fault.ErrNotFound))
	assert.Equal(t, []string{"A"}, names(c.Items()))
}

func TestRemoveById(t *testing.T) {
	c := newTestCollection()
	for _, n := range []string{"A", "B", "C"} {
		require.NoError(t, c.Add(item(n, 1)))
	}

	assert.True(t, c.RemoveById(2))
	assert.Equal(t, []string{"A", "C"}, names(c.Items()))
	assert.Equal(t, []Id{1, 2}, ids(c.Items()))
	assert.Equal(t, Id(3), c.NextId())
}

func TestRemoveByIdNotFound(t *testing.T) {
	for _, id := range []Id{0, -1, -100, 5, 99} {
		t.Run(id.String(), func(t *testing.T) {
			c := newTestCollection()
			for _, n := range []string{"A", "B", "C"} {
				require.NoError(t, c.Add(item(n, 1)))
			}

			assert.False(t, c.RemoveById(id))
			assert.Equal(t, 3, c.Len())
			assert.Equal(t, []Id{1, 2, 3}, ids(c.Items()))
			assert.Equal(t, Id(4), c.NextId())
		})
	}
}

func TestInsertAt(t *testing.T) {
	c := newTestCollection()
	for _, n := range []string{"A", "B"} {
		require.NoError(t, c.Add(item(n, 1)))
	}

	require.NoError(t, c.InsertAt(1, item("X", 1)))
	require.NoError(t, c.InsertAt(0, item("F", 1)))
	require.NoError(t, c.InsertAt(c.Len(), item("L", 1)))

	assert.Equal(t, []string{"F", "A", "X", "B", "L"}, names(c.Items()))
	assert.True(t, dense(c))
}

func TestInsertAtOutOfRange(t *testing.T) {
	c := newTestCollection()
	require.NoError(t, c.Add(item("A", 1)))

	assert.ErrorIs(t, c.InsertAt(-1, item("X", 1)), fault.ErrPositionOutOfRange)
	assert.ErrorIs(t, c.InsertAt(2, item("X", 1)), fault.ErrPositionOutOfRange)
	assert.Equal(t, []string{"A"}, names(c.Items()))
}

func TestClearKeepsCounter(t *testing.T) {
	c := newTestCollection()
	for _, n := range []string{"A", "B", "C"} {
		require.NoError(t, c.Add(item(n, 1)))
	}

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, Id(4), c.NextId())

	require.NoError(t, c.Add(item("D", 1)))
	assert.Equal(t, []Id{4}, ids(c.Items()))

	// The next structural change makes the ids dense again.
	c.Reorder()
	assert.Equal(t, []Id{1}, ids(c.Items()))
}

func TestClearWithResetOnClear(t *testing.T) {
	c := newTestCollection(WithResetOnClear(true))
	for _, n := range []string{"A", "B", "C"} {
		require.NoError(t, c.Add(item(n, 1)))
	}

	c.Clear()
	require.NoError(t, c.Add(item("D", 1)))
	assert.Equal(t, []Id{1}, ids(c.Items()))
	assert.Equal(t, Id(2), c.NextId())
}

func TestReorder(t *testing.T) {
	c := newTestCollection()
	for _, n := range []string{"A", "B", "C"} {
		require.NoError(t, c.Add(item(n, 1)))
	}

	c.Reorder()

	assert.Equal(t, []string{"C", "B", "A"}, names(c.Items()))
	assert.Equal(t, []Id{1, 2, 3}, ids(c.Items()))
}

func TestReorderEmpty(t *testing.T) {
	c := newTestCollection()
	c.Reorder()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, Id(1), c.NextId())
}

func TestRemoveIf(t *testing.T) {
	c := newTestCollection()
	for i, n := range []string{"A", "B", "C", "D"} {
		require.NoError(t, c.Add(item(n, i)))
	}

	removed := c.RemoveIf(func(it *testItem) bool { return it.Age%2 == 0 })

	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"B", "D"}, names(c.Items()))
	assert.True(t, dense(c))
}

func TestRemoveIfRenumbersWhenNothingRemoved(t *testing.T) {
	c := newTestCollection()
	for _, n := range []string{"A", "B"} {
		require.NoError(t, c.Add(item(n, 1)))
	}
	c.Clear()
	require.NoError(t, c.Add(item("C", 1)))
	require.Equal(t, []Id{3}, ids(c.Items()))

	assert.Equal(t, 0, c.RemoveIf(func(*testItem) bool { return false }))
	assert.Equal(t, []Id{1}, ids(c.Items()))
	assert.Equal(t, Id(2), c.NextId())
}

func TestCountAndFilter(t *testing.T) {
	c := newTestCollection()
	for i, n := range []string{"A", "B", "C"} {
		require.NoError(t, c.Add(item(n, i)))
	}

	assert.Equal(t, 2, c.Count(func(it *testItem) bool { return it.Age > 0 }))
	assert.Equal(t, []string{"B", "C"}, names(c.Filter(func(it *testItem) bool { return it.Age > 0 })))
	assert.Empty(t, c.Filter(func(*testItem) bool { return false }))
	assert.Equal(t, 3, c.Len())
}

func TestItemsIsACopy(t *testing.T) {
	c := newTestCollection()
	require.NoError(t, c.Add(item("A", 1)))

	items := c.Items()
	items[0] = item("Z", 1)

	assert.Equal(t, []string{"A"}, names(c.Items()))
}

func TestRenumber(t *testing.T) {
	items := []*testItem{{Id: 9}, {Id: 3}, {Id: 3}}
	next := Renumber(items)

	assert.Equal(t, []Id{1, 2, 3}, ids(items))
	assert.Equal(t, Id(4), next)
	assert.Equal(t, Id(1), Renumber([]*testItem{}))
}

func TestSnapshotAndLoad(t *testing.T) {
	c := newTestCollection()
	for _, n := range []string{"A", "B"} {
		require.NoError(t, c.Add(item(n, 1)))
	}

	snap := c.Snapshot()
	assert.Equal(t, testTypeName, snap.TypeName)
	assert.Equal(t, Id(3), snap.NextId)
	require.Len(t, snap.Items, 2)

	other := newTestCollection()
	loaded := &testItem{Id: 40, Name: "L", Valid: true}
	skipped, err := other.Load(Snapshot{
		TypeName: testTypeName,
		Items:    []Storable{loaded, invalid("bad"), &testItem{Id: 7, Name: "M", Valid: true}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, []string{"L", "M"}, names(other.Items()))
	assert.True(t, dense(other))
}

func TestLoadRejectsOtherType(t *testing.T) {
	c := newTestCollection()
	_, err := c.Load(Snapshot{TypeName: "Other"})
	assert.ErrorIs(t, err, fault.ErrTypeMismatch)
}

type failingWriter struct{ err error }

func (w failingWriter) Write(Snapshot, string) error { return w.err }

type recordingWriter struct {
	snap   Snapshot
	target string
}

func (w *recordingWriter) Write(snap Snapshot, target string) error {
	w.snap, w.target = snap, target
	return nil
}

func TestSave(t *testing.T) {
	c := newTestCollection()
	require.NoError(t, c.Add(item("A", 1)))

	w := &recordingWriter{}
	require.NoError(t, c.Save(w, "out.db"))
	assert.Equal(t, "out.db", w.target)
	assert.Len(t, w.snap.Items, 1)

	boom := errors.New("disk full")
	err := c.Save(failingWriter{err: boom}, "out.db")
	assert.ErrorIs(t, err, boom)
}
