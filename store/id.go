package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/guyvdb/dragonstore/fault"
)

// Id is the logical identifier of a record inside a collection. Ids are
// dense: after any structural change they run 1..count in sequence order.
type Id int64

// NoId is the id of a record that has not been accepted by a collection.
const NoId Id = 0

func IdFromString(s string) (Id, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return NoId, fmt.Errorf("%w: expected an integer, got '%s'", fault.ErrInvalidIdFormat, s)
	}
	return Id(v), nil
}

// PositionFromString parses a 0-based structural position.
func PositionFromString(s string) (int, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: expected a non negative integer, got '%s'", fault.ErrInvalidPosition, s)
	}
	return v, nil
}

func (id Id) String() string {
	return strconv.FormatInt(int64(id), 10)
}
