package pure_utils

import (
	"strconv"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	out := Map([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, out)
}

func TestMapErr(t *testing.T) {
	out, err := MapErr([]string{"1", "2"}, strconv.Atoi)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2}, out)

	_, err = MapErr([]string{"1", "nope"}, strconv.Atoi)
	assert.Error(t, err)
}

func TestMapErrStopsOnFirstError(t *testing.T) {
	calls := 0
	_, err := MapErr([]string{"a", "b", "c"}, func(s string) (string, error) {
		calls++
		if s == "b" {
			return "", errors.New("boom")
		}
		return s, nil
	})
	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestGroupBy(t *testing.T) {
	out := GroupBy([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4}, out[true])
	assert.Equal(t, []int{1, 3}, out[false])
}
