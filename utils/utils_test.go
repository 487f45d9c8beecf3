package utils

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapAndFilter(t *testing.T) {
	doubled := Map([]int{1, 2, 3}, func(i int) int { return i * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)

	even := Filter([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
	assert.Empty(t, Filter([]int{1}, func(int) bool { return false }))
}

func TestUniques(t *testing.T) {
	uniques := Uniques([]int{3, 1, 3, 2, 1})
	sort.Ints(uniques)
	assert.Equal(t, []int{1, 2, 3}, uniques)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
	assert.False(t, Contains(nil, "a"))
}
