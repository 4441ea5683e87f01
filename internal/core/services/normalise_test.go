package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeduplicate_KeepsFirstOccurrence(t *testing.T) {
	got := Deduplicate([]string{"a", "b", "a", "c", "b"})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestDeduplicate_EmptyInput(t *testing.T) {
	assert.Equal(t, []string{}, Deduplicate([]string{}))
	assert.Equal(t, []string{}, Deduplicate[string](nil))
}

func TestDeduplicate_AlreadyUnique(t *testing.T) {
	got := Deduplicate([]string{"z", "y", "x"})
	assert.Equal(t, []string{"z", "y", "x"}, got)
}

func TestDeduplicate_CaseSensitive(t *testing.T) {
	got := Deduplicate([]string{"Go", "go", "Go"})
	assert.Equal(t, []string{"Go", "go"}, got)
}

func TestDeduplicate_DoesNotModifyInput(t *testing.T) {
	in := []string{"a", "a", "b"}
	_ = Deduplicate(in)
	assert.Equal(t, []string{"a", "a", "b"}, in)
}

func TestDeduplicate_Ints(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, Deduplicate([]int{3, 1, 3, 2, 1}))
}
