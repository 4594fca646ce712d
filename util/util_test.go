package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlattenStripsSpacesAndTabs(t *testing.T) {
	assert.Equal(t, "4qCDE", Flatten("4q C D\tE"))
}

func TestFlattenKeepsNewlines(t *testing.T) {
	assert.Equal(t, "C\nD", Flatten("C \n D"))
}

func TestFlattenCollapsesCRLF(t *testing.T) {
	assert.Equal(t, "C\nD", Flatten("C\r\nD"))
}

func TestGetKeys(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	keys := GetKeys(m)
	assert.ElementsMatch(t, []string{"a", "b"}, keys)
}

func TestMin(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, Min(1, 2))
	assert.Equal(1, Min(2, 1))
}
