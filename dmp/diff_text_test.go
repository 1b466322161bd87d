package dmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffText(t *testing.T) {
	// Compute the source and destination texts.
	diffs := []Diff{
		{DiffEqual, "jump"},
		{DiffDelete, "s"},
		{DiffInsert, "ed"},
		{DiffEqual, " over "},
		{DiffDelete, "the"},
		{DiffInsert, "a"},
		{DiffEqual, " lazy"}}
	assert.Equal(t, "jumps over the lazy", DiffText1(diffs))
	assert.Equal(t, "jumped over a lazy", DiffText2(diffs))
}
