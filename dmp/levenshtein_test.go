package dmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffLevenshtein(t *testing.T) {
	diffs := []Diff{
		{DiffDelete, "abc"},
		{DiffInsert, "1234"},
		{DiffEqual, "xyz"}}
	assert.Equal(t, 4, DiffLevenshtein(diffs), "diff_levenshtein: Levenshtein with trailing equality.")

	diffs = []Diff{
		{DiffEqual, "xyz"},
		{DiffDelete, "abc"},
		{DiffInsert, "1234"}}
	assert.Equal(t, 4, DiffLevenshtein(diffs), "diff_levenshtein: Levenshtein with leading equality.")

	diffs = []Diff{
		{DiffDelete, "abc"},
		{DiffEqual, "xyz"},
		{DiffInsert, "1234"}}
	assert.Equal(t, 7, DiffLevenshtein(diffs), "diff_levenshtein: Levenshtein with middle equality.")
}
