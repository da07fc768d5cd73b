package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/triangle-accumulator/internal/checks"
)

func TestNew_PathChecks(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		condition string
	}{
		{"two extensions", "out.tar.txt", "filename has one extension"},
		{"no extension", "out", "filename has one extension"},
		{"wrong extension", "out.csv", "filename has .txt extension"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(filepath.Join(t.TempDir(), tt.filename))
			require.Error(t, err)

			var checkErr *checks.Error
			require.ErrorAs(t, err, &checkErr)
			assert.Equal(t, checks.OutputContract, checkErr.Kind)
			assert.Contains(t, checkErr.Condition, tt.condition)
		})
	}
}

func TestNew_RefusesExistingDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("previous run\n"), 0644))

	_, err := New(path)
	require.Error(t, err)

	var checkErr *checks.Error
	require.ErrorAs(t, err, &checkErr)
	assert.Equal(t, checks.OutputContract, checkErr.Kind)
	assert.Contains(t, checkErr.Condition, "does not already exist")

	// The existing file is untouched.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous run\n", string(data))
}

func TestWrite_LinesWithNewlines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	w, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, path, w.Filename())

	require.NoError(t, w.Write([]string{"2010,3", "x,0,4,9", "empty,"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2010,3\nx,0,4,9\nempty,\n", string(data))
}

func TestWrite_NoLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	w, err := New(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}
