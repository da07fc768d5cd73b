package checks

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCondition_Met(t *testing.T) {
	assert.NoError(t, Condition(InputContract, true, "filename has one extension"))
}

func TestCondition_NotMet(t *testing.T) {
	err := Condition(InputContract, false, "filename has one extension")
	require.Error(t, err)
	assert.EqualError(t, err, "condition: [filename has one extension] not met")

	var checkErr *Error
	require.True(t, errors.As(err, &checkErr))
	assert.Equal(t, InputContract, checkErr.Kind)
	assert.Equal(t, "filename has one extension", checkErr.Condition)
}

func TestCondition_FormatsArguments(t *testing.T) {
	err := Condition(OutputContract, false, "%s does not already exist", "out.txt")
	require.Error(t, err)
	assert.EqualError(t, err, "condition: [out.txt does not already exist] not met")
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "input contract", InputContract.String())
	assert.Equal(t, "output contract", OutputContract.String())
}
