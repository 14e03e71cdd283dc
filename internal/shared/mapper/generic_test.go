package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSlice(t *testing.T) {
	assert.Nil(t, MapSlice[int, string](nil, strconv.Itoa))
	assert.Equal(t, []string{}, MapSlice([]int{}, strconv.Itoa))
	assert.Equal(t, []string{"1", "2"}, MapSlice([]int{1, 2}, strconv.Itoa))
}

func TestMapSliceWithError(t *testing.T) {
	tests := []struct {
		name        string
		input       []int
		want        []string
		errContains string
	}{
		{name: "nil input returns nil", input: nil, want: nil},
		{name: "maps every element", input: []int{1, 2, 3}, want: []string{"1", "2", "3"}},
		{name: "reports failing index", input: []int{1, -1, 3}, errContains: "index 1"},
	}

	mapFunc := func(i int) (string, error) {
		if i < 0 {
			return "", errors.New("negative")
		}
		return strconv.Itoa(i), nil
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapSliceWithError(tt.input, mapFunc)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNullableStrings(t *testing.T) {
	assert.Nil(t, NilIfEmpty(""))
	require.NotNil(t, NilIfEmpty("x"))
	assert.Equal(t, "x", *NilIfEmpty("x"))
	assert.Equal(t, "", Deref(nil))
	assert.Equal(t, "x", Deref(NilIfEmpty("x")))
}
