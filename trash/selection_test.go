package trash

import (
	"testing"

	"github.com/jmgilman/go/filemgr/errors"
	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		input    string
		want     Selection
		wantQuit bool
		wantErr  bool
	}{
		{input: "1 3", want: Selection{Indices: []int{1, 3}}},
		{input: "2-4 7", want: Selection{Indices: []int{7}, Ranges: []Range{{First: 2, Last: 4}}}},
		{input: "1-100000000", want: Selection{Ranges: []Range{{First: 1, Last: 100000000}}}},
		{input: "*", want: Selection{All: true}},
		{input: "a", want: Selection{All: true}},
		{input: "all", want: Selection{All: true}},
		{input: "foo.txt.20240305070809 2", want: Selection{Indices: []int{2}, Names: []string{"foo.txt.20240305070809"}}},
		{input: "1 q 2", wantQuit: true},
		{input: "   ", want: Selection{}},
		{input: "5-2", wantErr: true},
		{input: "0-2", wantErr: true},
		{input: "-1", want: Selection{Indices: []int{-1}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sel, quit, err := ParseSelection(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				require.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantQuit, quit)
			require.Equal(t, tt.want, sel)
		})
	}
}

func TestSelection_Empty(t *testing.T) {
	require.True(t, Selection{}.Empty())
	require.False(t, All().Empty())
	require.False(t, Indices(1).Empty())
	require.False(t, Names("x").Empty())
	require.False(t, Selection{Ranges: []Range{{First: 1, Last: 2}}}.Empty())
}

func TestDedupe(t *testing.T) {
	require.Equal(t, []string{"b", "a"}, dedupe([]string{"b", "a", "b", "a"}))
	require.Empty(t, dedupe(nil))
}
