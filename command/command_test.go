package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroutes/command"
)

func TestParse_Commands(t *testing.T) {
	cases := []struct {
		line string
		want command.Command
	}{
		{"addRoad;A;B;10;2000", command.AddRoad{City1: "A", City2: "B", Length: 10, Year: 2000}},
		{"addRoad;A;B;10;-300", command.AddRoad{City1: "A", City2: "B", Length: 10, Year: -300}},
		{"repairRoad;A;B;2005", command.RepairRoad{City1: "A", City2: "B", Year: 2005}},
		{"removeRoad;A;B", command.RemoveRoad{City1: "A", City2: "B"}},
		{"newRoute;7;A;C", command.NewRoute{ID: 7, City1: "A", City2: "C"}},
		{"extendRoute;7;D", command.ExtendRoute{ID: 7, City: "D"}},
		{"removeRoute;7", command.RemoveRoute{ID: 7}},
		{"getRouteDescription;7", command.GetRouteDescription{ID: 7}},
		{"getRouteDescription;4000", command.GetRouteDescription{ID: 4000}},
		{"1;A;10;2000;B", command.ExactRoute{
			ID: 1, Cities: []string{"A", "B"}, Lengths: []uint32{10}, Years: []int32{2000},
		}},
		{"3;A;10;2000;B;5;-7;C", command.ExactRoute{
			ID: 3, Cities: []string{"A", "B", "C"}, Lengths: []uint32{10, 5}, Years: []int32{2000, -7},
		}},
	}
	for _, tc := range cases {
		got, err := command.Parse(tc.line)
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.want, got, tc.line)
		assert.Equal(t, tc.want.Name(), got.Name())
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		line string
		err  error
	}{
		{"", command.ErrEmpty},
		{"addroad;A;B;1;1", command.ErrUnknownCommand},
		{"-1;A;1;1;B", command.ErrUnknownCommand},
		{"addRoad;A;B;1", command.ErrFieldCount},
		{"addRoad;A;B;1;1;", command.ErrFieldCount},
		{"removeRoute", command.ErrFieldCount},
		{"1;A;10;2000", command.ErrFieldCount},
		{"1;A;10;2000;B;5", command.ErrFieldCount},
		{"7", command.ErrFieldCount},
		{"addRoad;A;B;-1;2000", command.ErrBadNumber},
		{"addRoad;A;B;+1;2000", command.ErrBadNumber},
		{"addRoad;A;B;4294967296;2000", command.ErrBadNumber},
		{"addRoad;A;B;1;+2000", command.ErrBadNumber},
		{"addRoad;A;B;1;2147483648", command.ErrBadNumber},
		{"addRoad;A;B;1; 2000", command.ErrBadNumber},
		{"repairRoad;A;B;", command.ErrBadNumber},
		{"newRoute;x;A;B", command.ErrBadNumber},
		{"1;A;ten;2000;B", command.ErrBadNumber},
		{"1;A;10;-;B", command.ErrBadNumber},
	}
	for _, tc := range cases {
		_, err := command.Parse(tc.line)
		assert.ErrorIs(t, err, tc.err, tc.line)
	}
}

// Names are passed through untouched; the map decides what is valid.
func TestParse_KeepsNames(t *testing.T) {
	got, err := command.Parse("addRoad;;Zielona Góra;1;1")
	require.NoError(t, err)
	assert.Equal(t, command.AddRoad{City1: "", City2: "Zielona Góra", Length: 1, Year: 1}, got)
}

func TestNumbers(t *testing.T) {
	u, err := command.Uint("4294967295")
	require.NoError(t, err)
	assert.Equal(t, uint32(4294967295), u)

	i, err := command.Int("-2147483648")
	require.NoError(t, err)
	assert.Equal(t, int32(-2147483648), i)

	_, err = command.Int("--1")
	assert.ErrorIs(t, err, command.ErrBadNumber)
	_, err = command.Uint("")
	assert.ErrorIs(t, err, command.ErrBadNumber)
}

func TestSkip(t *testing.T) {
	assert.True(t, command.Skip(""))
	assert.True(t, command.Skip("#addRoad;A;B;1;1"))
	assert.False(t, command.Skip(" #"))
	assert.False(t, command.Skip("addRoad;A;B;1;1"))
}
