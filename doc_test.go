package erfagen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectionOf(t *testing.T) {
	doc := &FunctionDoc{
		Inputs: []ArgDoc{
			{Name: "iy,im,id", Type: "int", Doc: "year, month, day in Gregorian calendar"},
			{Name: "elong", Type: "double", Doc: "longitude (radians, east +ve)"},
			{Name: "r", Type: "double[3][3]", Doc: "r-matrix"},
		},
		Outputs: []ArgDoc{
			{Name: "djm0", Type: "double", Doc: "MJD zero-point"},
			{Name: "r", Type: "double[3][3]", Doc: "r-matrix, rotated"},
		},
	}

	t.Run("InputOnly", func(t *testing.T) {
		require.Equal(t, In, doc.DirectionOf("elong"))
	})

	t.Run("OutputOnly", func(t *testing.T) {
		require.Equal(t, Out, doc.DirectionOf("djm0"))
	})

	t.Run("Both", func(t *testing.T) {
		require.Equal(t, InOut, doc.DirectionOf("r"))
	})

	t.Run("CommaAliases", func(t *testing.T) {
		require.Equal(t, In, doc.DirectionOf("iy"))
		require.Equal(t, In, doc.DirectionOf("im"))
		require.Equal(t, In, doc.DirectionOf("id"))
	})

	t.Run("JoinedNameNeverMatches", func(t *testing.T) {
		require.Equal(t, Unknown, doc.DirectionOf("iy,im,id"))
	})

	t.Run("UndocumentedIsUnknown", func(t *testing.T) {
		require.Equal(t, Unknown, doc.DirectionOf("work"))
	})
}

func TestDirectionMatches(t *testing.T) {
	require.True(t, In.Matches("in|inout"))
	require.True(t, InOut.Matches("in|inout"))
	require.False(t, Out.Matches("in|inout"))
	require.False(t, Unknown.Matches("in|out|inout|ret"))
	require.True(t, Ret.Matches("out|ret"))
}
