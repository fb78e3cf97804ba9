package generate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanHeader(t *testing.T) {
	t.Run("SelectedSection", func(t *testing.T) {
		funcs, err := ScanHeader(headerSrc, "Astronomy")
		require.NoError(t, err)
		require.Len(t, funcs, 3)
		require.Equal(t, "eraCal2jd", funcs[0].Name)
		require.Equal(t, "eraEpb", funcs[1].Name)
		require.Equal(t, "eraStarpv", funcs[2].Name)
	})

	t.Run("AnchorStopsAtParenthesis", func(t *testing.T) {
		funcs, err := ScanHeader(headerSrc, "Astronomy")
		require.NoError(t, err)
		// Header and source parameter names need not agree, so the
		// anchor is only the return-type-and-name prefix.
		require.Equal(t, "int eraCal2jd", funcs[0].MatchLine)
		require.Equal(t, "double eraEpb", funcs[1].MatchLine)
		require.Equal(t, "int eraStarpv", funcs[2].MatchLine)
	})

	t.Run("OtherSectionsSkipped", func(t *testing.T) {
		funcs, err := ScanHeader(headerSrc, "VectorMatrix")
		require.NoError(t, err)
		require.Len(t, funcs, 1)
		require.Equal(t, "eraZp", funcs[0].Name)
	})

	t.Run("UnknownSectionIsEmpty", func(t *testing.T) {
		funcs, err := ScanHeader(headerSrc, "Geodesy")
		require.NoError(t, err)
		require.Empty(t, funcs)
	})
}
