package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLength(t *testing.T) {
	l, err := ParseLength("")
	require.NoError(t, err)
	assert.Equal(t, LengthMedium, l)

	l, err = ParseLength("SHORT")
	require.NoError(t, err)
	assert.Equal(t, LengthShort, l)

	_, err = ParseLength("enorme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "short, medium, long")
}

func TestLengthWordTarget(t *testing.T) {
	assert.Equal(t, 500, LengthShort.WordTarget())
	assert.Equal(t, 1000, LengthMedium.WordTarget())
	assert.Equal(t, 2000, LengthLong.WordTarget())
}

func TestParseStyles(t *testing.T) {
	t.Run("empty defaults to informativo", func(t *testing.T) {
		styles, err := ParseStyles(nil)
		require.NoError(t, err)
		assert.Equal(t, []Style{StyleInformative}, styles)
	})

	t.Run("accents and dedupe", func(t *testing.T) {
		styles, err := ParseStyles([]string{"técnico", "tecnico", "narrativo"})
		require.NoError(t, err)
		assert.Equal(t, []Style{StyleTechnical, StyleNarrative}, styles)
	})

	t.Run("unknown style lists valid set", func(t *testing.T) {
		_, err := ParseStyles([]string{"poetico"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "informativo, persuasivo, narrativo, tecnico")
	})
}
