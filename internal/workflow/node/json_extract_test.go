package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONObject(t *testing.T) {
	t.Run("clean object passes through", func(t *testing.T) {
		raw := `{"title":"T"}`
		assert.Equal(t, raw, ExtractJSONObject(raw))
	})

	t.Run("strips fences and surrounding text", func(t *testing.T) {
		raw := "```json\n{\"title\":\"T\",\"sections\":[]}\n```\nEspero que te sirva."
		assert.Equal(t, `{"title":"T","sections":[]}`, ExtractJSONObject(raw))
	})

	t.Run("no braces yields empty", func(t *testing.T) {
		assert.Empty(t, ExtractJSONObject("sin json aqui"))
	})

	t.Run("empty input yields empty", func(t *testing.T) {
		assert.Empty(t, ExtractJSONObject("   "))
	})

	t.Run("closing brace before opening yields empty", func(t *testing.T) {
		assert.Empty(t, ExtractJSONObject("} texto {"))
	})
}
