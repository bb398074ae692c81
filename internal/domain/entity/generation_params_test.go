package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f32(v float32) *float32 { return &v }
func iptr(v int) *int        { return &v }

func TestGenerationParamsClamped(t *testing.T) {
	p := GenerationParams{
		Temperature:      f32(1.5),
		TopP:             f32(-0.2),
		FrequencyPenalty: f32(-3),
		PresencePenalty:  f32(2.5),
		MaxTokens:        iptr(0),
	}
	out := p.Clamped()

	require.NotNil(t, out.Temperature)
	assert.Equal(t, float32(1), *out.Temperature)
	assert.Equal(t, float32(0), *out.TopP)
	assert.Equal(t, float32(-2), *out.FrequencyPenalty)
	assert.Equal(t, float32(2), *out.PresencePenalty)
	assert.Nil(t, out.MaxTokens)

	// 未设置的字段保持未设置
	assert.Nil(t, GenerationParams{}.Clamped().Temperature)
}

func TestGenerationParamsMergeOver(t *testing.T) {
	base := GenerationParams{
		Provider:    "default-provider",
		Model:       "base-model",
		Temperature: f32(0.7),
		MaxTokens:   iptr(4096),
	}
	override := GenerationParams{
		Model:       "fast-model",
		Temperature: f32(0.2),
		Seed:        iptr(7),
	}

	out := override.MergeOver(base)
	assert.Equal(t, "default-provider", out.Provider)
	assert.Equal(t, "fast-model", out.Model)
	assert.Equal(t, float32(0.2), *out.Temperature)
	assert.Equal(t, 4096, *out.MaxTokens)
	assert.Equal(t, 7, *out.Seed)
}
