package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"z-blog-ai-api/internal/domain/entity"
	workflowprompt "z-blog-ai-api/internal/workflow/prompt"
)

func TestParseOutlineTiers(t *testing.T) {
	ctx := context.Background()

	t.Run("clean json", func(t *testing.T) {
		raw := `{"title":"Modelos de precios","introduction":"intro","sections":[{"heading":"Suscripción"}],"conclusion":"cierre"}`
		outline, tier := parseOutline(ctx, raw, "precios")
		assert.Equal(t, entity.OutlineTierClean, tier)
		assert.Equal(t, "Modelos de precios", outline.Title)
		require.Len(t, outline.Sections, 1)
	})

	t.Run("salvaged from noisy output", func(t *testing.T) {
		raw := `Aquí tienes el esquema: {"title":"T","sections":[]} espero que sirva`
		outline, tier := parseOutline(ctx, raw, "precios")
		assert.Equal(t, entity.OutlineTierSalvaged, tier)
		assert.Equal(t, "T", outline.Title)
		assert.Empty(t, outline.Sections)
	})

	t.Run("placeholder as terminal fallback", func(t *testing.T) {
		raw := strings.Repeat("texto sin estructura alguna ", 10)
		outline, tier := parseOutline(ctx, raw, "precios")
		assert.Equal(t, entity.OutlineTierPlaceholder, tier)
		assert.NotEmpty(t, outline.Title)
		assert.LessOrEqual(t, len([]rune(outline.Title)), placeholderTitleMaxRunes)
		require.Len(t, outline.Sections, 1)
	})
}

func TestPlannerPlan(t *testing.T) {
	gen := &fakeGenerator{replies: []string{`{"title":"Plan","introduction":"i","sections":[{"heading":"H","key_points":["p"]}],"conclusion":"c"}`}}
	p := NewPlanner(gen, workflowprompt.NewRegistry())

	outline, tier, err := p.Plan(context.Background(), PlanInput{
		Topic:  "modelos de precios",
		Length: entity.LengthShort,
		Styles: []entity.Style{entity.StyleInformative},
	}, entity.GenerationParams{})
	require.NoError(t, err)
	assert.Equal(t, entity.OutlineTierClean, tier)
	assert.Equal(t, "Plan", outline.Title)
	assert.Equal(t, 1, gen.completeCalls)
}
