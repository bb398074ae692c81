package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"z-blog-ai-api/internal/domain/entity"
)

func TestResearchTopicOpenSearch(t *testing.T) {
	gen := &fakeGenerator{}
	r := NewResearcher(gen)

	results := r.ResearchTopic(context.Background(), "precios", nil, entity.GenerationParams{})
	require.Len(t, results, 1)
	assert.Equal(t, entity.ResearchSourceWebSearch, results[0].Source)
	assert.Equal(t, "hallazgos de la web", results[0].Content)
	assert.Equal(t, 1, gen.searchCalls)
}

func TestResearchTopicPerURLFailureIsAbsorbed(t *testing.T) {
	gen := &fakeGenerator{
		searchFn: func(query string) (string, error) {
			if strings.Contains(query, "url-2") {
				return "", errors.New("timeout")
			}
			return "resumen de " + query, nil
		},
	}
	r := NewResearcher(gen)

	urls := []string{"https://a.example/url-1", "https://a.example/url-2", "https://a.example/url-3"}
	results := r.ResearchTopic(context.Background(), "precios", urls, entity.GenerationParams{})

	// 单条失败不致命：三条结果按入参顺序，失败项保存错误文本
	require.Len(t, results, 3)
	assert.Equal(t, urls[0], results[0].Source)
	assert.Equal(t, urls[1], results[1].Source)
	assert.Equal(t, urls[2], results[2].Source)
	assert.Contains(t, results[1].Content, "Error al consultar la fuente")
	assert.Contains(t, results[1].Content, "timeout")
	assert.NotContains(t, results[0].Content, "Error")
	assert.Equal(t, 3, gen.searchCalls)
}

func TestSynthesizeFailureReturnsErrorText(t *testing.T) {
	gen := &fakeGenerator{completeErr: errors.New("provider down")}
	r := NewResearcher(gen)

	out := r.Synthesize(context.Background(), "precios",
		[]entity.ResearchResult{{Source: "web_search", Content: "datos"}}, entity.GenerationParams{})

	// 综合失败降级为错误文本而非空串，保持与逐条失败一致的处理
	assert.Contains(t, out, "Error al sintetizar la investigación")
	assert.Contains(t, out, "provider down")
}

func TestSynthesizeJoinsSources(t *testing.T) {
	gen := &fakeGenerator{replies: []string{"síntesis final"}}
	r := NewResearcher(gen)

	out := r.Synthesize(context.Background(), "precios", []entity.ResearchResult{
		{Source: "https://a.example", Content: "dato uno"},
		{Source: "web_search", Content: "dato dos"},
	}, entity.GenerationParams{})
	assert.Equal(t, "síntesis final", out)

	require.Len(t, gen.messages, 1)
	user := gen.messages[0][1].Content
	assert.Contains(t, user, "Fuente 1 (https://a.example)")
	assert.Contains(t, user, "dato dos")
}
