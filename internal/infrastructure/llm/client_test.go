package llm

import (
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"z-blog-ai-api/internal/domain/entity"
)

func TestSearchOptionsDropResolvedWritingModel(t *testing.T) {
	temp := float32(0.5)
	params := entity.GenerationParams{
		Provider:    "default-provider",
		Model:       "writer-model",
		Temperature: &temp,
	}

	searchParams, opts := searchOptions(params)

	// 搜索调用不得携带写作模型名，交由提供商配置的搜索模型生效
	assert.Empty(t, searchParams.Model)
	common := model.GetCommonOptions(&model.Options{}, opts...)
	assert.Nil(t, common.Model)
	require.NotNil(t, common.Temperature)
	assert.Equal(t, float32(0.5), *common.Temperature)
}

func TestBuildModelOptionsKeepsModelForCompletion(t *testing.T) {
	mt := 2048
	params := entity.GenerationParams{
		Provider:  "default-provider",
		Model:     "writer-model",
		MaxTokens: &mt,
	}

	common := model.GetCommonOptions(&model.Options{}, buildModelOptions(params)...)
	require.NotNil(t, common.Model)
	assert.Equal(t, "writer-model", *common.Model)
	require.NotNil(t, common.MaxTokens)
	assert.Equal(t, 2048, *common.MaxTokens)
}
