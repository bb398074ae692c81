package handler

import (
	"github.com/gin-gonic/gin"

	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/internal/interfaces/http/dto"
	wfagent "z-blog-ai-api/internal/workflow/agent"
)

// CatalogHandler 能力目录处理器
type CatalogHandler struct {
	agents *wfagent.Registry
}

// NewCatalogHandler 创建能力目录处理器
func NewCatalogHandler(agents *wfagent.Registry) *CatalogHandler {
	return &CatalogHandler{agents: agents}
}

// Agents 专项写手目录
// @Summary 写手目录
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.Response[dto.AgentsResponse]
// @Router /v1/blog/agents [get]
func (h *CatalogHandler) Agents(c *gin.Context) {
	dto.Success(c, dto.ToAgentsResponse(h.agents.Available()))
}

// Styles 风格与长度目录
// @Summary 风格与长度目录
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.Response[dto.StylesResponse]
// @Router /v1/blog/styles [get]
func (h *CatalogHandler) Styles(c *gin.Context) {
	dto.Success(c, dto.StylesResponse{
		Styles: []dto.CatalogOption{
			{ID: string(entity.StyleInformative), Description: "Presenta datos y hechos con objetividad y claridad"},
			{ID: string(entity.StylePersuasive), Description: "Argumenta con convicción para influir en la opinión del lector"},
			{ID: string(entity.StyleNarrative), Description: "Apoya las ideas en historias y ejemplos con hilo conductor"},
			{ID: string(entity.StyleTechnical), Description: "Profundiza en detalles técnicos con precisión y rigor"},
		},
		Lengths: []dto.CatalogOption{
			{ID: string(entity.LengthShort), Description: "Aproximadamente 500 palabras"},
			{ID: string(entity.LengthMedium), Description: "Aproximadamente 1000 palabras"},
			{ID: string(entity.LengthLong), Description: "Aproximadamente 2000 palabras"},
		},
	})
}
