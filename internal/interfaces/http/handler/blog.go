// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"z-blog-ai-api/internal/application/blog"
	"z-blog-ai-api/internal/interfaces/http/dto"
)

// BlogHandler 文章生成处理器
type BlogHandler struct {
	orch *blog.Orchestrator
}

// NewBlogHandler 创建文章生成处理器
func NewBlogHandler(orch *blog.Orchestrator) *BlogHandler {
	return &BlogHandler{orch: orch}
}

// Generate 单主题文章生成
// @Summary 生成博客文章
// @Description 按主题执行 规划->写作->编辑 流水线并返回结构化文档
// @Tags Blog
// @Accept json
// @Produce json
// @Param body body dto.GenerateArticleRequest true "生成请求"
// @Success 200 {object} dto.Response[dto.GenerateArticleResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/blog/generate [post]
func (h *BlogHandler) Generate(c *gin.Context) {
	var req dto.GenerateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	result, err := h.orch.Generate(c.Request.Context(), req.ToCommand())
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Success(c, dto.ToGenerateArticleResponse(result))
}

// GenerateMulti 多智能体组合生成
// @Summary 多智能体组合生成
// @Description 并发执行指定的专项写手并合稿为一篇文章
// @Tags Blog
// @Accept json
// @Produce json
// @Param body body dto.GenerateMultiRequest true "组合生成请求"
// @Success 200 {object} dto.Response[dto.GenerateArticleResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/blog/generate-multi [post]
func (h *BlogHandler) GenerateMulti(c *gin.Context) {
	var req dto.GenerateMultiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	result, err := h.orch.GenerateMulti(c.Request.Context(), req.ToCommand())
	if err != nil {
		dto.Fail(c, err)
		return
	}

	dto.Success(c, dto.ToGenerateArticleResponse(result))
}
