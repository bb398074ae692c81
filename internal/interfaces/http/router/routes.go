package router

import (
	"github.com/gin-gonic/gin"

	"z-blog-ai-api/internal/interfaces/http/handler"
)

// RegisterV1Routes 注册 v1 版本路由
func RegisterV1Routes(
	v1 *gin.RouterGroup,
	blogHandler *handler.BlogHandler,
	catalogHandler *handler.CatalogHandler,
) {
	// 文章生成
	blog := v1.Group("/blog")
	{
		blog.POST("/generate", blogHandler.Generate)
		blog.POST("/generate-multi", blogHandler.GenerateMulti)

		// 能力目录
		blog.GET("/agents", catalogHandler.Agents)
		blog.GET("/styles", catalogHandler.Styles)
	}
}
