package router

import (
	"github.com/gin-gonic/gin"

	"github.com/keyvan-m/nftlens/internal/handler"
)

func registerAnalyzeRoutes(router *gin.RouterGroup, analyzeHandler *handler.AnalyzeHandler) {
	router.POST("/analyze", analyzeHandler.Analyze)
	router.GET("/nft-data", analyzeHandler.NFTData)
	router.GET("/health", analyzeHandler.Health)
}
