package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/keyvan-m/nftlens/internal/analysis"
	"github.com/keyvan-m/nftlens/internal/service"
)

// apiResponse is the single envelope shape used by all data endpoints.
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	ContractAddress string `json:"contractAddress"`
}

type AnalyzeHandler struct {
	analysisService *service.AnalysisService
}

func NewAnalyzeHandler(service *service.AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analysisService: service,
	}
}

// Analyze handles POST /api/analyze. The generator accepts any string, so
// all input rejection happens here.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ContractAddress == "" {
		c.JSON(http.StatusBadRequest, apiResponse{
			Success: false,
			Error:   "Contract address is required",
		})
		return
	}

	if !analysis.IsValidAddress(req.ContractAddress) {
		c.JSON(http.StatusBadRequest, apiResponse{
			Success: false,
			Error:   "Invalid contract address",
		})
		return
	}

	c.JSON(http.StatusOK, apiResponse{
		Success: true,
		Data:    h.analysisService.Analyze(req.ContractAddress),
	})
}

// NFTData handles GET /api/nft-data using the configured default contract.
// It shares the analyze envelope so dashboard clients parse one shape.
func (h *AnalyzeHandler) NFTData(c *gin.Context) {
	c.JSON(http.StatusOK, apiResponse{
		Success: true,
		Data:    h.analysisService.AnalyzeDefault(),
	})
}

// Health handles GET /api/health.
func (h *AnalyzeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
