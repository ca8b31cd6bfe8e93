package v1

import (
	"net/http"

	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	portfolioUC domain.PortfolioUsecase
}

// NewPortfolioHandler registers the read-only content routes
func NewPortfolioHandler(public *gin.RouterGroup, portfolioUC domain.PortfolioUsecase) {
	handler := &PortfolioHandler{
		portfolioUC: portfolioUC,
	}

	public.GET("/portfolio", handler.GetContent)
	public.GET("/portfolio/languages", handler.ListLanguages)
}

// GetContent godoc
// @Summary      Get Portfolio Content
// @Description  Full localized content document for the client-rendered site. Unknown languages fall back to the default.
// @Tags         portfolio
// @Produce      json
// @Param        lang  query     string  false  "Language code"
// @Success      200   {object}  domain.PortfolioContent
// @Router       /portfolio [get]
func (h *PortfolioHandler) GetContent(c *gin.Context) {
	doc := h.portfolioUC.GetContent(c.Request.Context(), c.Query("lang"))
	c.JSON(http.StatusOK, doc)
}

// ListLanguages godoc
// @Summary      List Supported Languages
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /portfolio/languages [get]
func (h *PortfolioHandler) ListLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": h.portfolioUC.Languages(c.Request.Context())})
}
