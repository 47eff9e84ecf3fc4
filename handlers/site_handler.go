package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lumbunggroup/lumbung-backend/types"
)

// SiteHandler serves static site metadata.
type SiteHandler struct {
	info types.SiteInfo
}

func NewSiteHandler(info types.SiteInfo) *SiteHandler {
	return &SiteHandler{info: info}
}

// GetSiteInfo godoc
// @Summary      Site metadata
// @Description  Title, description and the contact details block
// @Tags         site
// @Produce      json
// @Success      200  {object}  types.SiteInfo
// @Router       /site [get]
func (h *SiteHandler) GetSiteInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.info)
}
