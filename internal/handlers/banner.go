// internal/handlers/banner.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aryals/dealer-backend/internal/services"
	"github.com/aryals/dealer-backend/internal/utils"
)

type BannerHandler struct {
	bannerService *services.BannerService
}

func NewBannerHandler(bannerService *services.BannerService) *BannerHandler {
	return &BannerHandler{bannerService: bannerService}
}

// GET /api/banner-images
func (h *BannerHandler) GetBanners(c *gin.Context) {
	banners, err := h.bannerService.GetBanners(c.Query("route"))
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, banners)
}

// POST /api/admin/banner-images
func (h *BannerHandler) CreateBanner(c *gin.Context) {
	var req services.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	banner, err := h.bannerService.CreateBanner(&req)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			utils.BadRequestResponse(c, validationMessage(err))
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Banner image added", gin.H{"id": banner.ID})
}

// PUT /api/admin/banner-images/reorder
func (h *BannerHandler) ReorderBanners(c *gin.Context) {
	var req struct {
		Images []services.BannerOrderItem `json:"images"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.bannerService.ReorderBanners(req.Images); err != nil {
		if strings.Contains(err.Error(), "no banner order provided") {
			utils.BadRequestResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Banner order updated")
}

// PUT /api/admin/banner-images/:id
func (h *BannerHandler) UpdateBanner(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.bannerService.UpdateBanner(id, &req); err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			utils.BadRequestResponse(c, validationMessage(err))
			return
		}
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Banner image not found")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Banner image updated")
}

// DELETE /api/admin/banner-images/:id
func (h *BannerHandler) DeleteBanner(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.bannerService.DeleteBanner(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Banner image not found")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Banner image deleted")
}
