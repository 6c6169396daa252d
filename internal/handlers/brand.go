// internal/handlers/brand.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aryals/dealer-backend/internal/services"
	"github.com/aryals/dealer-backend/internal/utils"
)

type BrandHandler struct {
	brandService *services.BrandService
}

func NewBrandHandler(brandService *services.BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService}
}

// GET /api/brands
func (h *BrandHandler) GetBrands(c *gin.Context) {
	activeOnly := c.DefaultQuery("active_only", "false") == "true"

	brands, err := h.brandService.GetBrands(activeOnly)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, brands)
}

// GET /api/brands/:id
func (h *BrandHandler) GetBrand(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	brand, err := h.brandService.GetBrand(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Brand not found")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, brand)
}

// POST /api/admin/brands
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var req services.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	brand, err := h.brandService.CreateBrand(&req)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			utils.BadRequestResponse(c, "Name and image are required")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Brand created successfully", brand)
}

// PUT /api/admin/brands/:id
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.brandService.UpdateBrand(id, &req); err != nil {
		if strings.Contains(err.Error(), "no fields to update") {
			utils.BadRequestResponse(c, "No fields to update")
			return
		}
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Brand not found")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Brand updated successfully")
}

// DELETE /api/admin/brands/:id
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.brandService.DeleteBrand(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Brand not found")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Brand deleted successfully")
}
