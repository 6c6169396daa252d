// internal/handlers/upload.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aryals/dealer-backend/internal/services"
	"github.com/aryals/dealer-backend/internal/utils"
)

type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{storageService: storageService}
}

// POST /api/admin/upload
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "No file uploaded")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadImage(file, fileHeader)
	if err != nil {
		if strings.Contains(err.Error(), "not allowed") ||
			strings.Contains(err.Error(), "exceeds maximum") ||
			strings.Contains(err.Error(), "not a supported image") {
			utils.BadRequestResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"imageUrl": result.URL,
		"filename": result.Filename,
	})
}
