// internal/handlers/test_drive.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aryals/dealer-backend/internal/services"
	"github.com/aryals/dealer-backend/internal/utils"
)

type TestDriveHandler struct {
	testDriveService *services.TestDriveService
}

func NewTestDriveHandler(testDriveService *services.TestDriveService) *TestDriveHandler {
	return &TestDriveHandler{testDriveService: testDriveService}
}

// POST /api/test-drive
func (h *TestDriveHandler) SubmitTestDrive(c *gin.Context) {
	var req services.SubmitTestDriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	testDrive, err := h.testDriveService.SubmitTestDrive(&req)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			utils.BadRequestResponse(c, validationMessage(err))
			return
		}
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Vehicle not found")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Test drive scheduled successfully! We will contact you to confirm.", gin.H{"id": testDrive.ID})
}

// GET /api/admin/test-drives
func (h *TestDriveHandler) GetTestDrives(c *gin.Context) {
	params := services.TestDriveSearchParams{
		Status:    c.DefaultQuery("status", "all"),
		Sort:      c.DefaultQuery("sort", "latest"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}

	testDrives, err := h.testDriveService.GetTestDrives(params)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	count := len(testDrives)
	utils.SuccessListResponse(c, count, testDrives)
}

// GET /api/admin/test-drives/stats
func (h *TestDriveHandler) GetTestDriveStats(c *gin.Context) {
	stats, err := h.testDriveService.GetTestDriveStats()
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, stats)
}

// GET /api/admin/test-drives/:id
func (h *TestDriveHandler) GetTestDrive(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	testDrive, err := h.testDriveService.GetTestDrive(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Test drive not found")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, testDrive)
}

// PUT /api/admin/test-drives/:id
func (h *TestDriveHandler) UpdateTestDriveStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.testDriveService.UpdateTestDriveStatus(id, req.Status); err != nil {
		if strings.Contains(err.Error(), "invalid status") {
			utils.BadRequestResponse(c, "Invalid status. Must be: pending, confirmed, completed, or cancelled")
			return
		}
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Test drive not found")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Status updated successfully")
}

// DELETE /api/admin/test-drives/:id
func (h *TestDriveHandler) DeleteTestDrive(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.testDriveService.DeleteTestDrive(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Test drive not found")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Test drive deleted successfully")
}
