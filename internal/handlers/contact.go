// internal/handlers/contact.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aryals/dealer-backend/internal/services"
	"github.com/aryals/dealer-backend/internal/utils"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// POST /api/contact
func (h *ContactHandler) CreateMessage(c *gin.Context) {
	var req services.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	message, err := h.contactService.CreateMessage(&req)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			utils.BadRequestResponse(c, "Name, email, and message are required")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Message sent successfully! We will get back to you soon.", gin.H{"id": message.ID})
}

// GET /api/admin/contact
func (h *ContactHandler) GetMessages(c *gin.Context) {
	params := services.ContactSearchParams{
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Sort:      c.DefaultQuery("sort", "created_at"),
		Order:     c.DefaultQuery("order", "DESC"),
	}

	messages, counts, err := h.contactService.GetMessages(params)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"messages": messages,
		"counts":   counts,
	})
}

// GET /api/admin/contact/:id
func (h *ContactHandler) GetMessage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	message, err := h.contactService.GetMessage(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Message not found")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, message)
}

// PUT /api/admin/contact/:id
func (h *ContactHandler) UpdateMessageStatus(c *gin.Context) {
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

	if err := h.contactService.UpdateMessageStatus(id, req.Status); err != nil {
		if strings.Contains(err.Error(), "invalid status") {
			utils.BadRequestResponse(c, "Invalid status. Must be: new, read, or replied")
			return
		}
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Message not found")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Status updated successfully")
}

// DELETE /api/admin/contact/:id
func (h *ContactHandler) DeleteMessage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.contactService.DeleteMessage(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Message not found")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Message deleted successfully")
}
