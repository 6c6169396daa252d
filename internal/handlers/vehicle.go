// internal/handlers/vehicle.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aryals/dealer-backend/internal/services"
	"github.com/aryals/dealer-backend/internal/utils"
)

type VehicleHandler struct {
	vehicleService *services.VehicleService
}

func NewVehicleHandler(vehicleService *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// GET /api/vehicles
func (h *VehicleHandler) GetVehicles(c *gin.Context) {
	params := services.VehicleSearchParams{
		Model:  c.Query("model"),
		Status: c.Query("status"),
		Color:  c.Query("color"),
		Wheels: c.Query("wheels"),
		Search: c.Query("search"),
		Sort:   c.DefaultQuery("sort", "created_at"),
		Order:  c.DefaultQuery("order", "DESC"),
	}

	if minPriceStr := c.Query("minPrice"); minPriceStr != "" {
		if minPrice, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
			params.MinPrice = &minPrice
		}
	}

	if maxPriceStr := c.Query("maxPrice"); maxPriceStr != "" {
		if maxPrice, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
			params.MaxPrice = &maxPrice
		}
	}

	if autopilotStr := c.Query("autopilot"); autopilotStr != "" {
		autopilot := autopilotStr == "true"
		params.Autopilot = &autopilot
	}

	vehicles, err := h.vehicleService.SearchVehicles(params)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessListResponse(c, len(vehicles), vehicles)
}

// GET /api/vehicles/:id
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.GetVehicle(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Vehicle not found")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, vehicle)
}

// GET /api/vehicles/filters
func (h *VehicleHandler) GetFilterOptions(c *gin.Context) {
	options, err := h.vehicleService.GetFilterOptions()
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, options)
}

// GET /api/vehicles/stats
func (h *VehicleHandler) GetStats(c *gin.Context) {
	stats, err := h.vehicleService.GetStats()
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, stats)
}

// POST /api/admin/vehicles
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req services.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(&req)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			utils.BadRequestResponse(c, validationMessage(err))
			return
		}
		if strings.Contains(err.Error(), "invalid status") {
			utils.BadRequestResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Vehicle created successfully", gin.H{"id": vehicle.ID})
}

// PUT /api/admin/vehicles/:id
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.vehicleService.UpdateVehicle(id, &req); err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			utils.BadRequestResponse(c, validationMessage(err))
			return
		}
		if strings.Contains(err.Error(), "invalid status") {
			utils.BadRequestResponse(c, err.Error())
			return
		}
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Vehicle not found")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Vehicle updated successfully")
}

// DELETE /api/admin/vehicles/:id
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.vehicleService.DeleteVehicle(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Vehicle not found")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Vehicle deleted successfully")
}

// POST /api/admin/vehicles/bulk
func (h *VehicleHandler) BulkCreateVehicles(c *gin.Context) {
	var req struct {
		Vehicles []services.BulkVehicleItem `json:"vehicles"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	count, err := h.vehicleService.BulkCreateVehicles(req.Vehicles)
	if err != nil {
		if strings.Contains(err.Error(), "no vehicles provided") {
			utils.BadRequestResponse(c, err.Error())
			return
		}
		if strings.Contains(err.Error(), "invalid status") {
			utils.BadRequestResponse(c, err.Error())
			return
		}
		// Any mid-batch failure has already been rolled back in full.
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.MessageResponse(c, strconv.Itoa(count)+" vehicles created successfully")
}

// GET /api/admin/vehicle-images/:vehicleId
func (h *VehicleHandler) GetVehicleImages(c *gin.Context) {
	vehicleID, ok := parseIDParam(c, "vehicleId")
	if !ok {
		return
	}

	images, err := h.vehicleService.GetVehicleImages(vehicleID)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, images)
}

// POST /api/admin/vehicle-images/:vehicleId
func (h *VehicleHandler) AddVehicleImages(c *gin.Context) {
	vehicleID, ok := parseIDParam(c, "vehicleId")
	if !ok {
		return
	}

	var req struct {
		Images []services.VehicleImageInput `json:"images"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.vehicleService.AddVehicleImages(vehicleID, req.Images); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Vehicle not found")
			return
		}
		if strings.Contains(err.Error(), "no images provided") {
			utils.BadRequestResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Images added successfully")
}

// DELETE /api/admin/vehicle-images/:id
func (h *VehicleHandler) DeleteVehicleImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.vehicleService.DeleteVehicleImage(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Image not found")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Image deleted")
}
