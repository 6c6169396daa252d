// internal/services/vehicle_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/aryals/dealer-backend/internal/models"
)

type VehicleServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *VehicleService
}

func (suite *VehicleServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.service = NewVehicleService(suite.db)
}

func (suite *VehicleServiceTestSuite) seedVehicles() []models.Vehicle {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	vehicles := []models.Vehicle{
		{
			Model: "Model S", Variant: "Plaid", Price: 89990, Mileage: 12,
			RangeEPA: 396, ExteriorColor: "Pearl White", Wheels: "21\" Arachnid",
			Autopilot: true, Status: models.VehicleStatusAvailable,
			InventoryType: models.InventoryTypeCash, Location: "Kathmandu",
		},
		{
			Model: "Model 3", Variant: "Long Range", Price: 47990, Mileage: 8500,
			RangeEPA: 341, ExteriorColor: "Deep Blue Metallic", Wheels: "18\" Aero",
			Autopilot: true, Status: models.VehicleStatusUsed,
			InventoryType: models.InventoryTypeCash, Location: "Pokhara",
		},
		{
			Model: "Model X", Variant: "Plaid", Price: 94990, Mileage: 5,
			RangeEPA: 333, ExteriorColor: "Solid Black", Wheels: "20\" Cyberstream",
			Autopilot: false, Status: models.VehicleStatusAvailable,
			InventoryType: models.InventoryTypeLease, Location: "Kathmandu",
		},
		{
			Model: "Model Y", Variant: "Performance", Price: 52490, Mileage: 21000,
			RangeEPA: 303, ExteriorColor: "Red Multi-Coat", Wheels: "21\" Uberturbine",
			Autopilot: true, Status: models.VehicleStatusSoldOut,
			InventoryType: models.InventoryTypeCash, Location: "Lalitpur",
		},
	}

	for i := range vehicles {
		vehicles[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
		suite.Require().NoError(suite.db.Create(&vehicles[i]).Error)
	}

	return vehicles
}

func (suite *VehicleServiceTestSuite) TestSearchWithoutFiltersReturnsNewestFirst() {
	suite.seedVehicles()

	result, err := suite.service.SearchVehicles(VehicleSearchParams{})
	suite.NoError(err)
	suite.Len(result, 4)

	// Default ordering is created_at DESC
	suite.Equal("Model Y", result[0].Model)
	suite.Equal("Model S", result[3].Model)
}

func (suite *VehicleServiceTestSuite) TestSearchFiltersCombineWithAnd() {
	suite.seedVehicles()

	result, err := suite.service.SearchVehicles(VehicleSearchParams{
		Status:   string(models.VehicleStatusAvailable),
		MinPrice: floatPtr(90000),
	})
	suite.NoError(err)
	suite.Len(result, 1)
	suite.Equal("Model X", result[0].Model)
}

func (suite *VehicleServiceTestSuite) TestSearchModelIsCaseInsensitiveSubstring() {
	suite.seedVehicles()

	result, err := suite.service.SearchVehicles(VehicleSearchParams{Model: "model s"})
	suite.NoError(err)
	suite.Len(result, 1)
	suite.Equal("Model S", result[0].Model)
}

func (suite *VehicleServiceTestSuite) TestSearchPriceRange() {
	suite.seedVehicles()

	result, err := suite.service.SearchVehicles(VehicleSearchParams{
		MinPrice: floatPtr(47990),
		MaxPrice: floatPtr(52490),
	})
	suite.NoError(err)
	suite.Len(result, 2)
}

func (suite *VehicleServiceTestSuite) TestSearchAutopilotFalseIsAFilter() {
	suite.seedVehicles()

	result, err := suite.service.SearchVehicles(VehicleSearchParams{Autopilot: boolPtr(false)})
	suite.NoError(err)
	suite.Len(result, 1)
	suite.Equal("Model X", result[0].Model)
}

func (suite *VehicleServiceTestSuite) TestSearchTermMatchesAnyTextColumn() {
	suite.seedVehicles()

	// Matches location on two rows
	result, err := suite.service.SearchVehicles(VehicleSearchParams{Search: "kathmandu"})
	suite.NoError(err)
	suite.Len(result, 2)

	// Matches variant
	result, err = suite.service.SearchVehicles(VehicleSearchParams{Search: "plaid"})
	suite.NoError(err)
	suite.Len(result, 2)

	// Matches exterior color
	result, err = suite.service.SearchVehicles(VehicleSearchParams{Search: "deep blue"})
	suite.NoError(err)
	suite.Len(result, 1)
	suite.Equal("Model 3", result[0].Model)
}

func (suite *VehicleServiceTestSuite) TestSearchSortPriceAscending() {
	suite.seedVehicles()

	result, err := suite.service.SearchVehicles(VehicleSearchParams{Sort: "price", Order: "asc"})
	suite.NoError(err)
	suite.Len(result, 4)

	for i := 1; i < len(result); i++ {
		suite.LessOrEqual(result[i-1].Price, result[i].Price)
	}
}

func (suite *VehicleServiceTestSuite) TestSearchUnknownSortFallsBackToCreatedAt() {
	suite.seedVehicles()

	byDefault, err := suite.service.SearchVehicles(VehicleSearchParams{})
	suite.NoError(err)

	byGarbage, err := suite.service.SearchVehicles(VehicleSearchParams{Sort: "model; DROP TABLE vehicles"})
	suite.NoError(err)

	suite.Require().Len(byGarbage, len(byDefault))
	for i := range byDefault {
		suite.Equal(byDefault[i].ID, byGarbage[i].ID)
	}
}

func (suite *VehicleServiceTestSuite) TestSearchEmptyResultIsNotAnError() {
	suite.seedVehicles()

	result, err := suite.service.SearchVehicles(VehicleSearchParams{Model: "cybertruck"})
	suite.NoError(err)
	suite.NotNil(result)
	suite.Len(result, 0)
}

func (suite *VehicleServiceTestSuite) TestGetVehicleOrdersImagesPrimaryFirst() {
	vehicles := suite.seedVehicles()
	vehicleID := vehicles[0].ID

	images := []models.VehicleImage{
		{VehicleID: vehicleID, ImageURL: "https://cdn.example.com/side.jpg", IsPrimary: false, DisplayOrder: 2},
		{VehicleID: vehicleID, ImageURL: "https://cdn.example.com/interior.jpg", IsPrimary: false, DisplayOrder: 0},
		{VehicleID: vehicleID, ImageURL: "https://cdn.example.com/front.jpg", IsPrimary: true, DisplayOrder: 1},
	}
	suite.Require().NoError(suite.db.Create(&images).Error)

	// Primary wins over display order, then the rest sort ascending
	detail, err := suite.service.GetVehicle(vehicleID)
	suite.NoError(err)
	suite.Equal([]string{
		"https://cdn.example.com/front.jpg",
		"https://cdn.example.com/interior.jpg",
		"https://cdn.example.com/side.jpg",
	}, detail.ImageURLs)
}

func (suite *VehicleServiceTestSuite) TestGetVehicleWithoutImagesReturnsEmptyList() {
	vehicles := suite.seedVehicles()

	detail, err := suite.service.GetVehicle(vehicles[1].ID)
	suite.NoError(err)
	suite.NotNil(detail.ImageURLs)
	suite.Len(detail.ImageURLs, 0)
}

func (suite *VehicleServiceTestSuite) TestGetVehicleNotFound() {
	_, err := suite.service.GetVehicle(9999)
	suite.Error(err)
	suite.Contains(err.Error(), "not found")
}

func (suite *VehicleServiceTestSuite) TestCreateVehicleNormalizesStatusAndDefaults() {
	vehicle, err := suite.service.CreateVehicle(&VehicleRequest{
		Model:  "Model 3",
		Price:  42990,
		Status: "sold",
	})
	suite.NoError(err)
	suite.Equal(models.VehicleStatusSoldOut, vehicle.Status)
	suite.Equal(models.InventoryTypeCash, vehicle.InventoryType)
	suite.NotZero(vehicle.ID)
}

func (suite *VehicleServiceTestSuite) TestCreateVehicleRejectsUnknownStatus() {
	_, err := suite.service.CreateVehicle(&VehicleRequest{
		Model:  "Model 3",
		Price:  42990,
		Status: "scrapped",
	})
	suite.Error(err)
	suite.Contains(err.Error(), "invalid status")
}

func (suite *VehicleServiceTestSuite) TestCreateVehicleRequiresModelAndPrice() {
	_, err := suite.service.CreateVehicle(&VehicleRequest{Price: 42990})
	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *VehicleServiceTestSuite) TestUpdateVehicleOverwritesEveryColumn() {
	vehicles := suite.seedVehicles()
	id := vehicles[0].ID

	// An update that omits variant and location blanks them out
	err := suite.service.UpdateVehicle(id, &VehicleRequest{
		Model:  "Model S",
		Price:  79990,
		Status: "used",
	})
	suite.NoError(err)

	var updated models.Vehicle
	suite.Require().NoError(suite.db.First(&updated, id).Error)
	suite.Equal(79990.0, updated.Price)
	suite.Equal(models.VehicleStatusUsed, updated.Status)
	suite.Empty(updated.Variant)
	suite.Empty(updated.Location)
	suite.False(updated.Autopilot)
}

func (suite *VehicleServiceTestSuite) TestUpdateVehicleNotFound() {
	err := suite.service.UpdateVehicle(9999, &VehicleRequest{Model: "Model S", Price: 1000})
	suite.Error(err)
	suite.Contains(err.Error(), "not found")
}

func (suite *VehicleServiceTestSuite) TestDeleteVehicleRemovesItsImages() {
	vehicles := suite.seedVehicles()
	id := vehicles[0].ID

	images := []models.VehicleImage{
		{VehicleID: id, ImageURL: "https://cdn.example.com/a.jpg"},
		{VehicleID: id, ImageURL: "https://cdn.example.com/b.jpg"},
	}
	suite.Require().NoError(suite.db.Create(&images).Error)

	suite.NoError(suite.service.DeleteVehicle(id))

	var vehicleCount, imageCount int64
	suite.db.Model(&models.Vehicle{}).Where("id = ?", id).Count(&vehicleCount)
	suite.db.Model(&models.VehicleImage{}).Where("vehicle_id = ?", id).Count(&imageCount)
	suite.Zero(vehicleCount)
	suite.Zero(imageCount)
}

func (suite *VehicleServiceTestSuite) TestDeleteVehicleNotFound() {
	err := suite.service.DeleteVehicle(9999)
	suite.Error(err)
	suite.Contains(err.Error(), "not found")
}

func (suite *VehicleServiceTestSuite) TestFilterOptionsAreDistinctSortedAndNonEmpty() {
	suite.seedVehicles()

	// A second Model S should not duplicate the option
	extra := models.Vehicle{Model: "Model S", Price: 69990, Status: models.VehicleStatusUsed}
	suite.Require().NoError(suite.db.Create(&extra).Error)

	// Empty colors are excluded
	blank := models.Vehicle{Model: "Roadster", Price: 200000, ExteriorColor: "", Status: models.VehicleStatusReserved}
	suite.Require().NoError(suite.db.Create(&blank).Error)

	options, err := suite.service.GetFilterOptions()
	suite.NoError(err)

	suite.Equal([]string{"Model 3", "Model S", "Model X", "Model Y", "Roadster"}, options.Models)
	suite.Len(options.Colors, 4)
	suite.NotContains(options.Colors, "")
	suite.Contains(options.Statuses, "Available")
	suite.Contains(options.Statuses, "Sold Out")
}

func (suite *VehicleServiceTestSuite) TestFilterOptionsOnEmptyTable() {
	options, err := suite.service.GetFilterOptions()
	suite.NoError(err)
	suite.NotNil(options.Models)
	suite.Len(options.Models, 0)
	suite.Len(options.Statuses, 0)
}

func (suite *VehicleServiceTestSuite) TestStats() {
	suite.Require().NoError(suite.db.Create(&[]models.Vehicle{
		{Model: "Model S", Price: 25000, Status: models.VehicleStatusAvailable},
		{Model: "Model 3", Price: 30000, Status: models.VehicleStatusAvailable},
		{Model: "Model X", Price: 15000, Status: models.VehicleStatusSoldOut},
		{Model: "Model Y", Price: 10000, Status: models.VehicleStatusReserved},
	}).Error)

	stats, err := suite.service.GetStats()
	suite.NoError(err)
	suite.Equal(int64(4), stats.TotalVehicles)
	suite.Equal(int64(2), stats.AvailableVehicles)
	suite.Equal(int64(1), stats.SoldVehicles)
	suite.Equal(80000.0, stats.TotalValue)
}

func (suite *VehicleServiceTestSuite) TestMinPriceFilterAndStatsAgree() {
	suite.Require().NoError(suite.db.Create(&[]models.Vehicle{
		{Model: "A", Price: 30000, Status: models.VehicleStatusAvailable},
		{Model: "B", Price: 50000, Status: models.VehicleStatusSoldOut},
	}).Error)

	result, err := suite.service.SearchVehicles(VehicleSearchParams{MinPrice: floatPtr(40000)})
	suite.NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("B", result[0].Model)

	stats, err := suite.service.GetStats()
	suite.NoError(err)
	suite.Equal(int64(2), stats.TotalVehicles)
	suite.Equal(int64(1), stats.AvailableVehicles)
	suite.Equal(int64(1), stats.SoldVehicles)
	suite.Equal(80000.0, stats.TotalValue)
}

func (suite *VehicleServiceTestSuite) TestStatsOnEmptyTable() {
	stats, err := suite.service.GetStats()
	suite.NoError(err)
	suite.Zero(stats.TotalVehicles)
	suite.Zero(stats.AvailableVehicles)
	suite.Zero(stats.SoldVehicles)
	suite.Zero(stats.TotalValue)
}

func (suite *VehicleServiceTestSuite) TestBulkCreateInsertsVehiclesAndImages() {
	count, err := suite.service.BulkCreateVehicles([]BulkVehicleItem{
		{
			VehicleRequest: VehicleRequest{Model: "Model 3", Price: 42990, Status: "new"},
			Images: []BulkVehicleImage{
				{URL: "https://cdn.example.com/one.jpg"},
				{URL: "https://cdn.example.com/two.jpg"},
			},
		},
		{
			VehicleRequest: VehicleRequest{Model: "Model Y", Price: 49990},
		},
	})
	suite.NoError(err)
	suite.Equal(2, count)

	var vehicleCount int64
	suite.db.Model(&models.Vehicle{}).Count(&vehicleCount)
	suite.Equal(int64(2), vehicleCount)

	// First image becomes primary when none is marked
	var images []models.VehicleImage
	suite.Require().NoError(suite.db.Order("display_order ASC").Find(&images).Error)
	suite.Require().Len(images, 2)
	suite.True(images[0].IsPrimary)
	suite.False(images[1].IsPrimary)
	suite.Equal(0, images[0].DisplayOrder)
	suite.Equal(1, images[1].DisplayOrder)
}

func (suite *VehicleServiceTestSuite) TestBulkCreateRespectsExplicitPrimary() {
	_, err := suite.service.BulkCreateVehicles([]BulkVehicleItem{
		{
			VehicleRequest: VehicleRequest{Model: "Model S", Price: 89990},
			Images: []BulkVehicleImage{
				{URL: "https://cdn.example.com/side.jpg"},
				{URL: "https://cdn.example.com/front.jpg", IsPrimary: true},
			},
		},
	})
	suite.NoError(err)

	var images []models.VehicleImage
	suite.Require().NoError(suite.db.Order("display_order ASC").Find(&images).Error)
	suite.Require().Len(images, 2)
	suite.False(images[0].IsPrimary)
	suite.True(images[1].IsPrimary)
}

func (suite *VehicleServiceTestSuite) TestBulkCreateRollsBackTheWholeBatch() {
	_, err := suite.service.BulkCreateVehicles([]BulkVehicleItem{
		{VehicleRequest: VehicleRequest{Model: "Model 3", Price: 42990}},
		{VehicleRequest: VehicleRequest{Model: "Broken", Price: -1}},
		{VehicleRequest: VehicleRequest{Model: "Model Y", Price: 49990}},
	})
	suite.Error(err)

	var vehicleCount int64
	suite.db.Model(&models.Vehicle{}).Count(&vehicleCount)
	suite.Zero(vehicleCount, "a mid-batch failure must not leave earlier rows behind")
}

func (suite *VehicleServiceTestSuite) TestBulkCreateRejectsEmptyBatch() {
	_, err := suite.service.BulkCreateVehicles(nil)
	suite.Error(err)
}

func (suite *VehicleServiceTestSuite) TestAddVehicleImagesRequiresVehicle() {
	err := suite.service.AddVehicleImages(9999, []VehicleImageInput{
		{URL: "https://cdn.example.com/a.jpg"},
	})
	suite.Error(err)
	suite.Contains(err.Error(), "vehicle not found")
}

func (suite *VehicleServiceTestSuite) TestAddAndDeleteVehicleImages() {
	vehicles := suite.seedVehicles()
	id := vehicles[0].ID

	err := suite.service.AddVehicleImages(id, []VehicleImageInput{
		{URL: "https://cdn.example.com/a.jpg", IsPrimary: true, DisplayOrder: 0},
		{URL: "https://cdn.example.com/b.jpg", DisplayOrder: 1},
	})
	suite.NoError(err)

	images, err := suite.service.GetVehicleImages(id)
	suite.NoError(err)
	suite.Require().Len(images, 2)
	suite.True(images[0].IsPrimary)

	suite.NoError(suite.service.DeleteVehicleImage(images[1].ID))

	images, err = suite.service.GetVehicleImages(id)
	suite.NoError(err)
	suite.Len(images, 1)

	suite.Error(suite.service.DeleteVehicleImage(9999))
}

func TestVehicleServiceSuite(t *testing.T) {
	suite.Run(t, new(VehicleServiceTestSuite))
}
