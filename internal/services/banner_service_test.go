// internal/services/banner_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/aryals/dealer-backend/internal/models"
)

type BannerServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *BannerService
}

func (suite *BannerServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.service = NewBannerService(suite.db)
}

func (suite *BannerServiceTestSuite) seedBanners() []models.BannerImage {
	banners := []models.BannerImage{
		{Route: "home", ImageURL: "https://cdn.example.com/h2.jpg", DisplayOrder: 2, IsActive: true},
		{Route: "home", ImageURL: "https://cdn.example.com/h1.jpg", DisplayOrder: 1, IsActive: true},
		{Route: "home", ImageURL: "https://cdn.example.com/h3.jpg", DisplayOrder: 3, IsActive: false},
		{Route: "about", ImageURL: "https://cdn.example.com/a1.jpg", DisplayOrder: 1, IsActive: true},
	}
	for i := range banners {
		suite.Require().NoError(suite.db.Create(&banners[i]).Error)
	}
	return banners
}

func (suite *BannerServiceTestSuite) TestGetBannersFiltersRouteAndInactive() {
	suite.seedBanners()

	banners, err := suite.service.GetBanners("home")
	suite.NoError(err)
	suite.Require().Len(banners, 2)
	suite.Equal("https://cdn.example.com/h1.jpg", banners[0].ImageURL)
	suite.Equal("https://cdn.example.com/h2.jpg", banners[1].ImageURL)
}

func (suite *BannerServiceTestSuite) TestGetBannersWithoutRouteReturnsAllActive() {
	suite.seedBanners()

	banners, err := suite.service.GetBanners("")
	suite.NoError(err)
	suite.Len(banners, 3)
}

func (suite *BannerServiceTestSuite) TestCreateBannerValidatesRoute() {
	_, err := suite.service.CreateBanner(&CreateBannerRequest{
		Route:    "checkout",
		ImageURL: "https://cdn.example.com/x.jpg",
	})
	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")

	banner, err := suite.service.CreateBanner(&CreateBannerRequest{
		Route:        "finance",
		ImageURL:     "https://cdn.example.com/f1.jpg",
		DisplayOrder: 1,
	})
	suite.NoError(err)
	suite.True(banner.IsActive)
}

func (suite *BannerServiceTestSuite) TestReorderBannersAppliesEachPair() {
	banners := suite.seedBanners()

	err := suite.service.ReorderBanners([]BannerOrderItem{
		{ID: banners[0].ID, DisplayOrder: 1},
		{ID: banners[1].ID, DisplayOrder: 2},
	})
	suite.NoError(err)

	ordered, err := suite.service.GetBanners("home")
	suite.NoError(err)
	suite.Require().Len(ordered, 2)
	suite.Equal(banners[0].ID, ordered[0].ID)
	suite.Equal(banners[1].ID, ordered[1].ID)
}

func (suite *BannerServiceTestSuite) TestReorderBannersIgnoresUnknownIDs() {
	banners := suite.seedBanners()

	// An id that matches nothing updates zero rows without failing the rest
	err := suite.service.ReorderBanners([]BannerOrderItem{
		{ID: 9999, DisplayOrder: 7},
		{ID: banners[3].ID, DisplayOrder: 5},
	})
	suite.NoError(err)

	var updated models.BannerImage
	suite.Require().NoError(suite.db.First(&updated, banners[3].ID).Error)
	suite.Equal(5, updated.DisplayOrder)
}

func (suite *BannerServiceTestSuite) TestReorderBannersRejectsEmptyList() {
	suite.Error(suite.service.ReorderBanners(nil))
}

func (suite *BannerServiceTestSuite) TestUpdateAndDeleteBanner() {
	banners := suite.seedBanners()

	err := suite.service.UpdateBanner(banners[0].ID, &UpdateBannerRequest{
		ImageURL:     "https://cdn.example.com/new.jpg",
		DisplayOrder: 4,
	})
	suite.NoError(err)

	var updated models.BannerImage
	suite.Require().NoError(suite.db.First(&updated, banners[0].ID).Error)
	suite.Equal("https://cdn.example.com/new.jpg", updated.ImageURL)
	suite.Equal(4, updated.DisplayOrder)

	suite.NoError(suite.service.DeleteBanner(banners[0].ID))
	suite.Error(suite.service.DeleteBanner(banners[0].ID))
	suite.Error(suite.service.UpdateBanner(9999, &UpdateBannerRequest{ImageURL: "https://x.jpg"}))
}

func TestBannerServiceSuite(t *testing.T) {
	suite.Run(t, new(BannerServiceTestSuite))
}
