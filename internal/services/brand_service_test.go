// internal/services/brand_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/aryals/dealer-backend/internal/models"
)

type BrandServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *BrandService
}

func (suite *BrandServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.service = NewBrandService(suite.db)
}

func (suite *BrandServiceTestSuite) seedBrands() []models.Brand {
	brands := []models.Brand{
		{Name: "Tesla", ImageURL: "https://cdn.example.com/tesla.png", DisplayOrder: 1, IsActive: true},
		{Name: "BYD", ImageURL: "https://cdn.example.com/byd.png", DisplayOrder: 2, IsActive: true},
		{Name: "Rivian", ImageURL: "https://cdn.example.com/rivian.png", DisplayOrder: 3, IsActive: false},
	}
	for i := range brands {
		suite.Require().NoError(suite.db.Create(&brands[i]).Error)
	}
	return brands
}

func (suite *BrandServiceTestSuite) TestGetBrandsOrdersByDisplayOrder() {
	suite.seedBrands()

	brands, err := suite.service.GetBrands(false)
	suite.NoError(err)
	suite.Require().Len(brands, 3)
	suite.Equal("Tesla", brands[0].Name)
	suite.Equal("Rivian", brands[2].Name)
}

func (suite *BrandServiceTestSuite) TestGetBrandsActiveOnly() {
	suite.seedBrands()

	brands, err := suite.service.GetBrands(true)
	suite.NoError(err)
	suite.Len(brands, 2)
	for _, b := range brands {
		suite.True(b.IsActive)
	}
}

func (suite *BrandServiceTestSuite) TestCreateBrandDefaultsToActive() {
	brand, err := suite.service.CreateBrand(&CreateBrandRequest{
		Name:     "Lucid",
		ImageURL: "https://cdn.example.com/lucid.png",
	})
	suite.NoError(err)
	suite.True(brand.IsActive)
	suite.NotZero(brand.ID)
}

func (suite *BrandServiceTestSuite) TestCreateBrandRequiresNameAndImage() {
	_, err := suite.service.CreateBrand(&CreateBrandRequest{Name: "Lucid"})
	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *BrandServiceTestSuite) TestUpdateBrandPatchesOnlyProvidedFields() {
	brands := suite.seedBrands()
	id := brands[0].ID

	err := suite.service.UpdateBrand(id, &UpdateBrandRequest{
		DisplayOrder: intPtr(9),
		IsActive:     boolPtr(false),
	})
	suite.NoError(err)

	var updated models.Brand
	suite.Require().NoError(suite.db.First(&updated, id).Error)
	suite.Equal(9, updated.DisplayOrder)
	suite.False(updated.IsActive)
	// Untouched fields survive the patch
	suite.Equal("Tesla", updated.Name)
	suite.Equal("https://cdn.example.com/tesla.png", updated.ImageURL)
}

func (suite *BrandServiceTestSuite) TestUpdateBrandRejectsEmptyPatch() {
	brands := suite.seedBrands()

	err := suite.service.UpdateBrand(brands[0].ID, &UpdateBrandRequest{})
	suite.Error(err)
	suite.Contains(err.Error(), "no fields to update")
}

func (suite *BrandServiceTestSuite) TestUpdateBrandNotFound() {
	err := suite.service.UpdateBrand(9999, &UpdateBrandRequest{Name: strPtr("Ghost")})
	suite.Error(err)
	suite.Contains(err.Error(), "not found")
}

func (suite *BrandServiceTestSuite) TestDeleteBrand() {
	brands := suite.seedBrands()

	suite.NoError(suite.service.DeleteBrand(brands[0].ID))

	_, err := suite.service.GetBrand(brands[0].ID)
	suite.Error(err)
	suite.Contains(err.Error(), "not found")

	suite.Error(suite.service.DeleteBrand(9999))
}

func TestBrandServiceSuite(t *testing.T) {
	suite.Run(t, new(BrandServiceTestSuite))
}
