// internal/models/brand.go
package models

type Brand struct {
	BaseModel
	Name         string `json:"name" gorm:"size:100;uniqueIndex;not null"`
	ImageURL     string `json:"image_url" gorm:"size:500;not null"`
	DisplayOrder int    `json:"display_order" gorm:"default:0"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
}
