// internal/models/banner.go
package models

import "time"

// BannerImage backs the rotating hero banners; route is the logical page
// key (home, about, finance, contact).
type BannerImage struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Route        string    `json:"route" gorm:"size:50;not null;index"`
	ImageURL     string    `json:"image_url" gorm:"size:500;not null"`
	DisplayOrder int       `json:"display_order" gorm:"default:0"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
}
