// internal/models/test_drive.go
package models

type TestDrive struct {
	BaseModel
	VehicleID     uint            `json:"vehicle_id" gorm:"not null;index"`
	FullName      string          `json:"full_name" gorm:"size:100;not null"`
	Email         string          `json:"email" gorm:"size:100;not null"`
	Phone         string          `json:"phone" gorm:"size:50;not null"`
	Address       string          `json:"address" gorm:"size:255;not null"`
	PreferredDate string          `json:"preferred_date" gorm:"size:20;not null"`
	PreferredTime string          `json:"preferred_time" gorm:"size:20;not null"`
	Message       string          `json:"message" gorm:"type:text"`
	Status        TestDriveStatus `json:"status" gorm:"size:20;default:'pending';index"`

	Vehicle *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
}
