// internal/models/contact.go
package models

type ContactMessage struct {
	BaseModel
	Name    string        `json:"name" gorm:"size:100;not null"`
	Email   string        `json:"email" gorm:"size:100;not null"`
	Phone   string        `json:"phone" gorm:"size:50"`
	Message string        `json:"message" gorm:"type:text;not null"`
	Status  ContactStatus `json:"status" gorm:"size:20;default:'new';index"`
}
