// internal/models/common.go
package models

import (
	"time"
)

// Base model with common fields
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Enums
type InventoryType string

const (
	InventoryTypeCash  InventoryType = "cash"
	InventoryTypeLease InventoryType = "lease"
)

type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
)

type TestDriveStatus string

const (
	TestDriveStatusPending   TestDriveStatus = "pending"
	TestDriveStatusConfirmed TestDriveStatus = "confirmed"
	TestDriveStatusCompleted TestDriveStatus = "completed"
	TestDriveStatusCancelled TestDriveStatus = "cancelled"
)

func ValidContactStatus(s string) bool {
	switch ContactStatus(s) {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied:
		return true
	}
	return false
}

func ValidTestDriveStatus(s string) bool {
	switch TestDriveStatus(s) {
	case TestDriveStatusPending, TestDriveStatusConfirmed, TestDriveStatusCompleted, TestDriveStatusCancelled:
		return true
	}
	return false
}
