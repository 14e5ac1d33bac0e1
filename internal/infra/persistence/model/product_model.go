package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. Amount is the unit price in
// minor units.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Amount      int64     `gorm:"not null"`
	Description string    `gorm:"type:text"`
	Available   bool      `gorm:"not null;default:true;index"`
	SellerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Category    string    `gorm:"type:varchar(100);index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
