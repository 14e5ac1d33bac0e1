package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionModel mirrors the 'transactions' table. Ref is the unique
// correlation key shared with the payment gateway.
type TransactionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Ref       string    `gorm:"type:varchar(64);unique;not null"`
	Amount    int64     `gorm:"not null"`
	Status    string    `gorm:"type:varchar(20);not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}

// OrderTransactionModel mirrors the 'order_transactions' join table. Both
// sides are unique, making the relation strictly 1:1.
type OrderTransactionModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderTransactionModel) TableName() string {
	return "order_transactions"
}
