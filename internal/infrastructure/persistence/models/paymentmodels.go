package models

import "time"

type PaymentRequestModel struct {
	ID            uint   `gorm:"primaryKey"`
	OrderNo       string `gorm:"index;size:64;not null"`
	Amount        int64  `gorm:"not null"`
	Currency      string `gorm:"size:10;not null;default:'INR'"`
	AccessCode    string `gorm:"size:64;not null"`
	GatewayURL    string `gorm:"type:text;not null"`
	Status        string `gorm:"size:20;not null;index"`
	TrackingID    *string `gorm:"size:128;index"`
	FailureReason *string `gorm:"type:text"`
	PaidAt        *time.Time
	Version       int `gorm:"default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (PaymentRequestModel) TableName() string {
	return "payment_requests"
}

// PaymentOutcomeModel rows are created at most once per reference number; the
// unique index is the cross-process idempotency guard for gateway callbacks.
type PaymentOutcomeModel struct {
	ID          uint   `gorm:"primaryKey"`
	ReferenceNo string `gorm:"uniqueIndex;size:128;not null"`
	OrderNo     string `gorm:"index;size:64;not null"`
	Amount      int64  `gorm:"not null"`
	Currency    string `gorm:"size:10;not null;default:'INR'"`
	PostingDate time.Time
	CreatedAt   time.Time
}

func (PaymentOutcomeModel) TableName() string {
	return "payment_outcomes"
}
