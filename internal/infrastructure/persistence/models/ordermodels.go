package models

import "time"

type OrderModel struct {
	ID                uint   `gorm:"primaryKey"`
	OrderNo           string `gorm:"uniqueIndex;size:64;not null"`
	CustomerName      string `gorm:"size:255"`
	ContactEmail      string `gorm:"size:255"`
	ContactMobile     string `gorm:"size:32"`
	GrandTotal        int64  `gorm:"not null"`
	Currency          string `gorm:"size:10;not null;default:'INR'"`
	Status            string `gorm:"size:20;not null;index"`
	BillingAddressID  *uint
	ShippingAddressID *uint
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (OrderModel) TableName() string {
	return "sales_orders"
}

type AddressModel struct {
	ID        uint   `gorm:"primaryKey"`
	Line1     string `gorm:"size:255"`
	City      string `gorm:"size:128"`
	State     string `gorm:"size:128"`
	Pincode   string `gorm:"size:20"`
	Country   string `gorm:"size:64"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AddressModel) TableName() string {
	return "addresses"
}
