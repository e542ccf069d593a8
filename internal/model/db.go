package model

import "time"

type User struct {
	ID                    string  `gorm:"primaryKey;size:64;not null"`
	Email                 string  `gorm:"size:255;uniqueIndex;not null"`
	Name                  *string `gorm:"size:128"`
	Phone                 *string `gorm:"size:32"`
	PersonalCustomsNumber *string `gorm:"size:32"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type UserAddress struct {
	ID           int64   `gorm:"primaryKey"`
	UserID       string  `gorm:"size:64;index;not null"`
	Recipient    string  `gorm:"size:64;not null"`
	Phone        string  `gorm:"size:32;not null"`
	PostalCode   string  `gorm:"size:16;not null"`
	AddressLine1 string  `gorm:"size:255;not null"`
	AddressLine2 *string `gorm:"size:255"`
	IsDefault    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Product struct {
	ID            int64   `gorm:"primaryKey"`
	ExternalID    *string `gorm:"size:128;index"` // id at the source mall
	MallCode      *string `gorm:"size:32;index"`
	NameKo        string  `gorm:"size:255;not null"`
	NameOriginal  *string `gorm:"size:255"`
	Category      *string `gorm:"size:64;index"`
	Brand         *string `gorm:"size:128"`
	ImageURL      *string `gorm:"size:512"`
	Currency      *string `gorm:"size:8"`
	PriceOriginal *int64
	PriceKRW      int64   `gorm:"not null"`
	StockStatus   *string `gorm:"size:32"`
	// no default tag: gorm omits zero-valued defaulted fields on insert,
	// so `false` would be written as `true`
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartItem struct {
	ID        int64  `gorm:"primaryKey"`
	UserID    string `gorm:"size:64;index;not null"`
	ProductID int64  `gorm:"index;not null"`
	Quantity  int64  `gorm:"not null"`
	PriceKRW  int64  `gorm:"not null"` // unit price snapshot at add-to-cart time
	CreatedAt time.Time
	UpdatedAt time.Time

	// no FK constraint: a dangling product reference is a tolerated
	// degraded state, not an integrity violation
	Product *Product `gorm:"foreignKey:ProductID"`
}

type Order struct {
	ID               int64  `gorm:"primaryKey"`
	OrderNumber      string `gorm:"size:32;index"`
	UserID           string `gorm:"size:64;index;not null"`
	Status           string `gorm:"size:32;index;not null"`
	AddressID        *int64
	PaymentMethod    *string `gorm:"size:32"`
	PaymentStatus    *string `gorm:"size:32"`
	TotalProductKRW  int64   `gorm:"not null"`
	TotalShippingKRW int64   `gorm:"not null"`
	TotalDutyKRW     int64   `gorm:"not null"`
	TotalFeeKRW      int64   `gorm:"not null"`
	TotalPayKRW      int64   `gorm:"not null"`
	PaidAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OrderItem is a frozen snapshot of a cart line at purchase time. Product
// fields are denormalized on purpose so later catalog edits cannot touch it.
type OrderItem struct {
	ID           int64   `gorm:"primaryKey"`
	OrderID      int64   `gorm:"index;not null"`
	ProductID    int64   `gorm:"index;not null"`
	MallCode     *string `gorm:"size:32"`
	ExternalID   *string `gorm:"size:128"`
	NameSnapshot string  `gorm:"size:255;not null"`
	Quantity     int64   `gorm:"not null"`
	UnitPriceKRW int64   `gorm:"not null"`
	SubtotalKRW  int64   `gorm:"not null"`
	CreatedAt    time.Time
}

type WebhookEvent struct {
	ReceiptID  string `gorm:"primaryKey;size:36"`
	EventID    string `gorm:"size:128;uniqueIndex;not null"`
	EventType  string `gorm:"size:64;index;not null"`
	Payload    string `gorm:"type:text"` // raw body as received, for diagnostics
	ReceivedAt time.Time
}
