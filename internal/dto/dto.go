package dto

import "time"

type CheckoutRequest struct {
	UserID        string `json:"user_id" validate:"required"`
	AddressID     int64  `json:"address_id" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required"`
}

type CheckoutResponse struct {
	OrderID            int64   `json:"order_id"`
	OrderNumber        string  `json:"order_number"`
	PaymentStatus      string  `json:"payment_status"`
	PaymentRedirectURL *string `json:"payment_redirect_url"`
}

type AdminStatsResponse struct {
	TotalOrders   int64 `json:"total_orders"`
	TotalUsers    int64 `json:"total_users"`
	TotalProducts int64 `json:"total_products"`
}

// PaymentWebhookEvent is the accepted webhook shape. Anything that does not
// carry an event id and a known event type is rejected at the boundary.
type PaymentWebhookEvent struct {
	EventID   string `json:"event_id"`
	EventType string `json:"event_type"`
	OrderID   *int64 `json:"order_id,omitempty"`
}

type ProductView struct {
	ID          int64   `json:"id"`
	ExternalID  *string `json:"external_id"`
	MallCode    *string `json:"mall_code"`
	NameKo      string  `json:"name_ko"`
	Brand       *string `json:"brand"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"image_url"`
	PriceKRW    int64   `json:"price_krw"`
	StockStatus *string `json:"stock_status"`
}

type OrderSummary struct {
	OrderID     int64     `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	TotalPayKRW int64     `json:"total_pay_krw"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderItemView struct {
	ProductID    int64   `json:"product_id"`
	MallCode     *string `json:"mall_code"`
	ExternalID   *string `json:"external_id"`
	NameSnapshot string  `json:"name_snapshot"`
	Quantity     int64   `json:"quantity"`
	UnitPriceKRW int64   `json:"unit_price_krw"`
	SubtotalKRW  int64   `json:"subtotal_krw"`
}

type OrderDetailResponse struct {
	OrderID          int64           `json:"order_id"`
	OrderNumber      string          `json:"order_number"`
	Status           string          `json:"status"`
	PaymentStatus    *string         `json:"payment_status"`
	TotalProductKRW  int64           `json:"total_product_krw"`
	TotalShippingKRW int64           `json:"total_shipping_krw"`
	TotalDutyKRW     int64           `json:"total_duty_krw"`
	TotalFeeKRW      int64           `json:"total_fee_krw"`
	TotalPayKRW      int64           `json:"total_pay_krw"`
	CreatedAt        time.Time       `json:"created_at"`
	Items            []OrderItemView `json:"items"`
}
