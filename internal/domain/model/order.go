package model

import (
	"fmt"
	"time"

	"storefront/internal/domain/apperror"
)

type (
	OrderStatus   string
	PaymentStatus string
	PaymentMethod string
)

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"

	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"

	PaymentCash         PaymentMethod = "cash"
	PaymentCard         PaymentMethod = "card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentOnline       PaymentMethod = "online"
)

type OrderItem struct {
	ProductID string  `bson:"product_id" json:"productId"`
	Name      string  `bson:"name"       json:"name"`
	Quantity  int     `bson:"quantity"   json:"quantity"`
	Price     float64 `bson:"price"      json:"price"`
}

type Order struct {
	ID              string        `bson:"_id"              json:"id"`
	UserID          string        `bson:"user_id"          json:"userId"`
	Items           []OrderItem   `bson:"items"            json:"items"`
	TotalAmount     float64       `bson:"total_amount"     json:"totalAmount"`
	Status          OrderStatus   `bson:"status"           json:"status"`
	PaymentStatus   PaymentStatus `bson:"payment_status"   json:"paymentStatus"`
	PaymentMethod   PaymentMethod `bson:"payment_method"   json:"paymentMethod"`
	ShippingAddress string        `bson:"shipping_address" json:"shippingAddress"`
	Notes           string        `bson:"notes"            json:"notes"`
	CreatedAt       time.Time     `bson:"created_at"       json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updated_at"       json:"updatedAt"`
}

func (o *Order) ApplyDefaults() {
	if o.Status == "" {
		o.Status = OrderPending
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = PaymentPending
	}
	if o.PaymentMethod == "" {
		o.PaymentMethod = PaymentCash
	}
}

// Total sums price times quantity over the items.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}

	return total
}

func (o *Order) Validate() error {
	if err := required("userId", o.UserID); err != nil {
		return err
	}
	if err := ValidateItems(o.Items); err != nil {
		return err
	}
	if err := oneOf("status", o.Status,
		OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled); err != nil {
		return err
	}
	if err := oneOf("paymentStatus", o.PaymentStatus,
		PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded); err != nil {
		return err
	}

	return oneOf("paymentMethod", o.PaymentMethod,
		PaymentCash, PaymentCard, PaymentBankTransfer, PaymentOnline)
}

// ValidateItems checks an order has items, each with a product and a positive quantity.
func ValidateItems(items []OrderItem) error {
	if len(items) == 0 {
		return apperror.Validation("items", "order must contain at least one item")
	}

	for i, item := range items {
		if item.ProductID == "" {
			return apperror.Validation(fmt.Sprintf("items[%d].productId", i), "product reference is required")
		}
		if item.Quantity <= 0 {
			return apperror.Validationf(fmt.Sprintf("items[%d].quantity", i),
				"quantity must be a positive integer, got %d", item.Quantity)
		}
	}

	return nil
}
