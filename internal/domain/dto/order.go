package dto

import "storefront/internal/domain/model"

type OrderItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type OrderInput struct {
	UserID          string              `json:"userId"`
	Items           []OrderItemInput    `json:"items"`
	Status          model.OrderStatus   `json:"status"`
	PaymentStatus   model.PaymentStatus `json:"paymentStatus"`
	PaymentMethod   model.PaymentMethod `json:"paymentMethod"`
	ShippingAddress string              `json:"shippingAddress"`
	Notes           string              `json:"notes"`
}

func (in OrderInput) Order() *model.Order {
	items := make([]model.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, model.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	return &model.Order{
		UserID:          in.UserID,
		Items:           items,
		Status:          in.Status,
		PaymentStatus:   in.PaymentStatus,
		PaymentMethod:   in.PaymentMethod,
		ShippingAddress: in.ShippingAddress,
		Notes:           in.Notes,
	}
}

type OrderPatch struct {
	Status          *model.OrderStatus   `json:"status"`
	PaymentStatus   *model.PaymentStatus `json:"paymentStatus"`
	PaymentMethod   *model.PaymentMethod `json:"paymentMethod"`
	ShippingAddress *string              `json:"shippingAddress"`
	Notes           *string              `json:"notes"`
}

func (in OrderPatch) Apply(o *model.Order) Fields {
	fields := Fields{}
	set(fields, "status", &o.Status, in.Status)
	set(fields, "payment_status", &o.PaymentStatus, in.PaymentStatus)
	set(fields, "payment_method", &o.PaymentMethod, in.PaymentMethod)
	set(fields, "shipping_address", &o.ShippingAddress, in.ShippingAddress)
	set(fields, "notes", &o.Notes, in.Notes)

	return fields
}
