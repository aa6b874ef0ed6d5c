package usecase

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/domain/apperror"
	"storefront/internal/domain/dto"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/model"
	"storefront/internal/domain/repository/database"
)

// Orders snapshots product name and price into each item and keeps the
// total consistent with them. Stock is not reserved.
type Orders struct {
	Resource[model.Order]
	products database.Retriever[model.Product]
	events   *Events
}

func NewOrders(repo database.Repository[model.Order], products database.Retriever[model.Product],
	events *Events,
) *Orders {
	return &Orders{
		Resource: NewResource("order", repo),
		products: products,
		events:   events,
	}
}

func (s *Orders) Create(ctx context.Context, actor dto.Actor, in dto.OrderInput) (*model.Order, error) {
	o := in.Order()
	if o.UserID == "" {
		o.UserID = actor.ID
	}
	o.ApplyDefaults()

	if err := model.ValidateItems(o.Items); err != nil {
		return nil, err
	}

	for i := range o.Items {
		p, err := s.products.GetByID(ctx, o.Items[i].ProductID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return nil, apperror.Validationf(fmt.Sprintf("items[%d].productId", i),
					"product %s does not exist", o.Items[i].ProductID)
			}

			return nil, repositoryError("product", "get", err)
		}

		o.Items[i].Name = p.Name
		o.Items[i].Price = p.Price
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	o.ID = s.newID()
	o.TotalAmount = o.Total()
	o.CreatedAt = now
	o.UpdatedAt = now

	if err := s.write(ctx, o); err != nil {
		return nil, err
	}

	s.events.Publish(ctx, entity.Event{
		Type:       entity.EventOrderCreated,
		ResourceID: o.ID,
		UserID:     o.UserID,
		Status:     string(o.Status),
	})

	return o, nil
}

func (s *Orders) Update(ctx context.Context, _ dto.Actor, id string, patch dto.OrderPatch) (*model.Order, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := o.Status
	fields := patch.Apply(o)
	if err := o.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	if updated.Status != previous {
		s.events.Publish(ctx, entity.Event{
			Type:       entity.EventOrderStatusChanged,
			ResourceID: updated.ID,
			UserID:     updated.UserID,
			Status:     string(updated.Status),
		})
	}

	return updated, nil
}
