package usecase

import (
	"context"

	"storefront/internal/domain/dto"
	"storefront/internal/domain/model"
	"storefront/internal/domain/repository/database"
)

type Products struct {
	Resource[model.Product]
}

func NewProducts(repo database.Repository[model.Product]) *Products {
	return &Products{Resource: NewResource("product", repo)}
}

func (s *Products) Create(ctx context.Context, actor dto.Actor, in dto.ProductInput) (*model.Product, error) {
	p := in.Product()
	p.ApplyDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	p.ID = s.newID()
	p.CreatedBy = actor.ID
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.write(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Products) Update(ctx context.Context, _ dto.Actor, id string, patch dto.ProductPatch) (*model.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := patch.Apply(p)
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return s.update(ctx, id, fields)
}
