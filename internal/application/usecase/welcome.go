package usecase

import (
	"context"

	"storefront/internal/domain/dto"
	"storefront/internal/domain/model"
	"storefront/internal/domain/repository/database"
)

type Welcome struct {
	Resource[model.Welcome]
}

func NewWelcome(repo database.Repository[model.Welcome]) *Welcome {
	return &Welcome{Resource: NewResource("welcome screen", repo)}
}

func (s *Welcome) Create(ctx context.Context, _ dto.Actor, in dto.WelcomeInput) (*model.Welcome, error) {
	w := in.Welcome()
	if err := w.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	w.ID = s.newID()
	w.CreatedAt = now
	w.UpdatedAt = now

	if err := s.write(ctx, w); err != nil {
		return nil, err
	}

	return w, nil
}

func (s *Welcome) Update(ctx context.Context, _ dto.Actor, id string, patch dto.WelcomePatch) (*model.Welcome, error) {
	w, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := patch.Apply(w)
	if err := w.Validate(); err != nil {
		return nil, err
	}

	return s.update(ctx, id, fields)
}
