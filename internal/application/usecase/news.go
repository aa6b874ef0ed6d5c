package usecase

import (
	"context"

	"storefront/internal/domain/dto"
	"storefront/internal/domain/model"
	"storefront/internal/domain/repository/database"
)

type News struct {
	Resource[model.News]
}

func NewNews(repo database.Repository[model.News]) *News {
	return &News{Resource: NewResource("news", repo)}
}

// Get counts the read. The increment is atomic in the store.
func (s *News) Get(ctx context.Context, id string) (*model.News, error) {
	n, err := s.repo.Increment(ctx, id, "views", 1)
	if err != nil {
		return nil, repositoryError(s.name, "get", err)
	}

	return n, nil
}

func (s *News) Create(ctx context.Context, actor dto.Actor, in dto.NewsInput) (*model.News, error) {
	n := in.News()
	n.ApplyDefaults()
	if err := n.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	n.ID = s.newID()
	n.CreatedBy = actor.ID
	n.CreatedAt = now
	n.UpdatedAt = now

	if err := s.write(ctx, n); err != nil {
		return nil, err
	}

	return n, nil
}

func (s *News) Update(ctx context.Context, _ dto.Actor, id string, patch dto.NewsPatch) (*model.News, error) {
	n, err := s.Resource.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := patch.Apply(n)
	if err := n.Validate(); err != nil {
		return nil, err
	}

	return s.update(ctx, id, fields)
}
