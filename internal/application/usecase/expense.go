package usecase

import (
	"context"

	"storefront/internal/domain/dto"
	"storefront/internal/domain/model"
	"storefront/internal/domain/repository/database"
)

type Expenses struct {
	Resource[model.Expense]
}

func NewExpenses(repo database.Repository[model.Expense]) *Expenses {
	return &Expenses{Resource: NewResource("expense", repo)}
}

func (s *Expenses) Create(ctx context.Context, actor dto.Actor, in dto.ExpenseInput) (*model.Expense, error) {
	now := s.now()

	e := in.Expense()
	e.ApplyDefaults(now)
	if err := e.Validate(); err != nil {
		return nil, err
	}

	e.ID = s.newID()
	e.CreatedBy = actor.ID
	e.CreatedAt = now
	e.UpdatedAt = now

	if err := s.write(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Expenses) Update(ctx context.Context, _ dto.Actor, id string, patch dto.ExpensePatch) (*model.Expense, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := patch.Apply(e)
	if err := e.Validate(); err != nil {
		return nil, err
	}

	return s.update(ctx, id, fields)
}
