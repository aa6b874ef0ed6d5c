package usecase

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"storefront/internal/domain/apperror"
	"storefront/internal/domain/dto"
	"storefront/internal/domain/model"
	"storefront/internal/domain/repository/database"
)

type Users struct {
	Resource[model.User]
}

func NewUsers(repo database.Repository[model.User]) *Users {
	return &Users{Resource: NewResource("user", repo)}
}

func hashPassword(password string) (string, error) {
	if err := model.ValidatePassword(password); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperror.Storage("failed to hash password", err)
	}

	return string(hash), nil
}

func (s *Users) storeError(op string, err error) error {
	if errors.Is(err, database.ErrDuplicate) {
		return apperror.Validation("email", "email is already registered")
	}

	return repositoryError(s.name, op, err)
}

func (s *Users) Create(ctx context.Context, actor dto.Actor, in dto.UserInput) (*model.User, error) {
	u := in.User()
	u.ApplyDefaults()
	if err := u.Validate(); err != nil {
		return nil, err
	}

	// only admins hand out the admin role
	if u.Role == model.RoleAdmin && !actor.IsAdmin() {
		return nil, apperror.Forbidden("only admins can create admin users")
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	u.ID = s.newID()
	u.Password = hash
	u.CreatedAt = now
	u.UpdatedAt = now

	if err := s.repo.Write(ctx, u); err != nil {
		return nil, s.storeError("save", err)
	}

	return u, nil
}

func (s *Users) Update(ctx context.Context, actor dto.Actor, id string, patch dto.UserPatch) (*model.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Role != nil && *patch.Role != u.Role && !actor.IsAdmin() {
		return nil, apperror.Forbidden("only admins can change roles")
	}

	fields := patch.Apply(u)
	u.ApplyDefaults()
	if patch.Email != nil {
		fields["email"] = u.Email
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}

	if patch.Password != nil {
		hash, err := hashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hash
	}

	if len(fields) == 0 {
		return u, nil
	}
	fields["updated_at"] = s.now()

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, s.storeError("update", err)
	}

	return updated, nil
}
