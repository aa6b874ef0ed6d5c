package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/apperror"
	"storefront/internal/domain/dto"
	"storefront/internal/domain/model"
	"storefront/internal/domain/repository/database"
)

func TestProductCreateDefaults(t *testing.T) {
	t.Parallel()

	repo := &MockRepository[model.Product]{}
	repo.On("Write", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)

	products := NewProducts(repo)
	p, err := products.Create(context.Background(), dto.Actor{ID: "u1"}, dto.ProductInput{Name: "X", Price: 10})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Uncategorized", p.Category)
	assert.Equal(t, 0, p.Stock)
	assert.Equal(t, model.ProductAvailable, p.Status)
	assert.Equal(t, "u1", p.CreatedBy)
	assert.False(t, p.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestProductCreateInvalidStatus(t *testing.T) {
	t.Parallel()

	repo := &MockRepository[model.Product]{}
	products := NewProducts(repo)

	_, err := products.Create(context.Background(), dto.Actor{}, dto.ProductInput{Name: "X", Status: "sold"})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.StatusCode(err))
	assert.Contains(t, err.Error(), "status")
	repo.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
}

func TestProductUpdateMerges(t *testing.T) {
	t.Parallel()

	existing := &model.Product{ID: "p1", Name: "Old", Price: 5, Category: "c", Status: model.ProductAvailable}
	repo := &MockRepository[model.Product]{}
	repo.On("GetByID", mock.Anything, "p1").Return(existing, nil)
	repo.On("Update", mock.Anything, "p1", mock.MatchedBy(func(f dto.Fields) bool {
		_, touchedName := f["name"]

		return f["price"] == 7.5 && !touchedName && f["updated_at"] != nil
	})).Return(&model.Product{ID: "p1", Name: "Old", Price: 7.5}, nil)

	price := 7.5
	got, err := NewProducts(repo).Update(context.Background(), dto.Actor{}, "p1", dto.ProductPatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Old", got.Name)
	repo.AssertExpectations(t)

	negative := -1.0
	_, err = NewProducts(repo).Update(context.Background(), dto.Actor{}, "p1", dto.ProductPatch{Price: &negative})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestResourceErrors(t *testing.T) {
	t.Parallel()

	repo := &MockRepository[model.Expense]{}
	repo.On("GetByID", mock.Anything, "missing").Return(nil, database.ErrNotFound)
	repo.On("Remove", mock.Anything, "missing").Return(database.ErrNotFound)
	repo.On("GetByID", mock.Anything, "broken").Return(nil, errors.New("socket closed"))

	expenses := NewExpenses(repo)
	ctx := context.Background()

	_, err := expenses.Get(ctx, "missing")
	assert.Equal(t, 404, apperror.StatusCode(err))
	assert.Equal(t, "expense not found", apperror.PublicMessage(err))

	err = expenses.Delete(ctx, dto.Actor{}, "missing")
	assert.Equal(t, 404, apperror.StatusCode(err))

	_, err = expenses.Get(ctx, "broken")
	assert.Equal(t, 500, apperror.StatusCode(err))
	assert.NotContains(t, apperror.PublicMessage(err), "socket")
}

func TestListPagination(t *testing.T) {
	t.Parallel()

	items := make([]model.Welcome, 10)
	repo := &MockRepository[model.Welcome]{}
	repo.On("List", mock.Anything, mock.MatchedBy(func(q dto.ListQuery) bool {
		return q.Page == 2 && q.Limit == 10
	})).Return(items, int64(25), nil)

	page, err := NewWelcome(repo).List(context.Background(), dto.ListQuery{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 10)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(25), page.TotalCount)
}

func TestNewsGetCountsViews(t *testing.T) {
	t.Parallel()

	repo := &MockRepository[model.News]{}
	repo.On("Increment", mock.Anything, "n1", "views", int64(1)).Return(&model.News{ID: "n1", Views: 8}, nil).Once()

	n, err := NewNews(repo).Get(context.Background(), "n1")
	require.NoError(t, err)
	assert.Equal(t, int64(8), n.Views)
	repo.AssertExpectations(t)
}

func TestExpenseCreate(t *testing.T) {
	t.Parallel()

	repo := &MockRepository[model.Expense]{}
	repo.On("Write", mock.Anything, mock.Anything).Return(nil)

	e, err := NewExpenses(repo).Create(context.Background(), dto.Actor{}, dto.ExpenseInput{Title: "rent", Amount: 100})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultExpenseCategory, e.Category)
	assert.False(t, e.Date.IsZero())

	_, err = NewExpenses(repo).Create(context.Background(), dto.Actor{}, dto.ExpenseInput{Title: "rent"})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestWelcomeDefaultsActive(t *testing.T) {
	t.Parallel()

	repo := &MockRepository[model.Welcome]{}
	repo.On("Write", mock.Anything, mock.Anything).Return(nil)

	w, err := NewWelcome(repo).Create(context.Background(), dto.Actor{}, dto.WelcomeInput{Title: "Hi"})
	require.NoError(t, err)
	assert.True(t, w.Active)
}
