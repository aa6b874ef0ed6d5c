package dialogue_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/bot/dialogue"
	"storefront/internal/bot/session"
	"storefront/internal/domain/apperror"
	"storefront/internal/domain/dto"
	"storefront/internal/domain/model"
)

const chatID = int64(4242)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) Products(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]model.Product)

	return products, args.Error(1)
}

func (m *MockAPI) CreateOrder(ctx context.Context, in dto.OrderInput) (*model.Order, error) {
	args := m.Called(ctx, in)
	order, _ := args.Get(0).(*model.Order)

	return order, args.Error(1)
}

var catalog = []model.Product{
	{ID: "p-lamp", Name: "Lamp", Price: 12},
	{ID: "p-desk", Name: "Desk", Price: 99.5},
	{ID: "p-chair", Name: "Chair", Price: 45},
}

func setup() (*dialogue.Dialogue, *MockAPI, *session.Memory) {
	api := &MockAPI{}
	store := session.NewMemory()

	return dialogue.New(api, api, store), api, store
}

func send(d *dialogue.Dialogue, text string) dialogue.Reply {
	return d.Handle(context.Background(), dialogue.Input{ChatID: chatID, Text: text})
}

func stateOf(t *testing.T, store *session.Memory) dialogue.State {
	t.Helper()

	state, err := store.Load(context.Background(), chatID)
	require.NoError(t, err)

	return state
}

func TestFullOrderFlow(t *testing.T) {
	t.Parallel()

	d, api, store := setup()
	api.On("Products", mock.Anything).Return(catalog, nil).Once()
	api.On("CreateOrder", mock.Anything, dto.OrderInput{
		UserID: "4242",
		Items:  []dto.OrderItemInput{{ProductID: "p-desk", Quantity: 3}},
	}).Return(&model.Order{ID: "o-1"}, nil).Once()

	reply := send(d, "View Products")
	assert.Contains(t, reply.Text, "1. Lamp - 12.00")
	assert.Contains(t, reply.Text, "2. Desk - 99.50")
	require.Len(t, reply.Buttons, 3)
	assert.Equal(t, "product:2", reply.Buttons[1].Data)
	assert.Equal(t, dialogue.StepAwaitingProductSelection, stateOf(t, store).Step)

	reply = send(d, "2")
	assert.Contains(t, reply.Text, "Desk")
	state := stateOf(t, store)
	assert.Equal(t, dialogue.StepAwaitingQuantity, state.Step)
	require.NotNil(t, state.Product)
	assert.Equal(t, "p-desk", state.Product.ID)

	reply = send(d, "3")
	assert.Contains(t, reply.Text, "o-1")
	assert.True(t, stateOf(t, store).IsIdle())

	api.AssertExpectations(t)
	api.AssertNumberOfCalls(t, "CreateOrder", 1)
}

func TestCallbacksDriveTheFlow(t *testing.T) {
	t.Parallel()

	d, api, store := setup()
	api.On("Products", mock.Anything).Return(catalog, nil)

	reply := d.Handle(context.Background(), dialogue.Input{ChatID: chatID, Callback: dialogue.ViewProductsCallback})
	require.Len(t, reply.Buttons, 3)

	d.Handle(context.Background(), dialogue.Input{ChatID: chatID, Callback: reply.Buttons[0].Data})

	state := stateOf(t, store)
	assert.Equal(t, dialogue.StepAwaitingQuantity, state.Step)
	assert.Equal(t, "p-lamp", state.Product.ID)
}

func TestInvalidSelectionKeepsState(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"abc", "0", "4", "-1", "1.5", ""} {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			d, api, store := setup()
			api.On("Products", mock.Anything).Return(catalog, nil)

			send(d, dialogue.ViewProductsCommand)
			before := stateOf(t, store)

			reply := send(d, input)
			assert.Contains(t, reply.Text, "between 1 and 3")
			assert.Equal(t, before, stateOf(t, store))
			api.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
		})
	}
}

func TestInvalidQuantityKeepsState(t *testing.T) {
	t.Parallel()

	d, api, store := setup()
	api.On("Products", mock.Anything).Return(catalog, nil)

	send(d, "view products")
	send(d, "1")

	for _, input := range []string{"none", "0", "-2", "2.5"} {
		reply := send(d, input)
		assert.Contains(t, reply.Text, "positive whole number")
		assert.Equal(t, dialogue.StepAwaitingQuantity, stateOf(t, store).Step)
	}

	api.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestFailedOrderStillClearsState(t *testing.T) {
	t.Parallel()

	d, api, store := setup()
	api.On("Products", mock.Anything).Return(catalog, nil)
	api.On("CreateOrder", mock.Anything, mock.Anything).
		Return(nil, apperror.Upstream("api request failed", errors.New("status 500")))

	send(d, "view products")
	send(d, "1")
	reply := send(d, "5")

	assert.Equal(t, "Sorry, something went wrong. Please try again later.", reply.Text)
	assert.True(t, stateOf(t, store).IsIdle())
}

func TestIdleHelpAndCancel(t *testing.T) {
	t.Parallel()

	d, api, store := setup()

	for _, input := range []string{"hello", dialogue.StartCommand, dialogue.HelpCommand, "7"} {
		reply := send(d, input)
		assert.Contains(t, reply.Text, "view products")
		assert.True(t, stateOf(t, store).IsIdle())
	}

	api.On("Products", mock.Anything).Return(catalog, nil)
	send(d, "view products")
	require.False(t, stateOf(t, store).IsIdle())

	reply := send(d, "/cancel")
	assert.Equal(t, "Your order was cancelled.", reply.Text)
	assert.True(t, stateOf(t, store).IsIdle())
}

func TestCatalogFailureLeavesIdle(t *testing.T) {
	t.Parallel()

	d, api, store := setup()
	api.On("Products", mock.Anything).Return(nil, apperror.Upstream("api unavailable", errors.New("dial")))

	reply := send(d, "view products")
	assert.Contains(t, reply.Text, "something went wrong")
	assert.True(t, stateOf(t, store).IsIdle())
}

func TestEmptyCatalog(t *testing.T) {
	t.Parallel()

	d, api, store := setup()
	api.On("Products", mock.Anything).Return([]model.Product{}, nil)

	reply := send(d, "view products")
	assert.Contains(t, reply.Text, "No products")
	assert.True(t, stateOf(t, store).IsIdle())
}

func TestChatsAreIndependent(t *testing.T) {
	t.Parallel()

	d, api, store := setup()
	api.On("Products", mock.Anything).Return(catalog, nil)

	send(d, "view products")
	d.Handle(context.Background(), dialogue.Input{ChatID: 1, Text: "2"})

	other, err := store.Load(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, other.IsIdle())
	assert.Equal(t, dialogue.StepAwaitingProductSelection, stateOf(t, store).Step)
}
