package dialogue

import (
	"context"

	"storefront/internal/domain/model"
)

type Step string

const (
	StepIdle                     Step = "idle"
	StepAwaitingProductSelection Step = "awaiting_product_selection"
	StepAwaitingQuantity         Step = "awaiting_quantity"
)

// Item is the part of a product the dialogue keeps between messages.
type Item struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func itemOf(p model.Product) Item {
	return Item{ID: p.ID, Name: p.Name, Price: p.Price}
}

// State is the step one chat has reached. Catalog is set while awaiting a
// product selection, Product while awaiting a quantity.
type State struct {
	Step    Step   `json:"step"`
	Catalog []Item `json:"catalog,omitempty"`
	Product *Item  `json:"product,omitempty"`
}

func Idle() State {
	return State{Step: StepIdle}
}

func AwaitingProductSelection(catalog []Item) State {
	return State{Step: StepAwaitingProductSelection, Catalog: catalog}
}

func AwaitingQuantity(product Item) State {
	return State{Step: StepAwaitingQuantity, Product: &product}
}

func (s State) IsIdle() bool {
	return s.Step == "" || s.Step == StepIdle
}

// Store keeps conversation state per chat. Load returns Idle for chats it
// does not know.
type Store interface {
	Load(ctx context.Context, chatID int64) (State, error)
	Save(ctx context.Context, chatID int64, state State) error
	Clear(ctx context.Context, chatID int64) error
}
