package dialogue

import (
	"fmt"
	"strings"
)

const (
	ViewProductsText     = "view products"
	ViewProductsCommand  = "/products"
	ViewProductsCallback = "view_products"
	CancelCommand        = "/cancel"
	StartCommand         = "/start"
	HelpCommand          = "/help"

	productCallbackPrefix = "product:"
)

const (
	helpMessage = "Send \"view products\" or /products to browse the catalog. " +
		"Send /cancel at any time to start over."
	emptyCatalogMessage    = "No products are available right now. Please try again later."
	failureMessage         = "Sorry, something went wrong. Please try again later."
	cancelledMessage       = "Your order was cancelled."
	invalidQuantityMessage = "Please send the quantity as a positive whole number."
)

// Button is an inline keyboard button; Data comes back as the callback data.
type Button struct {
	Label string
	Data  string
}

// Reply is what the bot sends back for one input.
type Reply struct {
	Text    string
	Buttons []Button
}

func helpReply() Reply {
	return Reply{
		Text:    helpMessage,
		Buttons: []Button{{Label: "View products", Data: ViewProductsCallback}},
	}
}

func catalogReply(catalog []Item) Reply {
	var b strings.Builder
	b.WriteString("Available products:\n")

	buttons := make([]Button, 0, len(catalog))
	for i, item := range catalog {
		fmt.Fprintf(&b, "%d. %s - %.2f\n", i+1, item.Name, item.Price)
		buttons = append(buttons, Button{
			Label: fmt.Sprintf("%d. %s", i+1, item.Name),
			Data:  fmt.Sprintf("%s%d", productCallbackPrefix, i+1),
		})
	}
	b.WriteString("\nReply with the product number.")

	return Reply{Text: b.String(), Buttons: buttons}
}

func invalidSelectionReply(size int) Reply {
	return Reply{Text: fmt.Sprintf("Please choose a product number between 1 and %d.", size)}
}

func quantityReply(item Item) Reply {
	return Reply{Text: fmt.Sprintf("How many of %q would you like? Reply with a positive number.", item.Name)}
}

func confirmationReply(item Item, quantity int, orderID string) Reply {
	return Reply{Text: fmt.Sprintf("Order placed: %d x %s. Order id: %s.", quantity, item.Name, orderID)}
}
