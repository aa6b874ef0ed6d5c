package broker

// Message is one delivered event. Ack confirms it; Nack leaves it for redelivery.
type Message interface {
	Body() string
	Ack() error
	Nack() error
}
