package abstraction

// Resource is the full CRUD surface of one entity type.
type Resource[T, In, P any] interface {
	Creator[T, In]
	Getter[T]
	Lister[T]
	Updater[T, P]
	Deleter
}
