package usecases

const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

// Notifier receives product change events once they are committed.
type Notifier interface {
	Notify(eventType, id string)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string) {}
