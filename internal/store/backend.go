package store

// Collection names. These match the storage keys the widget has always
// used, so existing data files keep working.
const (
	CollectionReminders   = "calendarReminders"
	CollectionDistances   = "dailyTravelDistances"
	CollectionNotifiedIDs = "notifiedReminderIds"
)

// Backend is a key-value blob store keyed by collection name.
// Load returns (nil, nil) when the collection has never been saved.
type Backend interface {
	Load(name string) ([]byte, error)
	Save(name string, data []byte) error
	Close() error
}
