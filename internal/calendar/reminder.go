package calendar

// Reminder is a user note attached to a specific calendar day.
// The JSON field names are the persisted wire format.
type Reminder struct {
	ID          string `json:"id"`
	Date        string `json:"date"` // YYYY-MM-DD
	Text        string `json:"text"`
	IsCompleted bool   `json:"isCompleted"`
}
