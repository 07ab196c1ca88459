package models

type NotificationVariant string

const (
	VariantDefault     NotificationVariant = "default"
	VariantDestructive NotificationVariant = "destructive"
)

// Notification is the toast payload surfaced to the UI. Fire-and-forget:
// nothing in the ledgers reads it back.
type Notification struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Variant     NotificationVariant `json:"variant"`
}

func SuccessNotification(description string) Notification {
	return Notification{Title: "Success", Description: description, Variant: VariantDefault}
}

func ErrorNotification(description string) Notification {
	return Notification{Title: "Error", Description: description, Variant: VariantDestructive}
}
