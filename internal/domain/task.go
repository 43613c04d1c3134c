package domain

// Task represents a trackable activity.
// CategoryID is a weak reference: the category may have been removed,
// so every consumer must handle the not-found case.
type Task struct {
	ID         string `json:"id"`
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
}
