package domain

// AppData is the entire persisted snapshot. It is loaded whole, mutated via
// copy-on-write (read-modify-persist as one atomic write), and never exposed
// partially updated to readers.
type AppData struct {
	Categories []Category `json:"categories"`
	Tasks      []Task     `json:"tasks"`
	Sessions   []Session  `json:"sessions"`
}

// SeedData returns the built-in default snapshot used when no prior
// snapshot exists: two categories, two tasks, no sessions.
func SeedData() *AppData {
	return &AppData{
		Categories: []Category{
			{ID: "cat_1", Name: "General", Color: "#3b82f6"},
			{ID: "cat_2", Name: "Priority", Color: "#ef4444"},
		},
		Tasks: []Task{
			{ID: "task_1", CategoryID: "cat_1", Name: "Study"},
			{ID: "task_2", CategoryID: "cat_2", Name: "Productivity"},
		},
		Sessions: []Session{},
	}
}

// FindTask returns the task with the given ID, or nil.
func (d *AppData) FindTask(id string) *Task {
	for i := range d.Tasks {
		if d.Tasks[i].ID == id {
			return &d.Tasks[i]
		}
	}
	return nil
}

// FindCategory returns the category with the given ID, or nil.
func (d *AppData) FindCategory(id string) *Category {
	for i := range d.Categories {
		if d.Categories[i].ID == id {
			return &d.Categories[i]
		}
	}
	return nil
}
