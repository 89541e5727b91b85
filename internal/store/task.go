package store

import (
	"time"

	"github.com/google/uuid"
)

// Task statuses.
const (
	StatusOpen = "open"
	StatusDone = "done"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// Task is a single tracked task.
type Task struct {
	ID        string    `json:"id" yaml:"id" toml:"id"`
	Title     string    `json:"title" yaml:"title" toml:"title"`
	Status    string    `json:"status" yaml:"status" toml:"status"`
	Priority  string    `json:"priority,omitempty" yaml:"priority,omitempty" toml:"priority,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt" toml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt" toml:"updatedAt"`
}

// List is the durable task collection persisted as todo.json.
type List struct {
	Version int    `json:"version" yaml:"version" toml:"version"`
	Tasks   []Task `json:"tasks" yaml:"tasks" toml:"tasks"`
}

// NewList creates an empty task list at the current format version.
func NewList() *List {
	return &List{
		Version: 1,
		Tasks:   []Task{},
	}
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

// NewTask creates an open task with a fresh ID and timestamps.
func NewTask(title, priority string) Task {
	if priority == "" {
		priority = PriorityNormal
	}
	now := nowUTC()
	return Task{
		ID:        uuid.NewString(),
		Title:     title,
		Status:    StatusOpen,
		Priority:  priority,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ValidStatus reports whether s is a recognized task status.
func ValidStatus(s string) bool {
	return s == StatusOpen || s == StatusDone
}

// ValidPriority reports whether p is a recognized task priority.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityNormal || p == PriorityHigh
}

// Find returns a pointer to the task with the given ID, or nil.
func (l *List) Find(id string) *Task {
	for i := range l.Tasks {
		if l.Tasks[i].ID == id {
			return &l.Tasks[i]
		}
	}
	return nil
}

// Remove deletes the task with the given ID.
// Returns false if no such task exists.
func (l *List) Remove(id string) bool {
	for i := range l.Tasks {
		if l.Tasks[i].ID == id {
			l.Tasks = append(l.Tasks[:i], l.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

// ByStatus returns tasks filtered by status. An empty status returns all tasks.
func (l *List) ByStatus(status string) []Task {
	if status == "" {
		return l.Tasks
	}
	var result []Task
	for _, t := range l.Tasks {
		if t.Status == status {
			result = append(result, t)
		}
	}
	return result
}

// Stats returns counts of total, open, and done tasks.
func (l *List) Stats() (total, open, done int) {
	for _, t := range l.Tasks {
		total++
		switch t.Status {
		case StatusDone:
			done++
		default:
			open++
		}
	}
	return
}
