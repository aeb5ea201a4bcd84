package task

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusNew        = "New"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

// Task is a unit of office work, optionally tied to a transaction.
type Task struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Code          string         `gorm:"size:20;uniqueIndex" json:"code"`
	Title         string         `gorm:"size:255;not null" json:"title"`
	Description   string         `gorm:"type:text" json:"description"`
	Status        string         `gorm:"size:50;not null;default:'New'" json:"status"`
	Priority      string         `gorm:"size:50;not null;default:'متوسط'" json:"priority"`
	DueDate       *time.Time     `json:"dueDate,omitempty"`
	CompletedAt   *time.Time     `json:"completedAt,omitempty"`
	TransactionID *uint          `gorm:"index" json:"transactionId,omitempty"`
	AssigneeID    *uint          `gorm:"index" json:"assigneeId,omitempty"`
	AgentID       *uint          `gorm:"index" json:"agentId,omitempty"`
	CreatedByID   *uint          `json:"createdById,omitempty"`
	Notes         string         `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Task{})
}

// NormalizeStatus maps the status spellings clients have sent over the
// years onto the canonical set. Unknown values pass through unchanged.
func NormalizeStatus(s string) string {
	switch s {
	case "new", "جديدة":
		return StatusNew
	case "in-progress", "in_progress", "inprogress", "قيد التنفيذ":
		return StatusInProgress
	case "completed", "done", "مكتملة":
		return StatusCompleted
	case "cancelled", "canceled", "ملغاة":
		return StatusCancelled
	}
	return s
}
