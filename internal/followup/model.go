package followup

import (
	"time"

	"gorm.io/gorm"
)

// Agent is an external follow-up representative (معقب) the office hires
// to chase paperwork inside government entities.
type Agent struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Name               string         `gorm:"size:255;not null" json:"name"`
	NationalID         string         `gorm:"size:20;uniqueIndex" json:"nationalId"`
	CommercialRegister string         `gorm:"size:50;uniqueIndex" json:"commercialRegister"`
	Phone              string         `gorm:"size:20" json:"phone"`
	Email              string         `gorm:"size:255" json:"email"`
	Specialization     []string       `gorm:"type:jsonb;serializer:json" json:"specialization"`
	GovernmentEntities []string       `gorm:"type:jsonb;serializer:json" json:"governmentEntities"`
	Status             string         `gorm:"size:50;not null;default:'active'" json:"status"`
	Notes              string         `gorm:"type:text" json:"notes"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Agent{})
}

// Stats summarizes an agent's workload, derived from the tasks table.
type Stats struct {
	AgentID        uint  `json:"agentId"`
	TotalTasks     int64 `json:"totalTasks"`
	CompletedTasks int64 `json:"completedTasks"`
	ActiveTasks    int64 `json:"activeTasks"`
}
