package street

import (
	"time"

	"gorm.io/gorm"
)

// Default map center: Riyadh.
const (
	DefaultLatitude  = 24.7136
	DefaultLongitude = 46.6753
)

// Street is a Riyadh street record the office surveys against.
type Street struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Code              string         `gorm:"size:20;uniqueIndex" json:"code"`
	NameAr            string         `gorm:"size:255;not null" json:"nameAr"`
	NameEn            string         `gorm:"size:255" json:"nameEn"`
	Sector            string         `gorm:"size:100;index" json:"sector"`
	District          string         `gorm:"size:100;index" json:"district"`
	Type              string         `gorm:"size:50;index" json:"type"`
	Status            string         `gorm:"size:50;not null;default:'active';index" json:"status"`
	WidthMeters       float64        `json:"widthMeters"`
	Latitude          float64        `gorm:"not null;default:24.7136" json:"latitude"`
	Longitude         float64        `gorm:"not null;default:46.6753" json:"longitude"`
	RegulationDetails map[string]any `gorm:"type:jsonb;serializer:json" json:"regulationDetails"`
	Notes             string         `gorm:"type:text" json:"notes"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Street{})
}
