package permission

import (
	"time"

	"gorm.io/gorm"
)

// Permission is a single grantable action on a screen.
type Permission struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Code       string         `gorm:"size:100;uniqueIndex;not null" json:"code"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	NameEn     string         `gorm:"size:255" json:"nameEn"`
	Level      int            `gorm:"not null;default:0" json:"level"`
	ScreenID   string         `gorm:"size:100" json:"screenId"`
	ScreenName string         `gorm:"size:255" json:"screenName"`
	ActionType string         `gorm:"size:50" json:"actionType"`
	ModifiedBy string         `gorm:"size:255" json:"modifiedBy"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Permission{})
}

// Effective merges permission sets from several sources (direct grants,
// role grants) into one list, keeping the first occurrence of each code.
func Effective(sets ...[]Permission) []Permission {
	seen := make(map[string]bool)
	var out []Permission
	for _, set := range sets {
		for _, p := range set {
			if seen[p.Code] {
				continue
			}
			seen[p.Code] = true
			out = append(out, p)
		}
	}
	return out
}
