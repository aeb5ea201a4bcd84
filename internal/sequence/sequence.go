// Package sequence issues the human-readable business codes used across the
// system (TR-2025-000001, CLT-2025-001, ...). Each prefix owns a row in
// code_sequences that is bumped with a single upsert, so two concurrent
// requests can never be handed the same code.
package sequence

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Counter is the per-prefix sequence row.
type Counter struct {
	Prefix string `gorm:"primaryKey;size:32" json:"prefix"`
	Value  int64  `gorm:"not null;default:0" json:"value"`
}

// TableName keeps the table name stable across entities.
func (Counter) TableName() string { return "code_sequences" }

// Migrate creates the sequence table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Counter{})
}

// Suffix widths per entity type.
const (
	TransactionWidth     = 6
	ClientWidth          = 3
	TaskWidth            = 5
	StreetWidth          = 4
	DocumentWidth        = 3
	TransactionTypeWidth = 3
)

// Yearly prefixes restart their numbering each year because the year is part
// of the prefix and a fresh prefix starts at 1.

func TransactionPrefix(year int) string { return fmt.Sprintf("TR-%d-", year) }
func ClientPrefix(year int) string      { return fmt.Sprintf("CLT-%d-", year) }
func TaskPrefix(year int) string        { return fmt.Sprintf("TSK-%d-", year) }
func StreetPrefix(year int) string      { return fmt.Sprintf("STR-%d-", year) }

const (
	DocumentPrefix        = "DOC-"
	TransactionTypePrefix = "TT-"
)

// CurrentYear exists so tests can pin the clock.
var CurrentYear = func() int { return time.Now().Year() }

// Next reserves the next number for the prefix and formats the full code.
// The increment is one atomic statement; the row lock taken by the upsert
// serializes concurrent callers on the same prefix.
func Next(db *gorm.DB, prefix string, width int) (string, error) {
	var value int64
	err := db.Raw(
		`INSERT INTO code_sequences (prefix, value) VALUES (?, 1)
		 ON CONFLICT (prefix) DO UPDATE SET value = code_sequences.value + 1
		 RETURNING value`,
		prefix,
	).Scan(&value).Error
	if err != nil {
		return "", fmt.Errorf("next code for %q: %w", prefix, err)
	}
	return Format(prefix, value, width), nil
}

// Format joins prefix and zero-padded numeric suffix.
func Format(prefix string, value int64, width int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, value)
}

// SuffixOf parses the numeric suffix of an existing code. Codes whose suffix
// is not numeric count as 0, mirroring how legacy data treated unparseable
// codes when seeding the counters.
func SuffixOf(code string) int64 {
	idx := strings.LastIndex(code, "-")
	if idx < 0 || idx == len(code)-1 {
		return 0
	}
	n, err := strconv.ParseInt(code[idx+1:], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Seed raises a counter to at least floor. Used once per prefix when
// migrating data that already carries codes, so Next continues after the
// highest legacy suffix instead of reissuing it.
func Seed(db *gorm.DB, prefix string, floor int64) error {
	return db.Exec(
		`INSERT INTO code_sequences (prefix, value) VALUES (?, ?)
		 ON CONFLICT (prefix) DO UPDATE SET value = GREATEST(code_sequences.value, EXCLUDED.value)`,
		prefix, floor,
	).Error
}
