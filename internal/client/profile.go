package client

import (
	"encoding/json"
	"strings"
)

// Name absorbs the three historical shapes of the client name blob: a plain
// string, a unified {ar, en} pair, or split name parts.
type Name struct {
	AR              string `json:"ar,omitempty"`
	EN              string `json:"en,omitempty"`
	FirstName       string `json:"firstName,omitempty"`
	FatherName      string `json:"fatherName,omitempty"`
	GrandFatherName string `json:"grandFatherName,omitempty"`
	FamilyName      string `json:"familyName,omitempty"`
}

// UnmarshalJSON accepts a bare string as well as the object shapes.
func (n *Name) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*n = Name{AR: plain, EN: plain}
		return nil
	}
	type alias Name
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*n = Name(obj)
	return nil
}

// Full resolves a display name: the unified Arabic name wins, then the
// joined name parts, then the English name.
func (n Name) Full() string {
	if n.AR != "" {
		return n.AR
	}
	parts := make([]string, 0, 4)
	for _, p := range []string{n.FirstName, n.FatherName, n.GrandFatherName, n.FamilyName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if full := strings.TrimSpace(strings.Join(parts, " ")); full != "" {
		return full
	}
	return n.EN
}

// IsZero reports an entirely empty name.
func (n Name) IsZero() bool { return n == (Name{}) }

// Weights of the grading criteria.
const (
	totalFeesWeight        = 0.3
	projectTypesWeight     = 0.2
	transactionTypesWeight = 0.15
	completionRateWeight   = 0.2
	secretRatingWeight     = 0.15
)

// Grade thresholds.
const (
	gradeAMin = 80
	gradeBMin = 60
)

// Grades, best to worst.
const (
	GradeA = "أ"
	GradeB = "ب"
	GradeC = "ج"
)

// trackedFields is the number of profile fields the completion percentage
// counts.
const trackedFields = 11

// CompletionPercentage measures how much of the client profile is filled in.
func CompletionPercentage(c *Client) float64 {
	completed := 0
	if c.Name.FirstName != "" && c.Name.FamilyName != "" {
		completed++
	}
	if c.Type != "" {
		completed++
	}
	if c.Nationality != "" {
		completed++
	}
	if c.Category != "" {
		completed++
	}
	if c.Rating != "" {
		completed++
	}
	if has(c.Contact, "mobile") {
		completed++
	}
	if has(c.Contact, "email") {
		completed++
	}
	if has(c.Address, "city") && has(c.Address, "district") {
		completed++
	}
	if has(c.Identification, "idNumber") && has(c.Identification, "idType") {
		completed++
	}
	if c.Occupation != "" {
		completed++
	}
	if c.Notes != "" {
		completed++
	}
	return float64(completed) / trackedFields * 100
}

func has(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, isStr := v.(string)
	return !isStr || s != ""
}

// ComputeGrade scores the client A/B/C from the weighted criteria: fee
// volume, variety of project and transaction types, transaction completion
// rate and the office's internal rating.
func ComputeGrade(c *Client) (grade string, score int) {
	var total float64

	feesScore := capped(c.TotalFees / 500000 * 100)
	total += feesScore * totalFeesWeight

	projectScore := capped(float64(uniqueCount(c.ProjectTypes)) / 5 * 100)
	total += projectScore * projectTypesWeight

	typeScore := capped(float64(uniqueCount(c.TransactionTypes)) / 8 * 100)
	total += typeScore * transactionTypesWeight

	var completionRate float64
	if c.TotalTransactions > 0 {
		completionRate = float64(c.CompletedTransactions) / float64(c.TotalTransactions) * 100
	}
	total += completionRate * completionRateWeight

	total += c.SecretRating / 100 * secretRatingWeight

	score = int(capped(total) + 0.5)
	switch {
	case score >= gradeAMin:
		grade = GradeA
	case score >= gradeBMin:
		grade = GradeB
	default:
		grade = GradeC
	}
	return grade, score
}

func capped(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}

func uniqueCount(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}
