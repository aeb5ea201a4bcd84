package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameUnmarshalPlainString(t *testing.T) {
	var n Name
	require.NoError(t, json.Unmarshal([]byte(`"محمد العتيبي"`), &n))
	assert.Equal(t, "محمد العتيبي", n.Full())
}

func TestNameUnmarshalUnifiedPair(t *testing.T) {
	var n Name
	require.NoError(t, json.Unmarshal([]byte(`{"ar":"شركة البناء","en":"Building Co"}`), &n))
	assert.Equal(t, "شركة البناء", n.Full())
}

func TestNameFullJoinsParts(t *testing.T) {
	n := Name{FirstName: "خالد", FatherName: "سعد", FamilyName: "القحطاني"}
	assert.Equal(t, "خالد سعد القحطاني", n.Full())
}

func TestNameFullFallsBackToEnglish(t *testing.T) {
	n := Name{EN: "John Smith"}
	assert.Equal(t, "John Smith", n.Full())
	assert.Equal(t, "", Name{}.Full())
}

func TestCompletionPercentageEmptyProfile(t *testing.T) {
	assert.Equal(t, 0.0, CompletionPercentage(&Client{}))
}

func TestCompletionPercentageCountsTrackedFields(t *testing.T) {
	c := &Client{
		Name:        Name{FirstName: "خالد", FamilyName: "القحطاني"},
		Type:        "فرد",
		Nationality: "سعودي",
		Contact:     map[string]any{"mobile": "0501234567"},
	}
	// 4 of 11 tracked fields present
	assert.InDelta(t, 4.0/11*100, CompletionPercentage(c), 0.001)
}

func TestCompletionPercentageIgnoresEmptyContactValues(t *testing.T) {
	c := &Client{Contact: map[string]any{"mobile": ""}}
	assert.Equal(t, 0.0, CompletionPercentage(c))
}

func TestComputeGradeDefaultsToC(t *testing.T) {
	grade, score := ComputeGrade(&Client{})
	assert.Equal(t, GradeC, grade)
	assert.Equal(t, 0, score)
}

func TestComputeGradeHighVolumeClient(t *testing.T) {
	c := &Client{
		TotalFees:             600000,
		ProjectTypes:          []string{"سكني", "تجاري", "صناعي", "زراعي", "حكومي"},
		TransactionTypes:      []string{"a", "b", "c", "d", "e", "f", "g", "h"},
		TotalTransactions:     10,
		CompletedTransactions: 10,
		SecretRating:          100,
	}
	grade, score := ComputeGrade(c)

	// 30 + 20 + 15 + 20 + 0.15 rounds to 85
	assert.Equal(t, 85, score)
	assert.Equal(t, GradeA, grade)
}

func TestComputeGradeDuplicateTypesCountOnce(t *testing.T) {
	a := &Client{ProjectTypes: []string{"سكني", "سكني", "سكني"}}
	b := &Client{ProjectTypes: []string{"سكني"}}

	_, scoreA := ComputeGrade(a)
	_, scoreB := ComputeGrade(b)
	assert.Equal(t, scoreB, scoreA)
}

func TestComputeGradeMidRangeIsB(t *testing.T) {
	c := &Client{
		TotalFees:             500000, // full fee score: 30
		TotalTransactions:     2,
		CompletedTransactions: 2, // full completion: 20
		TransactionTypes:      []string{"a", "b", "c", "d", "e", "f", "g", "h"},
	}
	grade, score := ComputeGrade(c)
	assert.Equal(t, 65, score)
	assert.Equal(t, GradeB, grade)
}
