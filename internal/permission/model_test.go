package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveMergesSets(t *testing.T) {
	direct := []Permission{
		{Code: "clients.view", Level: 1},
		{Code: "clients.edit", Level: 2},
	}
	fromRole := []Permission{
		{Code: "clients.view", Level: 3},
		{Code: "transactions.view", Level: 1},
	}

	merged := Effective(direct, fromRole)

	assert.Len(t, merged, 3)
	assert.Equal(t, "clients.view", merged[0].Code)
	// the direct grant wins over the role copy of the same code
	assert.Equal(t, 1, merged[0].Level)
	assert.Equal(t, "transactions.view", merged[2].Code)
}

func TestEffectiveEmpty(t *testing.T) {
	assert.Empty(t, Effective())
	assert.Empty(t, Effective(nil, []Permission{}))
}
