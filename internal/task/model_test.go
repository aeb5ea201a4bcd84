package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, StatusInProgress, NormalizeStatus("in-progress"))
	assert.Equal(t, StatusInProgress, NormalizeStatus("in_progress"))
	assert.Equal(t, StatusInProgress, NormalizeStatus("قيد التنفيذ"))
	assert.Equal(t, StatusCompleted, NormalizeStatus("done"))
	assert.Equal(t, StatusCancelled, NormalizeStatus("canceled"))
	assert.Equal(t, StatusNew, NormalizeStatus("جديدة"))

	// canonical spellings and unknown values pass through
	assert.Equal(t, StatusCompleted, NormalizeStatus(StatusCompleted))
	assert.Equal(t, "On Hold", NormalizeStatus("On Hold"))
}
