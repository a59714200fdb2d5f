package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerdict_Rejected(t *testing.T) {
	assert.True(t, VerdictRejectedCorrupted.Rejected())
	assert.True(t, VerdictRejectedDeleted.Rejected())
	assert.False(t, VerdictAuthenticated.Rejected())
	assert.False(t, VerdictAuthenticatedIncompleteOnboarding.Rejected())
	assert.False(t, VerdictNewAccountPending.Rejected())
}
