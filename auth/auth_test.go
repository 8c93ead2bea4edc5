package auth

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestLookupConflict(t *testing.T) {
	taken, failed := lookupConflict(nil)
	assert.True(t, taken)
	assert.False(t, failed)

	taken, failed = lookupConflict(gorm.ErrRecordNotFound)
	assert.False(t, taken)
	assert.False(t, failed)

	taken, failed = lookupConflict(fmt.Errorf("find user: %w", gorm.ErrRecordNotFound))
	assert.False(t, taken)
	assert.False(t, failed)
}

func TestLookupConflictLookupFailure(t *testing.T) {
	taken, failed := lookupConflict(errors.New("connection refused"))
	assert.False(t, taken, "a failed lookup must not pass as a free value")
	assert.True(t, failed)
}
