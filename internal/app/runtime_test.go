package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInTestModeFromSharedTestingPackage(t *testing.T) {
	assert.True(t, InTestMode())
}
