package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstanceNamePattern(t *testing.T) {
	valid := []string{"main", "acme-support", "shop_01", "A1"}
	for _, name := range valid {
		assert.True(t, instanceNamePattern.MatchString(name), name)
	}

	invalid := []string{"", "-leading", "has space", "semi;colon", "path/sep"}
	for _, name := range invalid {
		assert.False(t, instanceNamePattern.MatchString(name), name)
	}
}
