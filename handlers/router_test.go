package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSConfig(t *testing.T) {
	all := corsConfig([]string{"*"})
	assert.True(t, all.AllowAllOrigins)
	assert.Empty(t, all.AllowOrigins)
	assert.False(t, all.AllowCredentials)

	assert.True(t, corsConfig(nil).AllowAllOrigins)

	listed := corsConfig([]string{"https://astrokalki.com", "http://localhost:5173"})
	assert.False(t, listed.AllowAllOrigins)
	assert.True(t, listed.AllowCredentials)
	assert.Equal(t, []string{"https://astrokalki.com", "http://localhost:5173"}, listed.AllowOrigins)
	assert.Contains(t, listed.AllowHeaders, confirmationHeader)
}
