package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr("5000")
	require.NoError(t, err)
	assert.Equal(t, ":5000", addr)

	addr, err = ListenAddr(" :8080 ")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	_, err = ListenAddr("  ")
	assert.Error(t, err)
}

func TestAllowedOrigins(t *testing.T) {
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"},
		AllowedOrigins(" http://localhost:3000/, https://app.example.com,,"))
	assert.Empty(t, AllowedOrigins(""))
	assert.Empty(t, AllowedOrigins("*"))
}

func TestCorsConfig(t *testing.T) {
	open := corsConfig("")
	assert.Equal(t, []string{"*"}, open.AllowOrigins)
	assert.False(t, open.AllowCredentials)

	strict := corsConfig("http://localhost:3000")
	assert.Equal(t, []string{"http://localhost:3000"}, strict.AllowOrigins)
	assert.True(t, strict.AllowCredentials)
}
