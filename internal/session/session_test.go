package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatic(t *testing.T) {
	tok, ok := Static("abc").CurrentToken()
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	_, ok = Static("").CurrentToken()
	assert.False(t, ok)

	_, ok = Static("   ").CurrentToken()
	assert.False(t, ok)
}

func TestLoggedIn(t *testing.T) {
	assert.False(t, LoggedIn(nil))
	assert.False(t, LoggedIn(Static("")))
	assert.True(t, LoggedIn(Static("t")))
}
