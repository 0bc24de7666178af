package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore()

	_, ok := store.Get("bob")
	assert.False(t, ok)

	store.Put("bob", "token-1")
	token, ok := store.Get("bob")
	assert.True(t, ok)
	assert.Equal(t, "token-1", token)

	// 重复登录覆盖旧令牌
	store.Put("bob", "token-2")
	token, _ = store.Get("bob")
	assert.Equal(t, "token-2", token)

	store.Clear("bob")
	_, ok = store.Get("bob")
	assert.False(t, ok)
}
