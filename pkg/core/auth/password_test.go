package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordProducesUniqueHashes(t *testing.T) {
	h1, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	h2, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	// 每次调用使用新盐，输出必须不同
	assert.NotEqual(t, h1, h2)
	assert.True(t, strings.HasPrefix(h1, "$argon2id$"))
	assert.NotContains(t, h1, "correct horse battery staple")
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	ok, err := VerifyPassword(hash, "secret123")
	require.NoError(t, err)
	assert.True(t, ok)

	// 密码不匹配不是错误，只返回 false
	ok, err = VerifyPassword(hash, "secret124")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	cases := map[string]string{
		"not a hash":        "plaintext",
		"wrong algorithm":   "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"truncated":         "$argon2id$v=19$m=65536,t=1,p=4",
		"bad salt encoding": "$argon2id$v=19$m=65536,t=1,p=4$!!!!$aGFzaA",
		"bad params":        "$argon2id$v=19$bogus$c2FsdA$aGFzaA",
	}

	for name, hash := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := VerifyPassword(hash, "whatever")
			assert.Error(t, err)
		})
	}
}

func TestMakeToken(t *testing.T) {
	t1, err := MakeToken()
	require.NoError(t, err)
	t2, err := MakeToken()
	require.NoError(t, err)

	// 32 字节 hex 编码后为 64 个字符
	assert.Len(t, t1, 64)
	assert.NotEqual(t, t1, t2)
}
