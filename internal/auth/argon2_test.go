package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	h := NewArgon2Hasher()

	encoded, err := h.Hash("password123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))

	assert.True(t, h.Verify("password123", encoded))
	assert.False(t, h.Verify("password124", encoded))
	assert.False(t, h.Verify("", encoded))
}

func TestHashUsesRandomSalt(t *testing.T) {
	h := NewArgon2Hasher()

	first, err := h.Hash("password123")
	require.NoError(t, err)
	second, err := h.Hash("password123")
	require.NoError(t, err)

	// salt가 매번 달라야 하므로 같은 입력이라도 인코딩 결과가 달라진다
	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("password123", first))
	assert.True(t, h.Verify("password123", second))
}

func TestVerifyMalformedHash(t *testing.T) {
	h := NewArgon2Hasher()

	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"not a hash", "password123"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=1,p=4$AAAA$BBBB"},
		{"missing fields", "$argon2id$v=19$m=65536,t=1,p=4"},
		{"bad salt b64", "$argon2id$v=19$m=65536,t=1,p=4$!!!!$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"},
		{"bad digest b64", "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$!!!!"},
		{"bad params", "$argon2id$v=19$m=abc,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, h.Verify("password123", tt.encoded))
		})
	}
}

func TestVerifyEncodedParameters(t *testing.T) {
	h := NewArgon2Hasher()

	encoded, err := h.Hash("password123")
	require.NoError(t, err)

	// PHC 문자열만으로 검증 가능해야 한다 (외부 파라미터 조회 없음)
	parts := strings.Split(encoded, "$")
	require.Len(t, parts, 6)
	assert.Equal(t, "argon2id", parts[1])
	assert.Equal(t, "v=19", parts[2])
	assert.Equal(t, "m=65536,t=1,p=4", parts[3])
}
