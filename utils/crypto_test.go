package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSealAndOpenFieldRoundTrip(t *testing.T) {
	assert.NoError(t, InitFieldCipher("test-secret"))

	for _, plain := range []string{"홍길동", "010-1234-5678", ""} {
		sealed, err := SealField(plain)
		assert.NoError(t, err)
		assert.NotEqual(t, plain, sealed)

		opened, err := OpenField(sealed)
		assert.NoError(t, err)
		assert.Equal(t, plain, opened)
	}
}

func TestSealFieldProducesFreshCiphertext(t *testing.T) {
	assert.NoError(t, InitFieldCipher("test-secret"))

	a, err := SealField("홍길동")
	assert.NoError(t, err)
	b, err := SealField("홍길동")
	assert.NoError(t, err)

	// Random nonce per seal: identical plaintexts must not collide.
	assert.NotEqual(t, a, b)
}

func TestOpenFieldRejectsGarbage(t *testing.T) {
	assert.NoError(t, InitFieldCipher("test-secret"))

	_, err := OpenField("not base64 at all !!!")
	assert.Error(t, err)

	_, err = OpenField("aGVsbG8=") // valid base64, too short for a nonce
	assert.Error(t, err)
}

func TestOpenFieldRejectsWrongKey(t *testing.T) {
	assert.NoError(t, InitFieldCipher("key-one"))
	sealed, err := SealField("홍길동")
	assert.NoError(t, err)

	assert.NoError(t, InitFieldCipher("key-two"))
	_, err = OpenField(sealed)
	assert.Error(t, err)
}

func TestMaskName(t *testing.T) {
	assert.Equal(t, "홍**", MaskName("홍길동"))
	assert.Equal(t, "K**", MaskName("Kim"))
	assert.Equal(t, "*", MaskName("A"))
	assert.Equal(t, "*", MaskName(""))
}
