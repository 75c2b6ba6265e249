// internal/utils/crypto_test.go
package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-\d+-\d{1,3}$`)

func TestGenerateOrderNumberFormat(t *testing.T) {
	number := GenerateOrderNumber()
	assert.Regexp(t, orderNumberPattern, number)
}

// Within one millisecond the generator only has the 0..999 suffix to
// distinguish orders, so rapid calls may legitimately repeat; the unique index
// on order_number is the backstop. Across milliseconds the timestamp differs,
// so numbers must too.
func TestGenerateOrderNumberUniqueAcrossMilliseconds(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		number := GenerateOrderNumber()
		assert.Regexp(t, orderNumberPattern, number)
		assert.False(t, seen[number], "duplicate order number %s", number)
		seen[number] = true
		time.Sleep(2 * time.Millisecond)
	}
}

func TestGenerateRandomString(t *testing.T) {
	s, err := GenerateRandomString(32)
	require.NoError(t, err)
	assert.Len(t, s, 32)

	s2, err := GenerateRandomString(32)
	require.NoError(t, err)
	assert.NotEqual(t, s, s2)
}
