// internal/i18n/i18n_test.go
package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestInstance(t *testing.T, defaultLang string) *I18n {
	t.Helper()

	inst := &I18n{
		translations: make(map[string]map[string]string),
		defaultLang:  defaultLang,
	}
	require.NoError(t, inst.LoadTranslations("./locales"))
	return inst
}

func TestInitializeUsesConfiguredPath(t *testing.T) {
	require.NoError(t, Initialize("./locales", "en"))

	assert.Equal(t, "Invalid or inactive voucher code", T("en", KeyVoucherInvalid))
	assert.Equal(t, "رمز قسيمة غير صالح أو غير نشط", T("ar", KeyVoucherInvalid))
}

func TestTranslationFormatting(t *testing.T) {
	inst := loadTestInstance(t, "en")

	assert.Equal(t, "Minimum purchase of $50 required", inst.T("en", KeyVoucherMinimumPurchase, 50))
	assert.Equal(t, "Minimum purchase of $49.5 required", inst.T("en", KeyVoucherMinimumPurchase, 49.5))
}

func TestTranslationFallsBackToDefaultLanguage(t *testing.T) {
	inst := loadTestInstance(t, "en")

	// Unsupported language falls back to the default locale
	assert.Equal(t, "Order not found", inst.T("fr", KeyOrderNotFound))
}

func TestUnknownKeyReturnsKey(t *testing.T) {
	inst := loadTestInstance(t, "en")

	assert.Equal(t, "nonexistent.key", inst.T("en", "nonexistent.key"))
}
