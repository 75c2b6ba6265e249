// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired         = "auth.required"
	KeyAuthInvalidToken     = "auth.invalid_token"
	KeyAuthAdminRequired    = "auth.admin_required"
	KeyAuthInvalidCreds     = "auth.invalid_credentials"
	KeyAuthEmailExists      = "auth.email_exists"
	KeyAuthRegisterSuccess  = "auth.register_success"
	KeyAuthLoginSuccess     = "auth.login_success"
	KeyValidationInvalid    = "validation.invalid_input"

	// Products
	KeyProductNotFound    = "product.not_found"
	KeyProductCreated     = "product.created"
	KeyProductUpdated     = "product.updated"
	KeyProductDeleted     = "product.deleted"
	KeyProductFetchError  = "product.fetch_error"
	KeyProductsFetchError = "product.fetch_all_error"
	KeyProductCreateError = "product.create_error"
	KeyProductUpdateError = "product.update_error"
	KeyProductDeleteError = "product.delete_error"

	// Orders
	KeyOrderNotFound          = "order.not_found"
	KeyOrderMissingFields     = "order.missing_fields"
	KeyOrderCreated           = "order.created"
	KeyOrderInvalidStatus     = "order.invalid_status"
	KeyOrderStatusUpdated     = "order.status_updated"
	KeyOrderUpdated           = "order.updated"
	KeyOrderDeleted           = "order.deleted"
	KeyOrderFetchError        = "order.fetch_error"
	KeyOrdersFetchError       = "order.fetch_all_error"
	KeyOrderCreateError       = "order.create_error"
	KeyOrderStatusUpdateError = "order.status_update_error"
	KeyOrderUpdateError       = "order.update_error"
	KeyOrderDeleteError       = "order.delete_error"

	// Vouchers
	KeyVoucherNotFound        = "voucher.not_found"
	KeyVoucherCodeRequired    = "voucher.code_required"
	KeyVoucherInvalid         = "voucher.invalid"
	KeyVoucherExpired         = "voucher.expired"
	KeyVoucherUsageLimit      = "voucher.usage_limit"
	KeyVoucherMinimumPurchase = "voucher.minimum_purchase"
	KeyVoucherApplied         = "voucher.applied"
	KeyVoucherUsageRecorded   = "voucher.usage_recorded"
	KeyVoucherFieldsRequired  = "voucher.fields_required"
	KeyVoucherCodeExists      = "voucher.code_exists"
	KeyVoucherCreated         = "voucher.created"
	KeyVoucherUpdated         = "voucher.updated"
	KeyVoucherActivated       = "voucher.activated"
	KeyVoucherDeactivated     = "voucher.deactivated"
	KeyVoucherDeleted         = "voucher.deleted"
	KeyVoucherFetchError      = "voucher.fetch_error"
	KeyVouchersFetchError     = "voucher.fetch_all_error"
	KeyVoucherValidateError   = "voucher.validate_error"
	KeyVoucherApplyError      = "voucher.apply_error"
	KeyVoucherCreateError     = "voucher.create_error"
	KeyVoucherUpdateError     = "voucher.update_error"
	KeyVoucherToggleError     = "voucher.toggle_error"
	KeyVoucherDeleteError     = "voucher.delete_error"

	// Payments and uploads
	KeyPaymentIntentError  = "payment.intent_error"
	KeyUploadNoImages      = "upload.no_images"
	KeyUploadSuccess       = "upload.success"
	KeyUploadError         = "upload.error"

	// Misc
	KeyStatsFetchError = "stats.fetch_error"
	KeyRouteNotFound   = "route.not_found"
)
