package auth

import "errors"

// Sentinel errors for every outcome of the engine's state machines. Callers
// should use errors.Is to classify; wrapped variants carry the offending
// key or license for diagnostics.
var (
	// Gate / application errors.
	ErrAppNotFound     = errors.New("application data not found")
	ErrAppPaused       = errors.New("application is paused")
	ErrVersionMismatch = errors.New("version mismatch")
	ErrAppParse        = errors.New("error parsing application data")

	// Login errors.
	ErrUserNotFound        = errors.New("user not found")
	ErrUserBanned          = errors.New("user is banned")
	ErrInvalidPassword     = errors.New("invalid password")
	ErrSubscriptionExpired = errors.New("subscription expired")
	ErrHwidMismatch        = errors.New("hwid mismatch")

	// Registration errors.
	ErrMissingCredentials  = errors.New("missing credentials")
	ErrUsernameExists      = errors.New("username already exists")
	ErrInvalidLicense      = errors.New("invalid license")
	ErrLicenseUsed         = errors.New("license already used")
	ErrLicenseExpired      = errors.New("license expired")
	ErrFailedCreateUser    = errors.New("failed to create user")
	ErrFailedUpdateLicense = errors.New("failed to update license")

	// Variable errors.
	ErrVariableNotFound = errors.New("variable not found")

	// Session errors.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrNetwork wraps any transport-level failure from the remote store.
	// Terminal for the call; retry is the caller's decision.
	ErrNetwork = errors.New("network error")

	// ErrParse flags a present but malformed remote document.
	ErrParse = errors.New("malformed remote document")
)
