package git

// MaskCredentials exports maskCredentials for testing.
var MaskCredentials = maskCredentials //nolint:gochecknoglobals // test export
