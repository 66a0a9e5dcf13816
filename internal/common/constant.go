package common

// UnlockTokenHeaderName is the HTTP header used to carry an unlock token on
// message reads after a successful passphrase verification.
const UnlockTokenHeaderName = "X-Unlock-Token"

// DefaultSalutation and DefaultClosing are the templates applied when the
// sender leaves the corresponding field blank.
const (
	DefaultSalutation = "For [Name]"
	DefaultClosing    = "With love,"
)
