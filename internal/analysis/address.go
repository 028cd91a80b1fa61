package analysis

import "regexp"

// addressPattern matches a 0x-prefixed 40-hex-character contract address.
var addressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// IsValidAddress reports whether the string is a well-formed contract
// address. The generator itself accepts anything; callers use this to
// reject malformed input at the transport boundary.
func IsValidAddress(address string) bool {
	return addressPattern.MatchString(address)
}
