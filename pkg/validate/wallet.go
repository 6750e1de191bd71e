package validate

import "regexp"

var walletAddressRe = regexp.MustCompile(`^[A-Za-z0-9_:-]{8,128}$`)

// IsWalletAddress checks the shape of a payout destination. Addresses are
// otherwise opaque; no checksum is verified.
func IsWalletAddress(s string) bool {
	return walletAddressRe.MatchString(s)
}
