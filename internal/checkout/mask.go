package checkout

import "strings"

// MaskContactAddress obscures a remembered address for display: first
// and last rune of the local part survive, the middle becomes stars,
// the domain stays intact. Local parts of two runes or fewer are
// returned unchanged.
func MaskContactAddress(address string) string {
	local, domainPart, hasAt := strings.Cut(address, "@")
	runes := []rune(local)
	if len(runes) <= 2 {
		return address
	}
	masked := string(runes[0]) + strings.Repeat("*", len(runes)-2) + string(runes[len(runes)-1])
	if hasAt {
		return masked + "@" + domainPart
	}
	return masked
}
