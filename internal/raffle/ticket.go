package raffle

import "strings"

// NormalizeTicket reduces a raw ticket identifier to its canonical digit key.
// All non-digit characters are dropped and leading zeros stripped, so "018",
// "18" and "ABC-018" all map to "18". A ticket with no digits maps to "0".
// Every comparison of ticket numbers in this package goes through this form;
// raw strings are never compared directly because uploads mix zero-padded and
// prefixed formats for the same ticket.
func NormalizeTicket(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	leading := true
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		if leading && r == '0' {
			continue
		}
		leading = false
		b.WriteByte(byte(r))
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// compareKeys orders two normalized keys numerically. Both operands are
// zero-stripped digit strings, so a shorter key is always the smaller number
// and equal lengths compare lexicographically.
func compareKeys(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
