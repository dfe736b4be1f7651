// Package policy holds the eligibility rules consulted before a booking is
// committed. Policy is static configuration, not runtime state.
package policy

import (
	"slices"
	"strings"
)

type Policy struct {
	AllowedEmailDomains      []string
	MaxAppointmentsPerPerson int
}

// IsEmailAllowed reports whether the address's domain (everything after the
// last "@") is on the allow-list. An empty allow-list admits everyone.
func (p Policy) IsEmailAllowed(email string) bool {
	if len(p.AllowedEmailDomains) == 0 {
		return true
	}
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	return slices.Contains(p.AllowedEmailDomains, email[at+1:])
}

// QuotaRemaining reports how many more appointments the address may book.
//
// TODO: count the requester's existing events in the rolling window via an
// attendee-filtered calendar query; until then every caller sees the full
// quota.
func (p Policy) QuotaRemaining(email string) int {
	return p.MaxAppointmentsPerPerson
}
