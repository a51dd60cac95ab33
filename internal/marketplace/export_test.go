package marketplace

import "time"

// SetClock replaces the clock shared by every service of m.
func SetClock(m *Marketplace, now func() time.Time) {
	m.Accounts.now = now
}
