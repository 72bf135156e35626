package domain

import "time"

// Business validation constants
const (
	// MaxApplicationDuration is the longest slot a single application may claim.
	MaxApplicationDuration = 2 * time.Hour

	// MaxFederationPerDay is how many slots one federation may hold on a
	// single local calendar day.
	MaxFederationPerDay = 2
)

// Default schedule configuration
const (
	// DefaultLocalUTCOffsetHours is the community's fixed local offset (UTC+9).
	// Calendar-day boundaries are computed in this offset.
	DefaultLocalUTCOffsetHours = 9

	DefaultWindowBeforeHours = 5
	DefaultWindowAfterHours  = 24
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
