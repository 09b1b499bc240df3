package session

import "time"

// BannerTTL is how long an error banner stays on screen.
const BannerTTL = 5 * time.Second

// Banner is a transient error message.
type Banner struct {
	Message string
	shownAt time.Time
}

func NewBanner(msg string, now time.Time) Banner {
	return Banner{Message: msg, shownAt: now}
}

// Visible reports whether the banner should still be rendered at now.
func (b Banner) Visible(now time.Time) bool {
	if b.Message == "" {
		return false
	}
	return now.Sub(b.shownAt) < BannerTTL
}

// Dismiss clears the banner immediately.
func (b *Banner) Dismiss() {
	*b = Banner{}
}
