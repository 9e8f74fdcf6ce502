package usecase

import (
	"fmt"
	"time"
)

// PostedTime renders how long ago a listing was posted.
func PostedTime(postedAt *time.Time, now time.Time) string {
	if postedAt == nil || postedAt.IsZero() {
		return "posted some time ago"
	}

	diff := int64(now.Sub(*postedAt) / time.Second)
	switch {
	case diff < 60:
		return "posted just now"
	case diff < 3600:
		return fmt.Sprintf("posted %d mins ago", diff/60)
	case diff < 86400:
		return fmt.Sprintf("posted %d hours ago", diff/3600)
	case diff < 2592000:
		days := diff / 86400
		if days == 1 {
			return "posted 1 day ago"
		}
		return fmt.Sprintf("posted %d days ago", days)
	case diff < 31536000:
		return fmt.Sprintf("posted %d months ago", diff/2592000)
	default:
		return "posted a long time ago"
	}
}
