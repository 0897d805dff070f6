package notifier

import (
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/logger"
)

// DryRun logs alerts instead of sending them. Used when Pushover is not
// configured.
type DryRun struct{}

// NewDryRun creates a dry-run notifier.
func NewDryRun() *DryRun {
	return &DryRun{}
}

// Notify logs the alert that would have been sent.
func (n *DryRun) Notify(title, message string) error {
	logger.Info("notification (dry run)", logger.Fields{
		"title":   title,
		"message": message,
	})
	return nil
}
