package devserver

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StartSweeper schedules the hourly cleanup of stale reservations and returns
// the running cron so the caller can stop it on shutdown.
func StartSweeper(store *Store, retention time.Duration, log *logrus.Logger) *cron.Cron {
	c := cron.New()
	c.AddFunc("@hourly", func() {
		removed := store.SweepOlderThan(retention)
		if removed > 0 {
			log.WithField("removed", removed).Info("swept stale reservations")
		}
	})
	c.Start()
	return c
}
