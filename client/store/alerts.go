package store

import (
	"time"

	"github.com/google/uuid"
)

const DefaultAlertTimeout = 5 * time.Second

// RaiseAlert dispatches a transient alert and schedules its removal
// after timeout. Returns the alert id.
func (s *Store) RaiseAlert(msg, kind string, timeout time.Duration) string {
	if timeout <= 0 {
		timeout = DefaultAlertTimeout
	}

	id := uuid.NewString()
	s.Dispatch(AlertRaised{Alert: Alert{ID: id, Msg: msg, Kind: kind}})
	time.AfterFunc(timeout, func() {
		s.Dispatch(AlertRemoved{ID: id})
	})
	return id
}
