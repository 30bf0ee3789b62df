package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreDispatchNotifiesSubscribers(t *testing.T) {
	s := NewStore()

	var seen []State
	s.Subscribe(func(st State) { seen = append(seen, st) })

	s.Dispatch(LoggedIn{Token: "tok"})

	require.Len(t, seen, 1)
	assert.True(t, seen[0].Auth.Authenticated)
	assert.True(t, s.State().Auth.Authenticated)
}

func TestRaiseAlertExpires(t *testing.T) {
	s := NewStore()

	id := s.RaiseAlert("Post Created", "success", 30*time.Millisecond)
	require.NotEmpty(t, id)

	alerts := s.State().Alerts
	require.Len(t, alerts, 1)
	assert.Equal(t, id, alerts[0].ID)
	assert.Equal(t, "Post Created", alerts[0].Msg)

	assert.Eventually(t, func() bool {
		return len(s.State().Alerts) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestRaiseAlertUniqueIDs(t *testing.T) {
	s := NewStore()

	a := s.RaiseAlert("one", "success", time.Minute)
	b := s.RaiseAlert("two", "success", time.Minute)
	assert.NotEqual(t, a, b)
	assert.Len(t, s.State().Alerts, 2)
}
