package session

import (
	"testing"
	"time"

	"bakehouse-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func TestCreateAndGet(t *testing.T) {
	st := NewStore(time.Hour)

	s := st.Create("owner@bakehouse.lk", models.RoleOwner)
	require.NotEmpty(t, s.ID)
	require.Equal(t, models.RoleOwner, s.Role)
	require.NotNil(t, s.Fair)
	require.NotNil(t, s.Shop)

	got := st.Get(s.ID)
	require.Same(t, s, got)
}

func TestGetUnknownSession(t *testing.T) {
	st := NewStore(time.Hour)
	require.Nil(t, st.Get("missing"))
}

func TestDeleteEndsSession(t *testing.T) {
	st := NewStore(time.Hour)

	s := st.Create("owner@bakehouse.lk", models.RoleOwner)
	st.Delete(s.ID)
	require.Nil(t, st.Get(s.ID))
}

func TestExpiredSessionNotReturned(t *testing.T) {
	st := NewStore(-time.Minute)

	s := st.Create("owner@bakehouse.lk", models.RoleGuest)
	require.Nil(t, st.Get(s.ID))
}

func TestSweepRemovesOnlyExpired(t *testing.T) {
	expired := NewStore(-time.Minute)
	dead := expired.Create("old@bakehouse.lk", models.RoleGuest)

	// move the dead session into a store with live sessions
	st := NewStore(time.Hour)
	live := st.Create("owner@bakehouse.lk", models.RoleOwner)

	st.mu.Lock()
	st.sessions[dead.ID] = dead
	st.mu.Unlock()

	require.Equal(t, 2, st.Len())
	require.Equal(t, 1, st.Sweep())
	require.Equal(t, 1, st.Len())
	require.Same(t, live, st.Get(live.ID))
}

func TestSessionLedgersAreIsolated(t *testing.T) {
	st := NewStore(time.Hour)

	a := st.Create("a@bakehouse.lk", models.RoleOwner)
	b := st.Create("b@bakehouse.lk", models.RoleOwner)

	a.Fair.AddProduct()
	require.Len(t, a.Fair.Form().Products, 2)
	require.Len(t, b.Fair.Form().Products, 1)
}
