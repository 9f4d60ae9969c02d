//go:build integration

package event_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"rollcall/internal/attendance/models"
	"rollcall/internal/attendance/store/event"
	"rollcall/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *event.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = event.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "swipe_events"))
}

func (s *PostgresStoreSuite) TestAppendAndFetch() {
	ctx := context.Background()
	in := models.Event{Name: "Alice", RFID: "T1", Date: "2024-01-01", Time: "09:00:00", Direction: models.DirectionIn, Location: "LC-1"}
	out := models.Event{Name: "Alice", RFID: "T1", Date: "2024-01-01", Time: "17:00:00", Direction: models.DirectionOut, Location: "LC-1"}
	other := models.Event{Name: "Bob", RFID: "T2", Date: "2024-01-02", Time: "08:00:00", Direction: models.DirectionIn, Location: "LC-2"}
	for _, ev := range []models.Event{in, out, other} {
		s.Require().NoError(s.store.Append(ctx, ev))
	}

	s.Run("name and date filter", func() {
		events, err := s.store.Fetch(ctx, models.QueryFilter{Names: []string{"Alice"}, Date: "2024-01-01"})
		s.Require().NoError(err)
		s.Require().Len(events, 2)
		s.Equal(models.DirectionIn, events[0].Direction)
		s.Equal("LC-1", events[0].Location)
	})

	s.Run("token list", func() {
		events, err := s.store.Fetch(ctx, models.QueryFilter{Tokens: []string{"T1", "T2"}})
		s.Require().NoError(err)
		s.Len(events, 3)
	})

	s.Run("location filter", func() {
		events, err := s.store.Fetch(ctx, models.QueryFilter{Location: "LC-2"})
		s.Require().NoError(err)
		s.Require().Len(events, 1)
		s.Equal("Bob", events[0].Name)
	})
}
