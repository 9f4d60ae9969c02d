package event

import (
	"context"
	"testing"

	"rollcall/internal/attendance/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemoryStore()
	ctx := context.Background()
	for _, ev := range []models.Event{
		{Name: "Alice", RFID: "T1", Date: "2024-01-01", Time: "09:00:00", Direction: models.DirectionIn, Location: "LC-1"},
		{Name: "Bob", RFID: "T2", Date: "2024-01-01", Time: "09:10:00", Direction: models.DirectionIn, Location: "LC-2"},
		{Name: "Alice", RFID: "T1", Date: "2024-01-02", Time: "09:00:00", Direction: models.DirectionIn, Location: "LC-1"},
	} {
		s.Require().NoError(s.store.Append(ctx, ev))
	}
}

func (s *InMemoryStoreSuite) TestAppendAssignsID() {
	events, err := s.store.Fetch(context.Background(), models.QueryFilter{})
	s.Require().NoError(err)
	s.Require().Len(events, 3)
	for _, ev := range events {
		s.NotEqual(uuid.Nil, ev.ID)
	}
}

func (s *InMemoryStoreSuite) TestFetchFilters() {
	ctx := context.Background()

	s.Run("by name", func() {
		events, err := s.store.Fetch(ctx, models.QueryFilter{Names: []string{"Alice"}})
		s.Require().NoError(err)
		s.Len(events, 2)
	})

	s.Run("by token and date", func() {
		events, err := s.store.Fetch(ctx, models.QueryFilter{Tokens: []string{"T1", "T2"}, Date: "2024-01-01"})
		s.Require().NoError(err)
		s.Len(events, 2)
	})

	s.Run("by location", func() {
		events, err := s.store.Fetch(ctx, models.QueryFilter{Location: "LC-2"})
		s.Require().NoError(err)
		s.Require().Len(events, 1)
		s.Equal("Bob", events[0].Name)
	})

	s.Run("no match", func() {
		events, err := s.store.Fetch(ctx, models.QueryFilter{Names: []string{"Carol"}})
		s.Require().NoError(err)
		s.Empty(events)
	})
}

func (s *InMemoryStoreSuite) TestBuildFetchQuery() {
	query, args := buildFetchQuery(models.QueryFilter{
		Names:    []string{"Alice", "Bob"},
		Tokens:   []string{"T1"},
		Date:     "2024-01-01",
		Location: "LC-1",
	})
	s.Contains(query, "name IN ($1, $2)")
	s.Contains(query, "rfid IN ($3)")
	s.Contains(query, "date = $4")
	s.Contains(query, "log_cabin = $5")
	s.Equal([]any{"Alice", "Bob", "T1", "2024-01-01", "LC-1"}, args)

	query, args = buildFetchQuery(models.QueryFilter{})
	s.NotContains(query, "WHERE")
	s.Empty(args)
}
