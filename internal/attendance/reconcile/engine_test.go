package reconcile

import (
	"encoding/json"
	"testing"

	"rollcall/internal/attendance/models"

	"github.com/stretchr/testify/suite"
)

type EngineSuite struct {
	suite.Suite
	engine *Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.engine = NewEngine(WithLatenessTracking(true))
}

func swipe(name, rfid, date, clock string, dir models.Direction) models.Event {
	return models.Event{Name: name, RFID: rfid, Date: date, Time: clock, Direction: dir}
}

func alice(clock string, dir models.Direction) models.Event {
	return swipe("Alice", "T1", "2024-01-01", clock, dir)
}

func (s *EngineSuite) TestFullDay() {
	events := []models.Event{
		alice("17:30:00", models.DirectionOut),
		alice("09:00:00", models.DirectionIn),
		alice("13:00:00", models.DirectionIn),
		alice("12:00:00", models.DirectionOut),
	}

	rows := s.engine.Reconcile(events, models.QueryFilter{})
	s.Require().Len(rows, 1)
	row := rows[0]

	s.Equal("Alice", row.Name)
	s.Equal("T1", row.RFID)
	s.Equal("2024-01-01", row.Date)
	s.Equal("09:00:00", row.LoginTime)
	s.Equal("17:30:00", row.LogoutTime)
	s.Equal("07:30:00", row.EffectiveLogin)
	s.Equal("01:00:00", row.BreakHours)
	s.Equal("08:30:00", row.TotalLogin)
	s.Empty(row.Errors)
	s.Require().NotNil(row.LateStatus)
	s.Equal(models.LateOnTime, *row.LateStatus)
	s.Nil(row.Location)
	s.False(row.Synthesized)
}

func (s *EngineSuite) TestSimplePair() {
	rows := s.engine.Reconcile([]models.Event{
		alice("08:15:30", models.DirectionIn),
		alice("16:45:00", models.DirectionOut),
	}, models.QueryFilter{})

	s.Require().Len(rows, 1)
	s.Equal("08:29:30", rows[0].EffectiveLogin)
	s.Equal("08:29:30", rows[0].TotalLogin)
	s.Equal("", rows[0].BreakHours)
	s.Empty(rows[0].Errors)
}

func (s *EngineSuite) TestLoneSwipes() {
	s.Run("lone OUT", func() {
		rows := s.engine.Reconcile([]models.Event{alice("12:00:00", models.DirectionOut)}, models.QueryFilter{})
		s.Require().Len(rows, 1)
		s.Equal(models.Anomalies{"unexpected OUT at 12:00:00"}, rows[0].Errors)
		s.Empty(rows[0].LoginTime)
		s.Empty(rows[0].LogoutTime)
		s.Empty(rows[0].EffectiveLogin)
		s.Equal(models.LateAbsent, *rows[0].LateStatus)
	})

	s.Run("lone IN", func() {
		rows := s.engine.Reconcile([]models.Event{alice("10:00:00", models.DirectionIn)}, models.QueryFilter{})
		s.Require().Len(rows, 1)
		s.Equal(models.Anomalies{"missing OUT after 10:00:00"}, rows[0].Errors)
		s.Equal("10:00:00", rows[0].LoginTime)
		s.Empty(rows[0].LogoutTime)
		s.Empty(rows[0].TotalLogin)
		s.Equal(models.LateLate, *rows[0].LateStatus)
	})
}

func (s *EngineSuite) TestDuplicateIn() {
	events := []models.Event{
		alice("09:00:00", models.DirectionIn),
		alice("09:05:00", models.DirectionIn),
		alice("17:00:00", models.DirectionOut),
	}

	s.Run("keep first open", func() {
		rows := s.engine.Reconcile(events, models.QueryFilter{})
		s.Require().Len(rows, 1)
		s.Equal(models.Anomalies{"double IN detected at 09:05:00"}, rows[0].Errors)
		s.Equal("09:00:00", rows[0].LoginTime)
		s.Equal("08:00:00", rows[0].EffectiveLogin)
		s.Equal("", rows[0].BreakHours)
	})

	s.Run("reset on duplicate", func() {
		engine := NewEngine(WithDuplicateInPolicy(models.ResetOnDuplicate))
		rows := engine.Reconcile(events, models.QueryFilter{})
		s.Require().Len(rows, 1)
		s.Equal(models.Anomalies{"double IN detected at 09:05:00"}, rows[0].Errors)
		s.Equal("09:00:00", rows[0].LoginTime)
		s.Equal("07:55:00", rows[0].EffectiveLogin)
		s.Equal("00:05:00", rows[0].BreakHours)
		s.Equal("08:00:00", rows[0].TotalLogin)
	})
}

func (s *EngineSuite) TestMalformedTimes() {
	s.Run("bad OUT keeps the session open", func() {
		rows := s.engine.Reconcile([]models.Event{
			alice("09:00:00", models.DirectionIn),
			alice("09:3x:00", models.DirectionOut),
			alice("12:00:00", models.DirectionOut),
		}, models.QueryFilter{})

		s.Require().Len(rows, 1)
		s.Equal(models.Anomalies{"bad OUT at 09:3x:00"}, rows[0].Errors)
		s.Equal("03:00:00", rows[0].EffectiveLogin)
		s.Equal("12:00:00", rows[0].LogoutTime)
	})

	s.Run("out of range times sort last", func() {
		rows := s.engine.Reconcile([]models.Event{
			alice("25:00:00", models.DirectionIn),
			alice("09:00:00", models.DirectionIn),
			alice("9x:00:00", models.DirectionOut),
			alice("12:00:00", models.DirectionOut),
		}, models.QueryFilter{})

		s.Require().Len(rows, 1)
		s.Equal(models.Anomalies{"bad IN at 25:00:00", "unexpected OUT at 9x:00:00"}, rows[0].Errors)
		s.Equal("03:00:00", rows[0].EffectiveLogin)
	})
}

func (s *EngineSuite) TestBadInWhileClosed() {
	rows := s.engine.Reconcile([]models.Event{
		swipe("Bob", "T2", "not-a-date", "09:00:00", models.DirectionIn),
	}, models.QueryFilter{})

	s.Require().Len(rows, 1)
	s.Equal(models.Anomalies{"bad IN at 09:00:00"}, rows[0].Errors)
	s.Empty(rows[0].LoginTime)
}

func (s *EngineSuite) TestBucketsKeepFirstSeenOrder() {
	rows := s.engine.Reconcile([]models.Event{
		swipe("Bob", "T2", "2024-01-01", "09:00:00", models.DirectionIn),
		alice("09:00:00", models.DirectionIn),
		swipe("Bob", "T2", "2024-01-01", "17:00:00", models.DirectionOut),
		swipe("", "", "", "08:00:00", models.DirectionIn),
		swipe("", "", "", "09:00:00", models.DirectionOut),
	}, models.QueryFilter{})

	s.Require().Len(rows, 3)
	s.Equal("Bob", rows[0].Name)
	s.Equal("Alice", rows[1].Name)
	s.Equal("", rows[2].Name)
	s.Equal(models.Anomalies{"bad IN at 08:00:00", "unexpected OUT at 09:00:00"}, rows[2].Errors)
}

func (s *EngineSuite) TestIdempotent() {
	events := []models.Event{
		alice("09:00:00", models.DirectionIn),
		swipe("Bob", "T2", "2024-01-01", "10:30:00", models.DirectionIn),
		alice("12:00:00", models.DirectionOut),
	}
	filter := models.QueryFilter{Names: []string{"Alice", "Bob", "Carol"}}

	first, err := json.Marshal(s.engine.Reconcile(events, filter))
	s.Require().NoError(err)
	second, err := json.Marshal(s.engine.Reconcile(events, filter))
	s.Require().NoError(err)
	s.Equal(string(first), string(second))
}

func (s *EngineSuite) TestAbsences() {
	s.Run("paired absence against empty batch", func() {
		rows := s.engine.Reconcile(nil, models.QueryFilter{
			Names:  []string{"Alice", "Bob"},
			Tokens: []string{"T1", "T2"},
			Date:   "2024-01-01",
		})
		s.Require().Len(rows, 2)
		s.Equal([2]string{"Alice", "T1"}, [2]string{rows[0].Name, rows[0].RFID})
		s.Equal([2]string{"Bob", "T2"}, [2]string{rows[1].Name, rows[1].RFID})
		for _, row := range rows {
			s.True(row.Synthesized)
			s.Empty(row.Errors)
			s.Equal("2024-01-01", row.Date)
			s.Empty(row.LoginTime)
			s.Empty(row.TotalLogin)
			s.Equal(models.LateAbsent, *row.LateStatus)
		}
	})

	s.Run("present pair is skipped", func() {
		rows := s.engine.Reconcile([]models.Event{alice("09:00:00", models.DirectionIn)}, models.QueryFilter{
			Names:  []string{"Alice", "Bob"},
			Tokens: []string{"T1", "T2"},
		})
		s.Require().Len(rows, 2)
		s.False(rows[0].Synthesized)
		s.Equal("Bob", rows[1].Name)
		s.True(rows[1].Synthesized)
	})

	s.Run("names only use the first token", func() {
		rows := s.engine.Reconcile(nil, models.QueryFilter{
			Names:  []string{"Alice", "Bob", "Carol"},
			Tokens: []string{"T9", "T8"},
		})
		s.Require().Len(rows, 3)
		for _, row := range rows {
			s.Equal("T9", row.RFID)
		}
	})

	s.Run("tokens only", func() {
		rows := s.engine.Reconcile([]models.Event{alice("09:00:00", models.DirectionIn)}, models.QueryFilter{
			Tokens: []string{"T1", "T2"},
		})
		s.Require().Len(rows, 2)
		s.Equal("T2", rows[1].RFID)
		s.Equal("", rows[1].Name)
	})

	s.Run("no identities and no events yields one blank row", func() {
		engine := NewEngine(WithLocationTracking(true))
		rows := engine.Reconcile(nil, models.QueryFilter{Date: "2024-02-02", Location: "C-1"})
		s.Require().Len(rows, 1)
		s.Equal("", rows[0].Name)
		s.Equal("2024-02-02", rows[0].Date)
		s.Require().NotNil(rows[0].Location)
		s.Equal("C-1", *rows[0].Location)
		s.Nil(rows[0].LateStatus)
	})

	s.Run("no identities with events yields no absences", func() {
		rows := s.engine.Reconcile([]models.Event{alice("09:00:00", models.DirectionIn)}, models.QueryFilter{})
		s.Len(rows, 1)
	})
}

func (s *EngineSuite) TestLocationTracking() {
	engine := NewEngine(WithLocationTracking(true))
	ev := alice("09:00:00", models.DirectionIn)
	ev.Location = "LC-7"

	rows := engine.Reconcile([]models.Event{ev}, models.QueryFilter{})
	s.Require().NotNil(rows[0].Location)
	s.Equal("LC-7", *rows[0].Location)

	rows = engine.Reconcile([]models.Event{ev}, models.QueryFilter{Location: "LC-9"})
	s.Equal("LC-9", *rows[0].Location)
}

func (s *EngineSuite) TestSummaryJSONShape() {
	engine := NewEngine(WithLocationTracking(true), WithLatenessTracking(true))
	rows := engine.Reconcile([]models.Event{alice("09:00:00", models.DirectionIn)}, models.QueryFilter{})

	b, err := json.Marshal(rows[0])
	s.Require().NoError(err)
	s.JSONEq(`{
		"name": "Alice",
		"rfid": "T1",
		"date": "2024-01-01",
		"log_cabin": "",
		"login_time": "09:00:00",
		"logout_time": "",
		"Effective_login": "",
		"Break_hours": "",
		"Total_login": "",
		"errors": ["missing OUT after 09:00:00"],
		"late_status": "on time"
	}`, string(b))
}
