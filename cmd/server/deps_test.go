package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rollcall/internal/attendance/models"
	"rollcall/internal/attendance/store/debounce"
	"rollcall/internal/attendance/store/event"
	"rollcall/internal/platform/config"
)

func TestBuildEngine(t *testing.T) {
	t.Run("applies configured behaviour", func(t *testing.T) {
		engine, err := buildEngine(config.AttendanceConfig{
			DuplicateInPolicy: "reset-on-duplicate",
			LateThreshold:     "09:30:00",
			TrackLocation:     false,
			TrackLateness:     true,
		})
		require.NoError(t, err)
		assert.Equal(t, models.ResetOnDuplicate, engine.Policy())
		assert.False(t, engine.TracksLocation())
		assert.True(t, engine.TracksLateness())
	})

	t.Run("rejects unknown policy", func(t *testing.T) {
		_, err := buildEngine(config.AttendanceConfig{DuplicateInPolicy: "latest-wins", LateThreshold: "10:00:00"})
		assert.ErrorContains(t, err, "DUPLICATE_IN_POLICY")
	})

	t.Run("rejects bad threshold", func(t *testing.T) {
		_, err := buildEngine(config.AttendanceConfig{LateThreshold: "ten"})
		assert.ErrorContains(t, err, "LATE_THRESHOLD")
	})
}

func TestBuildRepositoriesWithoutInfra(t *testing.T) {
	in := &infra{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	repos := buildRepositories(in)

	assert.IsType(t, &event.InMemoryStore{}, repos.events)
	assert.IsType(t, &debounce.InMemoryGuard{}, repos.guard)
	assert.Empty(t, in.healthChecks())
}
