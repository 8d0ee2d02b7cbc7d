package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/drrm-simulator/internal/types"
)

func TestEveryHazardHasContent(t *testing.T) {
	library := DefaultLibrary()

	for _, h := range types.Hazards {
		assert.NotEmpty(t, AlertFor(h).Advisory, h)
		assert.NotEmpty(t, LessonFor(h).RealWorld, h)
		assert.NotEmpty(t, RiskProfileFor(h).Hazards, h)

		events := library.Events(h)
		assert.GreaterOrEqual(t, len(events), 5, h)
		for _, e := range events {
			assert.Equal(t, h, e.Hazard)
			correct := 0
			for _, o := range e.Options {
				if o.IsCorrect {
					correct++
				}
			}
			assert.Equal(t, 1, correct, "event %s should have one correct option", e.ID)
		}
	}
}

func TestEmptyPoolFallsBackToTyphoon(t *testing.T) {
	library := NewLibrary(map[types.Hazard][]types.EmergencyEvent{
		types.HazardTyphoon: {{ID: "t1", Options: []types.EmergencyOption{{IsCorrect: true}}}},
	})

	events := library.Events(types.HazardFlood)
	require.Len(t, events, 1)
	assert.Equal(t, "t1", events[0].ID)
	assert.Equal(t, types.HazardTyphoon, events[0].Hazard)
}

func TestEventsReturnsCopy(t *testing.T) {
	library := DefaultLibrary()
	events := library.Events(types.HazardFire)
	events[0].ID = "mutated"

	assert.NotEqual(t, "mutated", library.Events(types.HazardFire)[0].ID)
}

func TestCatalogLookups(t *testing.T) {
	item, ok := LookupGoBagItem("water")
	require.True(t, ok)
	assert.Equal(t, 10, item.Points)

	_, ok = LookupGoBagItem("jetpack")
	assert.False(t, ok)

	assert.Len(t, GoBagCatalog(), 17)
	for _, item := range GoBagCatalog() {
		assert.GreaterOrEqual(t, item.Points, 4)
		assert.LessOrEqual(t, item.Points, 10)
	}

	center, ok := LookupEvacuationCenter("church")
	require.True(t, ok)
	assert.Equal(t, 9, center.Points)

	assert.True(t, IsAgency("DSWD"))
	assert.False(t, IsAgency("FBI"))
	assert.Len(t, Agencies(), 5)

	total := 0
	for _, task := range InfrastructureTasks() {
		total += task.Points
	}
	assert.Equal(t, 50, total)
}

func TestDataLoaderLoadEvents(t *testing.T) {
	dir := t.TempDir()
	data := `[
		{"id": "x1", "hazard_type": "Flooding", "type": "Test", "description": "d",
		 "options": [{"action": "a", "outcome": "o", "correct": true}]},
		{"id": "x2", "hazard_type": "tsunami", "options": [{"action": "a"}]},
		{"id": "x3", "hazard_type": "fire", "options": []}
	]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "events.json"), []byte(data), 0644))

	events, err := NewDataLoader(dir, nil).LoadEvents()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, types.HazardFlood, events[0].Hazard)
	assert.Equal(t, types.SeverityMedium, events[0].Severity)

	library := DefaultLibrary()
	before := len(library.Events(types.HazardFlood))
	library.Add(events)
	assert.Len(t, library.Events(types.HazardFlood), before+1)
}

func TestDataLoaderMissingFile(t *testing.T) {
	_, err := NewDataLoader(t.TempDir(), nil).LoadEvents()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
