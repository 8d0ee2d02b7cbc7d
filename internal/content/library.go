package content

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/user/drrm-simulator/internal/types"
	"go.uber.org/zap"
)

// FallbackHazard supplies events when a hazard has none
const FallbackHazard = types.HazardTyphoon

// Library holds the emergency event pools per hazard
type Library struct {
	events map[types.Hazard][]types.EmergencyEvent
}

// DefaultLibrary returns the built-in event pools
func DefaultLibrary() *Library {
	return NewLibrary(defaultEventPools())
}

// NewLibrary builds a library from pools keyed by hazard
func NewLibrary(pools map[types.Hazard][]types.EmergencyEvent) *Library {
	l := &Library{events: make(map[types.Hazard][]types.EmergencyEvent)}
	for hazard, events := range pools {
		for _, event := range events {
			event.Hazard = hazard
			l.events[hazard] = append(l.events[hazard], event)
		}
	}
	return l
}

// Add appends events to the pool of their own hazard
func (l *Library) Add(events []types.EmergencyEvent) {
	for _, event := range events {
		l.events[event.Hazard] = append(l.events[event.Hazard], event)
	}
}

// Events returns a copy of the pool for h, or the fallback pool when h has none
func (l *Library) Events(h types.Hazard) []types.EmergencyEvent {
	pool := l.events[h]
	if len(pool) == 0 {
		pool = l.events[FallbackHazard]
	}
	return append([]types.EmergencyEvent(nil), pool...)
}

// DataLoader handles loading extra content from data files
type DataLoader struct {
	basePath string
	logger   *zap.Logger
}

// NewDataLoader creates a new data loader
func NewDataLoader(basePath string, logger *zap.Logger) *DataLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DataLoader{
		basePath: basePath,
		logger:   logger,
	}
}

// LoadEvents loads extra emergency events from events.json.
// Entries whose hazard cannot be resolved or that have no options are skipped.
func (dl *DataLoader) LoadEvents() ([]types.EmergencyEvent, error) {
	path := filepath.Join(dl.basePath, "events.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read events file: %w", err)
	}

	var raw []types.EmergencyEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse events data: %w", err)
	}

	events := make([]types.EmergencyEvent, 0, len(raw))
	for _, event := range raw {
		hazard, err := types.ParseHazard(string(event.Hazard))
		if err != nil {
			dl.logger.Warn("Skipping event with unknown hazard",
				zap.String("event_id", event.ID),
				zap.String("hazard", string(event.Hazard)))
			continue
		}
		if len(event.Options) == 0 {
			dl.logger.Warn("Skipping event without options", zap.String("event_id", event.ID))
			continue
		}
		if event.Severity == "" {
			event.Severity = types.SeverityMedium
		}
		event.Hazard = hazard
		events = append(events, event)
	}

	return events, nil
}
