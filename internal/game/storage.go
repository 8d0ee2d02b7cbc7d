package game

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/user/drrm-simulator/internal/content"
	"github.com/user/drrm-simulator/internal/interfaces"
	"github.com/user/drrm-simulator/internal/types"
	"go.uber.org/zap"
)

// Keys of the persisted blobs
const (
	SessionKey = "drrm-game-state"
	HistoryKey = "drrm-game-history"
)

// DefaultHistoryLimit is how many finished games are kept
const DefaultHistoryLimit = 10

// SessionStorage handles persistence of the session record and history.
// Every read falls back to a default and every write is best-effort.
type SessionStorage struct {
	store        interfaces.Store
	historyLimit int
	logger       *zap.Logger
}

// NewSessionStorage creates a new session storage
func NewSessionStorage(store interfaces.Store, historyLimit int, logger *zap.Logger) *SessionStorage {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionStorage{
		store:        store,
		historyLimit: historyLimit,
		logger:       logger,
	}
}

// InitialSession is the record a fresh process or a reset starts from
func InitialSession() types.SessionRecord {
	return types.SessionRecord{
		Phase:    types.PhaseIntro,
		Scenario: types.ScenarioSelection{Difficulty: types.DifficultyMedium},
	}
}

// SaveSession writes the session record
func (ss *SessionStorage) SaveSession(record types.SessionRecord) {
	record.UpdatedAt = time.Now()

	data, err := json.Marshal(record)
	if err != nil {
		ss.logger.Warn("Failed to marshal session", zap.Error(err))
		return
	}
	if err := ss.store.Set(SessionKey, data); err != nil {
		ss.logger.Warn("Failed to save session", zap.Error(err))
	}
}

// LoadSession reads the session record, returning the initial record when it is
// absent, malformed, or internally inconsistent
func (ss *SessionStorage) LoadSession() types.SessionRecord {
	data, ok, err := ss.store.Get(SessionKey)
	if err != nil {
		ss.logger.Warn("Failed to read session", zap.Error(err))
		return InitialSession()
	}
	if !ok {
		return InitialSession()
	}

	var record types.SessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		ss.logger.Warn("Failed to parse session, starting fresh", zap.Error(err))
		return InitialSession()
	}

	normalized, valid := normalizeSession(record)
	if !valid {
		ss.logger.Warn("Discarding inconsistent session", zap.String("phase", string(record.Phase)))
		return InitialSession()
	}
	return normalized
}

// normalizeSession repairs free-text fields and checks that the phase has the
// records it needs
func normalizeSession(record types.SessionRecord) (types.SessionRecord, bool) {
	if !record.Phase.Valid() {
		return record, false
	}
	if record.Scenario.Difficulty == "" {
		record.Scenario.Difficulty = types.DifficultyMedium
	}
	if d, err := types.ParseDifficulty(string(record.Scenario.Difficulty)); err == nil {
		record.Scenario.Difficulty = d
	} else {
		return record, false
	}

	if record.Phase == types.PhaseIntro || record.Phase == types.PhaseTutorial {
		return record, true
	}

	hazard, err := types.ParseHazard(string(record.Scenario.Hazard))
	if err != nil {
		return record, false
	}
	record.Scenario.Hazard = hazard

	switch record.Phase {
	case types.PhasePhase1:
		if record.Preparedness == nil {
			record.Preparedness = NewPreparednessRecord()
		}
		record.Preparedness.Finalized = false
		record.Preparedness.PreparednessScore = 0
		sanitizePreparedness(record.Preparedness)
	case types.PhasePhase2:
		if record.Preparedness == nil || !record.Preparedness.Finalized {
			return record, false
		}
		if record.ResponseState != nil && !resumableResponse(*record.ResponseState) {
			// Redrawn by the session on restore
			record.ResponseState = nil
		}
	case types.PhasePhase3:
		if record.Preparedness == nil || record.Response == nil {
			return record, false
		}
		if record.Recovery == nil {
			record.Recovery = NewRecoveryRecord()
		}
		if !record.Recovery.Finalized {
			sanitizeRecovery(record.Recovery)
		}
	case types.PhaseReport:
		if record.Preparedness == nil || record.Response == nil ||
			record.Recovery == nil || !record.Recovery.Finalized {
			return record, false
		}
	}
	return record, true
}

// LoadHistory reads the history list, newest first
func (ss *SessionStorage) LoadHistory() []types.HistoryEntry {
	data, ok, err := ss.store.Get(HistoryKey)
	if err != nil {
		ss.logger.Warn("Failed to read history", zap.Error(err))
		return []types.HistoryEntry{}
	}
	if !ok {
		return []types.HistoryEntry{}
	}

	var history []types.HistoryEntry
	if err := json.Unmarshal(data, &history); err != nil {
		ss.logger.Warn("Failed to parse history", zap.Error(err))
		return []types.HistoryEntry{}
	}
	if len(history) > ss.historyLimit {
		history = history[:ss.historyLimit]
	}
	return history
}

// AppendHistory prepends entry, evicts beyond the limit, and persists the list
func (ss *SessionStorage) AppendHistory(entry types.HistoryEntry) []types.HistoryEntry {
	history := append([]types.HistoryEntry{entry}, ss.LoadHistory()...)
	if len(history) > ss.historyLimit {
		history = history[:ss.historyLimit]
	}

	data, err := json.Marshal(history)
	if err != nil {
		ss.logger.Warn("Failed to marshal history", zap.Error(err))
		return history
	}
	if err := ss.store.Set(HistoryKey, data); err != nil {
		ss.logger.Warn("Failed to save history", zap.Error(err))
	}
	return history
}

// ClearHistory removes the history list
func (ss *SessionStorage) ClearHistory() {
	if err := ss.store.Remove(HistoryKey); err != nil {
		ss.logger.Warn("Failed to clear history", zap.Error(err))
	}
}

// sanitizePreparedness drops unknown and repeated go-bag items, caps the bag,
// forgets an unknown center and snaps the budget
func sanitizePreparedness(rec *types.PreparednessRecord) {
	items := make([]string, 0, content.MaxGoBagItems)
	for _, id := range rec.GoBagItems {
		if len(items) == content.MaxGoBagItems {
			break
		}
		if _, ok := content.LookupGoBagItem(id); !ok || containsString(items, id) {
			continue
		}
		items = append(items, id)
	}
	rec.GoBagItems = items

	if _, ok := content.LookupEvacuationCenter(rec.EvacuationCenterID); !ok {
		rec.EvacuationCenterID = ""
	}
	rec.BudgetAllocated = NormalizeBudget(rec.BudgetAllocated)
}

// sanitizeRecovery drops unknown and repeated infrastructure tasks
func sanitizeRecovery(rec *types.RecoveryRecord) {
	tasks := make([]string, 0, len(content.InfrastructureTasks()))
	for _, id := range rec.InfrastructureTasksCompleted {
		if _, ok := content.LookupInfrastructureTask(id); !ok || containsString(tasks, id) {
			continue
		}
		tasks = append(tasks, id)
	}
	rec.InfrastructureTasksCompleted = tasks
}

// resumableResponse reports whether a persisted phase-2 state can still be
// played to completion
func resumableResponse(rs types.ResponseState) bool {
	for _, event := range rs.Events {
		if len(event.Options) == 0 {
			return false
		}
	}
	if rs.TimeRemaining < 0 {
		return false
	}

	switch rs.Status {
	case types.ResponseInProgress:
		if rs.CurrentIndex < 0 || rs.CurrentIndex >= len(rs.Events) {
			return false
		}
		if p := rs.PendingOutcome; p != nil && (p.OptionIndex < 0 || p.OptionIndex >= len(rs.Events[rs.CurrentIndex].Options)) {
			return false
		}
	case types.ResponseComplete:
		if rs.CurrentIndex < 0 || rs.CurrentIndex > len(rs.Events) {
			return false
		}
	default:
		// loading is never persisted and leaves nothing to act on
		return false
	}

	switch rs.CenterStatus {
	case types.CenterIdle, types.CenterActive, types.CenterOverwhelmed:
	default:
		return false
	}
	return true
}
