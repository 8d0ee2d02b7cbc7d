package interfaces

import (
	"time"

	"github.com/user/drrm-simulator/internal/types"
)

// Store is the key-value port the session persists through
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// CueEmitter receives named audio cues. It has no return value and must not block.
type CueEmitter interface {
	Emit(cue types.Cue)
}

// Scheduler runs deferred and repeating callbacks. The returned func cancels.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
	After(delay time.Duration, fn func()) (cancel func())
}

// GameSession defines the operations the presentation layer drives
type GameSession interface {
	Record() types.SessionRecord

	StartTutorial() error
	ExitTutorial() error
	StartScenario(hazard types.Hazard, difficulty types.Difficulty) error

	ToggleGoBagItem(itemID string) error
	SelectEvacuationCenter(centerID string) error
	SetBudget(amount int) error
	SetDrillsCompleted(done bool) error
	SetRiskAssessmentDone(done bool) error
	SetAlertUnderstood(done bool) error
	UpdatePreparedness(update types.PreparednessUpdate) error
	PreparednessScore() int
	CanCompletePreparedness() bool
	CompletePreparedness() error

	ResolveEvent(optionIndex int) (*types.DecisionOutcome, error)
	OrderEvacuation() error
	ContactAgency(agencyID string) error
	CompleteResponse() error

	SetRDANACompleted(done bool) error
	ToggleInfrastructureTask(taskID string) error
	SetReliefDistributed(done bool) error
	SetMedicalCareProvided(done bool) error
	SetPsychosocialSupportProvided(done bool) error
	SetBuildBackBetterCommitted(done bool) error
	SetDRRMPlanUpdated(done bool) error
	UpdateRecovery(update types.RecoveryUpdate) error
	RecoveryScore() int
	CanCompleteRecovery() bool
	CompleteRecovery() error

	Report() (*types.Report, error)
	EstimatedFinalScore() int
	PlayAgain() error
	BackToMenu() error

	History() []types.HistoryEntry
	ClearHistory()

	Close()
}
