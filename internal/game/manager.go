package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/user/drrm-simulator/config"
	"github.com/user/drrm-simulator/internal/content"
	"github.com/user/drrm-simulator/internal/interfaces"
	"github.com/user/drrm-simulator/internal/types"
	"go.uber.org/zap"
)

var (
	ErrWrongPhase          = errors.New("action not available in current phase")
	ErrGateNotSatisfied    = errors.New("phase requirements not met")
	ErrInvalidScenario     = errors.New("invalid scenario")
	ErrUnknownItem         = errors.New("go bag item not found")
	ErrBagFull             = errors.New("go bag is full")
	ErrUnknownCenter       = errors.New("evacuation center not found")
	ErrUnknownAgency       = errors.New("agency not found")
	ErrUnknownTask         = errors.New("infrastructure task not found")
	ErrInvalidOption       = errors.New("invalid option")
	ErrDecisionPending     = errors.New("previous decision still being shown")
	ErrResponseNotComplete = errors.New("response phase still in progress")
	ErrNoReport            = errors.New("report not available")
)

// GameSession owns the session record and drives the phase state machine
type GameSession struct {
	record    types.SessionRecord
	stateLock sync.Mutex
	storage   *SessionStorage
	library   *content.Library
	cues      interfaces.CueEmitter
	scheduler interfaces.Scheduler
	shuffler  *Shuffler
	config    config.GameConfig
	Logger    *zap.Logger
	now       func() time.Time

	// Bumped whenever timers are cancelled; stale callbacks compare against it
	timerGen      uint64
	cancelTick    func()
	cancelAdvance func()
}

// Ensure GameSession satisfies the interfaces.GameSession interface
var _ interfaces.GameSession = (*GameSession)(nil)

// NewGameSession creates a session and restores any persisted record
func NewGameSession(cfg config.Config, store interfaces.Store, library *content.Library, cues interfaces.CueEmitter, scheduler interfaces.Scheduler) *GameSession {
	if library == nil {
		library = content.DefaultLibrary()
	}
	if scheduler == nil {
		scheduler = NewTickerScheduler()
	}

	gs := &GameSession{
		storage:   NewSessionStorage(store, cfg.Game.HistoryLimit, nil),
		library:   library,
		cues:      cues,
		scheduler: scheduler,
		shuffler:  NewShuffler(cfg.Game.ShuffleSeed),
		config:    cfg.Game,
		Logger:    zap.NewNop(), // Will be set by the server
		now:       time.Now,
	}

	gs.record = gs.storage.LoadSession()
	if gs.record.Phase == types.PhasePhase2 {
		gs.resumeResponse()
	}

	return gs
}

// SetLogger replaces the logger used by the session and its storage
func (gs *GameSession) SetLogger(logger *zap.Logger) {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	gs.Logger = logger
	gs.storage.logger = logger
}

// Record returns a copy of the current session record
func (gs *GameSession) Record() types.SessionRecord {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	return cloneSession(gs.record)
}

// Close cancels every pending timer
func (gs *GameSession) Close() {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	gs.stopTimers()
}

// StartTutorial moves from the menu into the tutorial
func (gs *GameSession) StartTutorial() error {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	if gs.record.Phase != types.PhaseIntro {
		return ErrWrongPhase
	}
	gs.record.Phase = types.PhaseTutorial
	gs.emit(types.CueClick)
	gs.saveState()
	return nil
}

// ExitTutorial returns to the menu, whether the tutorial was finished or not
func (gs *GameSession) ExitTutorial() error {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	if gs.record.Phase != types.PhaseTutorial {
		return ErrWrongPhase
	}
	gs.record.Phase = types.PhaseIntro
	gs.saveState()
	return nil
}

// StartScenario begins phase 1. An empty difficulty uses the configured default.
func (gs *GameSession) StartScenario(hazard types.Hazard, difficulty types.Difficulty) error {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	if gs.record.Phase != types.PhaseIntro {
		return ErrWrongPhase
	}
	if difficulty == "" {
		difficulty = types.Difficulty(gs.config.DefaultDifficulty)
	}
	if !hazard.Valid() || !difficulty.Valid() {
		return ErrInvalidScenario
	}

	gs.record = types.SessionRecord{
		ID:           uuid.New().String(),
		Phase:        types.PhasePhase1,
		Scenario:     types.ScenarioSelection{Hazard: hazard, Difficulty: difficulty},
		Preparedness: NewPreparednessRecord(),
	}

	gs.Logger.Info("Scenario started",
		zap.String("session_id", gs.record.ID),
		zap.String("hazard", string(hazard)),
		zap.String("difficulty", string(difficulty)))

	gs.emit(types.CueStart)
	gs.saveState()
	return nil
}

// ToggleGoBagItem packs or unpacks a go-bag item
func (gs *GameSession) ToggleGoBagItem(itemID string) error {
	return gs.updatePreparedness(func(rec *types.PreparednessRecord) error {
		return ToggleGoBagItem(rec, itemID)
	})
}

// SelectEvacuationCenter picks the evacuation center; an empty id clears it
func (gs *GameSession) SelectEvacuationCenter(centerID string) error {
	return gs.UpdatePreparedness(types.PreparednessUpdate{EvacuationCenterID: &centerID})
}

// SetBudget allocates the emergency budget, snapped to the slider step
func (gs *GameSession) SetBudget(amount int) error {
	return gs.UpdatePreparedness(types.PreparednessUpdate{Budget: &amount})
}

// SetDrillsCompleted marks the community drills as done or not done
func (gs *GameSession) SetDrillsCompleted(done bool) error {
	return gs.UpdatePreparedness(types.PreparednessUpdate{DrillsCompleted: &done})
}

// SetRiskAssessmentDone marks the community risk assessment as done or not done
func (gs *GameSession) SetRiskAssessmentDone(done bool) error {
	return gs.UpdatePreparedness(types.PreparednessUpdate{RiskAssessmentDone: &done})
}

// SetAlertUnderstood records whether the official advisory was acknowledged
func (gs *GameSession) SetAlertUnderstood(done bool) error {
	return gs.UpdatePreparedness(types.PreparednessUpdate{AlertUnderstood: &done})
}

// UpdatePreparedness applies every non-nil field of update as one intent.
// Nothing changes if any field is refused.
func (gs *GameSession) UpdatePreparedness(update types.PreparednessUpdate) error {
	return gs.updatePreparedness(func(rec *types.PreparednessRecord) error {
		if id := update.EvacuationCenterID; id != nil && *id != "" {
			if _, ok := content.LookupEvacuationCenter(*id); !ok {
				return ErrUnknownCenter
			}
		}

		if update.EvacuationCenterID != nil {
			rec.EvacuationCenterID = *update.EvacuationCenterID
		}
		if update.Budget != nil {
			rec.BudgetAllocated = NormalizeBudget(*update.Budget)
		}
		if update.DrillsCompleted != nil {
			rec.DrillsCompleted = *update.DrillsCompleted
		}
		if update.RiskAssessmentDone != nil {
			rec.RiskAssessmentDone = *update.RiskAssessmentDone
		}
		if update.AlertUnderstood != nil {
			rec.AlertUnderstood = *update.AlertUnderstood
		}
		return nil
	})
}

func (gs *GameSession) updatePreparedness(fn func(rec *types.PreparednessRecord) error) error {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	if gs.record.Phase != types.PhasePhase1 || gs.record.Preparedness == nil {
		return ErrWrongPhase
	}
	if err := fn(gs.record.Preparedness); err != nil {
		return err
	}

	gs.emit(types.CueClick)
	gs.saveState()
	return nil
}

// PreparednessScore is the live phase-1 score, or the finalized one afterwards
func (gs *GameSession) PreparednessScore() int {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	rec := gs.record.Preparedness
	if rec == nil {
		return 0
	}
	if rec.Finalized {
		return rec.PreparednessScore
	}
	return CalculatePreparednessScore(*rec)
}

// CanCompletePreparedness reports whether the phase-1 gate holds
func (gs *GameSession) CanCompletePreparedness() bool {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	return gs.record.Phase == types.PhasePhase1 &&
		gs.record.Preparedness != nil &&
		PreparednessGateSatisfied(*gs.record.Preparedness)
}

// CompletePreparedness finalizes phase 1 and starts the response phase
func (gs *GameSession) CompletePreparedness() error {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	if gs.record.Phase != types.PhasePhase1 || gs.record.Preparedness == nil {
		return ErrWrongPhase
	}
	if !PreparednessGateSatisfied(*gs.record.Preparedness) {
		return ErrGateNotSatisfied
	}

	FinalizePreparedness(gs.record.Preparedness)
	gs.record.Phase = types.PhasePhase2

	gs.Logger.Info("Preparedness phase complete",
		zap.String("session_id", gs.record.ID),
		zap.Int("preparedness_score", gs.record.Preparedness.PreparednessScore))

	gs.startResponse()
	gs.saveState()
	return nil
}

// ResolveEvent answers the current emergency event
func (gs *GameSession) ResolveEvent(optionIndex int) (*types.DecisionOutcome, error) {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	rs, err := gs.activeResponse()
	if err != nil {
		return nil, err
	}
	if rs.PendingOutcome != nil {
		return nil, ErrDecisionPending
	}
	event := rs.CurrentEvent()
	if event == nil {
		return nil, ErrWrongPhase
	}
	if optionIndex < 0 || optionIndex >= len(event.Options) {
		return nil, ErrInvalidOption
	}

	gs.dispatch(ResponseAction{Kind: ActionResolveEvent, OptionIndex: optionIndex})

	next := gs.record.ResponseState
	outcome := *next.PendingOutcome

	gs.Logger.Info("Emergency event resolved",
		zap.String("session_id", gs.record.ID),
		zap.String("event_id", outcome.EventID),
		zap.Bool("correct", outcome.Correct),
		zap.Int("panic", next.PublicPanic))

	if next.Status == types.ResponseInProgress {
		gs.scheduleAdvance(next.CurrentIndex)
	}
	return &outcome, nil
}

// OrderEvacuation issues the evacuation order; repeating it is a no-op
func (gs *GameSession) OrderEvacuation() error {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	if _, err := gs.activeResponse(); err != nil {
		return err
	}
	gs.dispatch(ResponseAction{Kind: ActionOrderEvacuation})
	return nil
}

// ContactAgency coordinates with a responder; repeating it is a no-op
func (gs *GameSession) ContactAgency(agencyID string) error {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	if _, err := gs.activeResponse(); err != nil {
		return err
	}
	if !content.IsAgency(agencyID) {
		return ErrUnknownAgency
	}
	gs.dispatch(ResponseAction{Kind: ActionContactAgency, AgencyID: agencyID})
	return nil
}

// CompleteResponse finalizes phase 2 once every event is done
func (gs *GameSession) CompleteResponse() error {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	if gs.record.Phase != types.PhasePhase2 || gs.record.ResponseState == nil {
		return ErrWrongPhase
	}
	if gs.record.ResponseState.Status != types.ResponseComplete {
		return ErrResponseNotComplete
	}

	gs.stopTimers()
	gs.record.Response = FinalizeResponse(*gs.record.ResponseState, gs.record.Preparedness.PreparednessScore)
	gs.record.ResponseState = nil
	gs.record.Recovery = NewRecoveryRecord()
	gs.record.Phase = types.PhasePhase3

	gs.Logger.Info("Response phase complete",
		zap.String("session_id", gs.record.ID),
		zap.Int("response_score", gs.record.Response.ResponseScore),
		zap.Int("casualties", gs.record.Response.Casualties))

	gs.saveState()
	return nil
}

// activeResponse returns the in-progress phase-2 state
func (gs *GameSession) activeResponse() (*types.ResponseState, error) {
	rs := gs.record.ResponseState
	if gs.record.Phase != types.PhasePhase2 || rs == nil || rs.Status != types.ResponseInProgress {
		return nil, ErrWrongPhase
	}
	return rs, nil
}

func (gs *GameSession) responseRules() ResponseRules {
	policy := TimeoutPolicy(gs.config.TimeoutPolicy)
	if policy != TimeoutForfeit {
		policy = TimeoutCue
	}
	return ResponseRules{
		Settings: SettingsFor(gs.record.Scenario.Difficulty),
		Timeout:  policy,
	}
}

// dispatch runs the reducer, signals its cues and persists the result
func (gs *GameSession) dispatch(action ResponseAction) {
	next, cues := ReduceResponse(*gs.record.ResponseState, gs.responseRules(), action)
	gs.record.ResponseState = &next
	gs.emit(cues...)

	if next.Status == types.ResponseComplete {
		gs.stopTimers()
		gs.Logger.Info("All emergency events handled",
			zap.String("session_id", gs.record.ID),
			zap.Int("correct", next.CorrectDecisionCount),
			zap.Int("total", len(next.Events)),
			zap.Bool("time_expired", next.TimeExpired))
	}
	gs.saveState()
}

func (gs *GameSession) startResponse() {
	gs.record.ResponseState = NewResponseState(gs.library, gs.record.Scenario, gs.shuffler)
	gs.emit(types.CueStart)
	if gs.record.ResponseState.Status == types.ResponseInProgress {
		gs.startCountdown()
	}
}

// resumeResponse restarts timers for a restored phase-2 session
func (gs *GameSession) resumeResponse() {
	rs := gs.record.ResponseState
	if rs == nil {
		gs.startResponse()
		gs.saveState()
		return
	}
	if rs.Status != types.ResponseInProgress {
		return
	}
	if rs.TimeRemaining > 0 {
		gs.startCountdown()
	}
	if rs.PendingOutcome != nil {
		gs.scheduleAdvance(rs.CurrentIndex)
	}
}

func (gs *GameSession) startCountdown() {
	gen := gs.timerGen
	gs.cancelTick = gs.scheduler.Every(gs.tickInterval(), func() {
		gs.onTick(gen)
	})
}

func (gs *GameSession) onTick(gen uint64) {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	if gen != gs.timerGen {
		return
	}
	if rs, err := gs.activeResponse(); err != nil || rs.TimeRemaining <= 0 {
		return
	}
	gs.dispatch(ResponseAction{Kind: ActionTick})
	gs.Logger.Debug("Countdown tick", zap.Int("time_remaining", gs.record.ResponseState.TimeRemaining))

	// Nothing left to count down; the phase stays open for the remaining decisions
	if gs.record.ResponseState.TimeRemaining <= 0 {
		gs.stopCountdown()
	}
}

func (gs *GameSession) scheduleAdvance(index int) {
	gen := gs.timerGen
	gs.cancelAdvance = gs.scheduler.After(gs.resultDelay(), func() {
		gs.onAdvance(gen, index)
	})
}

func (gs *GameSession) onAdvance(gen uint64, index int) {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	if gen != gs.timerGen {
		return
	}
	rs, err := gs.activeResponse()
	if err != nil || rs.CurrentIndex != index || rs.PendingOutcome == nil {
		return
	}
	gs.cancelAdvance = nil
	gs.dispatch(ResponseAction{Kind: ActionAdvanceEvent})
}

func (gs *GameSession) stopCountdown() {
	if gs.cancelTick != nil {
		gs.cancelTick()
		gs.cancelTick = nil
	}
}

// stopTimers cancels scheduled callbacks and invalidates any already in flight
func (gs *GameSession) stopTimers() {
	gs.timerGen++
	gs.stopCountdown()
	if gs.cancelAdvance != nil {
		gs.cancelAdvance()
		gs.cancelAdvance = nil
	}
}

func (gs *GameSession) tickInterval() time.Duration {
	if gs.config.TickIntervalMillis <= 0 {
		return time.Second
	}
	return time.Duration(gs.config.TickIntervalMillis) * time.Millisecond
}

func (gs *GameSession) resultDelay() time.Duration {
	if gs.config.EventResultDelayMillis <= 0 {
		return 3 * time.Second
	}
	return time.Duration(gs.config.EventResultDelayMillis) * time.Millisecond
}

// SetRDANACompleted marks the rapid damage and needs analysis as done or not done
func (gs *GameSession) SetRDANACompleted(done bool) error {
	return gs.UpdateRecovery(types.RecoveryUpdate{RDANACompleted: &done})
}

// ToggleInfrastructureTask marks a restoration task done or not done
func (gs *GameSession) ToggleInfrastructureTask(taskID string) error {
	return gs.updateRecovery(func(rec *types.RecoveryRecord) error {
		return ToggleInfrastructureTask(rec, taskID)
	})
}

// SetReliefDistributed records whether relief goods were distributed
func (gs *GameSession) SetReliefDistributed(done bool) error {
	return gs.UpdateRecovery(types.RecoveryUpdate{ReliefDistributed: &done})
}

// SetMedicalCareProvided records whether medical care was provided
func (gs *GameSession) SetMedicalCareProvided(done bool) error {
	return gs.UpdateRecovery(types.RecoveryUpdate{MedicalCareProvided: &done})
}

// SetPsychosocialSupportProvided records whether psychosocial support was provided
func (gs *GameSession) SetPsychosocialSupportProvided(done bool) error {
	return gs.UpdateRecovery(types.RecoveryUpdate{PsychosocialSupportProvided: &done})
}

// SetBuildBackBetterCommitted records the Build Back Better commitment
func (gs *GameSession) SetBuildBackBetterCommitted(done bool) error {
	return gs.UpdateRecovery(types.RecoveryUpdate{BuildBackBetterCommitted: &done})
}

// SetDRRMPlanUpdated records whether the barangay DRRM plan was updated
func (gs *GameSession) SetDRRMPlanUpdated(done bool) error {
	return gs.UpdateRecovery(types.RecoveryUpdate{DRRMPlanUpdated: &done})
}

// UpdateRecovery applies every non-nil field of update as one intent
func (gs *GameSession) UpdateRecovery(update types.RecoveryUpdate) error {
	return gs.updateRecovery(func(rec *types.RecoveryRecord) error {
		setIf := func(dst *bool, v *bool) {
			if v != nil {
				*dst = *v
			}
		}
		setIf(&rec.RDANACompleted, update.RDANACompleted)
		setIf(&rec.ReliefDistributed, update.ReliefDistributed)
		setIf(&rec.MedicalCareProvided, update.MedicalCareProvided)
		setIf(&rec.PsychosocialSupportProvided, update.PsychosocialSupportProvided)
		setIf(&rec.BuildBackBetterCommitted, update.BuildBackBetterCommitted)
		setIf(&rec.DRRMPlanUpdated, update.DRRMPlanUpdated)
		return nil
	})
}

func (gs *GameSession) updateRecovery(fn func(rec *types.RecoveryRecord) error) error {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	if gs.record.Phase != types.PhasePhase3 || gs.record.Recovery == nil {
		return ErrWrongPhase
	}
	if err := fn(gs.record.Recovery); err != nil {
		return err
	}

	gs.emit(types.CueClick)
	gs.saveState()
	return nil
}

// RecoveryScore is the live phase-3 score, or the finalized one afterwards
func (gs *GameSession) RecoveryScore() int {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	rec := gs.record.Recovery
	if rec == nil {
		return 0
	}
	if rec.Finalized {
		return rec.RecoveryScore
	}
	return CalculateRecoveryScore(*rec)
}

// CanCompleteRecovery reports whether the phase-3 gate holds
func (gs *GameSession) CanCompleteRecovery() bool {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	return gs.record.Phase == types.PhasePhase3 &&
		gs.record.Recovery != nil &&
		RecoveryGateSatisfied(*gs.record.Recovery)
}

// CompleteRecovery finalizes phase 3, moves to the report and records history
func (gs *GameSession) CompleteRecovery() error {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	if gs.record.Phase != types.PhasePhase3 || gs.record.Recovery == nil {
		return ErrWrongPhase
	}
	if !RecoveryGateSatisfied(*gs.record.Recovery) {
		return ErrGateNotSatisfied
	}

	FinalizeRecovery(gs.record.Recovery)
	gs.record.Phase = types.PhaseReport

	report, err := GenerateReport(gs.record)
	if err != nil {
		return err
	}

	gs.storage.AppendHistory(types.HistoryEntry{
		ID:         uuid.New().String(),
		Timestamp:  gs.now(),
		Hazard:     gs.record.Scenario.Hazard,
		Difficulty: gs.record.Scenario.Difficulty,
		FinalScore: report.FinalScore,
	})

	gs.Logger.Info("Session complete",
		zap.String("session_id", gs.record.ID),
		zap.Int("final_score", report.FinalScore),
		zap.String("grade", report.Grade.Letter))

	gs.emit(types.CueSuccess)
	gs.saveState()
	return nil
}

// Report generates the end-of-session report
func (gs *GameSession) Report() (*types.Report, error) {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	if gs.record.Phase != types.PhaseReport {
		return nil, ErrNoReport
	}
	return GenerateReport(gs.record)
}

// EstimatedFinalScore is the final score if recovery is finalized, otherwise the
// estimate with the default recovery value. Zero before phase 2 finishes.
func (gs *GameSession) EstimatedFinalScore() int {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	prep, resp, recov := gs.record.Preparedness, gs.record.Response, gs.record.Recovery
	if prep == nil || !prep.Finalized || resp == nil {
		return 0
	}
	if recov != nil && recov.Finalized {
		return CalculateFinalScore(prep.PreparednessScore, resp.ResponseScore, recov.RecoveryScore)
	}
	return EstimateFinalScore(prep.PreparednessScore, resp.ResponseScore)
}

// PlayAgain resets the session from the report screen
func (gs *GameSession) PlayAgain() error {
	return gs.reset("Ready for another scenario")
}

// BackToMenu resets the session from the report screen
func (gs *GameSession) BackToMenu() error {
	return gs.reset("Returned to menu")
}

func (gs *GameSession) reset(msg string) error {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	if gs.record.Phase != types.PhaseReport {
		return ErrWrongPhase
	}

	gs.stopTimers()
	previous := gs.record.ID
	gs.record = InitialSession()
	gs.Logger.Info(msg, zap.String("previous_session_id", previous))

	gs.emit(types.CueClick)
	gs.saveState()
	return nil
}

// History returns finished games, newest first
func (gs *GameSession) History() []types.HistoryEntry {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	return gs.storage.LoadHistory()
}

// ClearHistory removes every history entry
func (gs *GameSession) ClearHistory() {
	gs.stateLock.Lock()
	defer gs.stateLock.Unlock()

	gs.storage.ClearHistory()
	gs.Logger.Info("History cleared")
}

// saveState persists the current session record
func (gs *GameSession) saveState() {
	gs.storage.SaveSession(gs.record)
}

// emit signals cues; a failing emitter never affects the session
func (gs *GameSession) emit(cues ...types.Cue) {
	if gs.cues == nil {
		return
	}
	for _, cue := range cues {
		func() {
			defer func() {
				if r := recover(); r != nil {
					gs.Logger.Warn("Cue emitter failed",
						zap.String("cue", string(cue)),
						zap.Any("panic", r))
				}
			}()
			gs.cues.Emit(cue)
		}()
	}
}

func cloneSession(rec types.SessionRecord) types.SessionRecord {
	out := rec
	if rec.Preparedness != nil {
		p := *rec.Preparedness
		p.GoBagItems = append([]string(nil), rec.Preparedness.GoBagItems...)
		out.Preparedness = &p
	}
	if rec.ResponseState != nil {
		rs := copyResponseState(*rec.ResponseState)
		out.ResponseState = &rs
	}
	if rec.Response != nil {
		r := *rec.Response
		r.AgenciesContacted = append([]string(nil), rec.Response.AgenciesContacted...)
		out.Response = &r
	}
	if rec.Recovery != nil {
		r := *rec.Recovery
		r.InfrastructureTasksCompleted = append([]string(nil), rec.Recovery.InfrastructureTasksCompleted...)
		out.Recovery = &r
	}
	return out
}
