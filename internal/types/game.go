package types

import "time"

// Hazard is the disaster type a session is played against
type Hazard string

const (
	HazardTyphoon    Hazard = "typhoon"
	HazardEarthquake Hazard = "earthquake"
	HazardFlood      Hazard = "flood"
	HazardVolcano    Hazard = "volcano"
	HazardLandslide  Hazard = "landslide"
	HazardFire       Hazard = "fire"
)

// Hazards lists every playable hazard in menu order
var Hazards = []Hazard{
	HazardTyphoon,
	HazardEarthquake,
	HazardFlood,
	HazardVolcano,
	HazardLandslide,
	HazardFire,
}

// Valid reports whether h is one of the playable hazards
func (h Hazard) Valid() bool {
	for _, known := range Hazards {
		if h == known {
			return true
		}
	}
	return false
}

// Difficulty controls event count, countdown and panic dynamics
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is a known difficulty
func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Phase is a screen of the session state machine
type Phase string

const (
	PhaseIntro    Phase = "intro"
	PhaseTutorial Phase = "tutorial"
	PhasePhase1   Phase = "phase1"
	PhasePhase2   Phase = "phase2"
	PhasePhase3   Phase = "phase3"
	PhaseReport   Phase = "report"
)

// Valid reports whether p is a known phase
func (p Phase) Valid() bool {
	switch p {
	case PhaseIntro, PhaseTutorial, PhasePhase1, PhasePhase2, PhasePhase3, PhaseReport:
		return true
	}
	return false
}

// Severity of an emergency event
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ResponseStatus is the state of the phase-2 event machine
type ResponseStatus string

const (
	ResponseLoading    ResponseStatus = "loading"
	ResponseInProgress ResponseStatus = "in_progress"
	ResponseComplete   ResponseStatus = "complete"
)

// CenterStatus is the state of the evacuation center during phase 2
type CenterStatus string

const (
	CenterIdle        CenterStatus = "idle"
	CenterActive      CenterStatus = "active"
	CenterOverwhelmed CenterStatus = "overwhelmed"
)

// Cue is a named audio cue signalled by the engine
type Cue string

const (
	CueStart   Cue = "start"
	CueSuccess Cue = "success"
	CueError   Cue = "error"
	CueAlert   Cue = "alert"
	CueClick   Cue = "click"
)

// ScenarioSelection is fixed for the lifetime of a session
type ScenarioSelection struct {
	Hazard     Hazard     `json:"hazard_type"`
	Difficulty Difficulty `json:"difficulty"`
}

// PreparednessRecord is built during phase 1
type PreparednessRecord struct {
	GoBagItems         []string `json:"go_bag_items"`
	EvacuationCenterID string   `json:"evacuation_center_id,omitempty"`
	BudgetAllocated    int      `json:"budget_allocated"`
	DrillsCompleted    bool     `json:"drills_completed"`
	RiskAssessmentDone bool     `json:"risk_assessment_done"`
	AlertUnderstood    bool     `json:"alert_understood"`

	// Only meaningful once Finalized is set
	PreparednessScore int  `json:"preparedness_score"`
	Finalized         bool `json:"finalized"`
}

// EmergencyOption is one answer to an emergency event
type EmergencyOption struct {
	ActionText  string `json:"action"`
	OutcomeText string `json:"outcome"`
	IsCorrect   bool   `json:"correct"`
}

// EmergencyEvent is an immutable decision point drawn during phase 2
type EmergencyEvent struct {
	ID          string            `json:"id"`
	Hazard      Hazard            `json:"hazard_type"`
	Type        string            `json:"type"`
	Severity    Severity          `json:"severity"`
	Description string            `json:"description"`
	Options     []EmergencyOption `json:"options"`
}

// DecisionOutcome is the result shown after an event is answered
type DecisionOutcome struct {
	EventID     string `json:"event_id"`
	OptionIndex int    `json:"option_index"`
	OutcomeText string `json:"outcome"`
	Correct     bool   `json:"correct"`
}

// ResponseState is the in-progress phase-2 state
type ResponseState struct {
	Status         ResponseStatus   `json:"status"`
	Events         []EmergencyEvent `json:"events"`
	CurrentIndex   int              `json:"current_index"`
	TimeRemaining  int              `json:"time_remaining"`
	TimeExpired    bool             `json:"time_expired"`
	PendingOutcome *DecisionOutcome `json:"pending_outcome,omitempty"`

	EvacuationOrdered    bool         `json:"evacuation_ordered"`
	AgenciesContacted    []string     `json:"agencies_contacted"`
	EventsResolved       int          `json:"events_resolved"`
	CorrectDecisionCount int          `json:"correct_decision_count"`
	PublicPanic          int          `json:"public_panic"`
	CenterStatus         CenterStatus `json:"evacuation_center_status"`

	// Newest first
	Log []string `json:"log"`
}

// CurrentEvent returns the event awaiting a decision, if any
func (rs *ResponseState) CurrentEvent() *EmergencyEvent {
	if rs.CurrentIndex < 0 || rs.CurrentIndex >= len(rs.Events) {
		return nil
	}
	return &rs.Events[rs.CurrentIndex]
}

// ResponseRecord is the finalized phase-2 result
type ResponseRecord struct {
	EvacuationOrdered       bool         `json:"evacuation_ordered"`
	AgenciesContacted       []string     `json:"agencies_contacted"`
	EventsResolved          int          `json:"events_resolved"`
	CorrectDecisionCount    int          `json:"correct_decision_count"`
	TotalEvents             int          `json:"total_events"`
	PublicPanic             int          `json:"public_panic"`
	PublicCompliance        int          `json:"public_compliance"`
	EvacuationCenterStatus  CenterStatus `json:"evacuation_center_status"`
	EvacuationCenterManaged bool         `json:"evacuation_center_managed"`
	TimeExpired             bool         `json:"time_expired"`
	Casualties              int          `json:"casualties"`
	ResponseScore           int          `json:"response_score"`
}

// RecoveryRecord is built during phase 3
type RecoveryRecord struct {
	RDANACompleted               bool     `json:"rdana_completed"`
	InfrastructureTasksCompleted []string `json:"infrastructure_tasks_completed"`
	ReliefDistributed            bool     `json:"relief_distributed"`
	MedicalCareProvided          bool     `json:"medical_care_provided"`
	PsychosocialSupportProvided  bool     `json:"psychosocial_support_provided"`
	BuildBackBetterCommitted     bool     `json:"build_back_better_committed"`
	DRRMPlanUpdated              bool     `json:"drrm_plan_updated"`

	RecoveryScore int  `json:"recovery_score"`
	Finalized     bool `json:"finalized"`
}

// SessionRecord is the persisted state of the current playthrough
type SessionRecord struct {
	ID            string              `json:"id"`
	Phase         Phase               `json:"phase"`
	Scenario      ScenarioSelection   `json:"scenario"`
	Preparedness  *PreparednessRecord `json:"preparedness"`
	ResponseState *ResponseState      `json:"response_state,omitempty"`
	Response      *ResponseRecord     `json:"response"`
	Recovery      *RecoveryRecord     `json:"recovery"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// PreparednessUpdate is a partial phase-1 change. Nil fields are left alone.
type PreparednessUpdate struct {
	EvacuationCenterID *string `json:"evacuation_center_id,omitempty"`
	Budget             *int    `json:"budget,omitempty"`
	DrillsCompleted    *bool   `json:"drills_completed,omitempty"`
	RiskAssessmentDone *bool   `json:"risk_assessment_done,omitempty"`
	AlertUnderstood    *bool   `json:"alert_understood,omitempty"`
}

// RecoveryUpdate is a partial phase-3 change. Nil fields are left alone.
type RecoveryUpdate struct {
	RDANACompleted              *bool `json:"rdana_completed,omitempty"`
	ReliefDistributed           *bool `json:"relief_distributed,omitempty"`
	MedicalCareProvided         *bool `json:"medical_care_provided,omitempty"`
	PsychosocialSupportProvided *bool `json:"psychosocial_support_provided,omitempty"`
	BuildBackBetterCommitted    *bool `json:"build_back_better_committed,omitempty"`
	DRRMPlanUpdated             *bool `json:"drrm_plan_updated,omitempty"`
}

// HistoryEntry is one finished playthrough
type HistoryEntry struct {
	ID         string     `json:"id"`
	Timestamp  time.Time  `json:"timestamp"`
	Hazard     Hazard     `json:"hazard_type"`
	Difficulty Difficulty `json:"difficulty"`
	FinalScore int        `json:"final_score"`
}
