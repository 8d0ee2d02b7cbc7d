package game

import (
	"fmt"
	"math"

	"github.com/user/drrm-simulator/internal/content"
	"github.com/user/drrm-simulator/internal/types"
)

// TimeoutPolicy decides what happens when the phase-2 countdown reaches zero
type TimeoutPolicy string

const (
	// TimeoutCue only flags the expiry and signals an alert
	TimeoutCue TimeoutPolicy = "cue"
	// TimeoutForfeit fails every unanswered event and completes the phase
	TimeoutForfeit TimeoutPolicy = "forfeit"
)

const (
	evacuationPanicRelief = 10
	panicPenaltyWeight    = 0.3
	agencyBonus           = 5
	maxLogEntries         = 10

	overwhelmedPanic = 80
	recoveredPanic   = 50

	MaxCasualties = 50
)

// DifficultySettings is the fixed tuning for one difficulty
type DifficultySettings struct {
	EventCount   int `json:"event_count"`
	InitialTime  int `json:"initial_time"`
	InitialPanic int `json:"initial_panic"`
	PanicRelief  int `json:"panic_relief"`
	PanicPenalty int `json:"panic_penalty"`
}

// SettingsFor returns the tuning for d; unknown values get medium
func SettingsFor(d types.Difficulty) DifficultySettings {
	switch d {
	case types.DifficultyEasy:
		return DifficultySettings{EventCount: 3, InitialTime: 300, InitialPanic: 10, PanicRelief: 10, PanicPenalty: 5}
	case types.DifficultyHard:
		return DifficultySettings{EventCount: 5, InitialTime: 150, InitialPanic: 40, PanicRelief: 3, PanicPenalty: 20}
	default:
		return DifficultySettings{EventCount: 4, InitialTime: 240, InitialPanic: 20, PanicRelief: 5, PanicPenalty: 10}
	}
}

// ResponseRules parameterizes the reducer
type ResponseRules struct {
	Settings DifficultySettings
	Timeout  TimeoutPolicy
}

// ActionKind names a phase-2 action
type ActionKind string

const (
	ActionTick            ActionKind = "tick"
	ActionResolveEvent    ActionKind = "resolve_event"
	ActionAdvanceEvent    ActionKind = "advance_event"
	ActionOrderEvacuation ActionKind = "order_evacuation"
	ActionContactAgency   ActionKind = "contact_agency"
)

// ResponseAction is a discrete input to ReduceResponse
type ResponseAction struct {
	Kind        ActionKind
	OptionIndex int
	AgencyID    string
}

// SelectEvents shuffles a copy of pool and takes up to count events
func SelectEvents(pool []types.EmergencyEvent, count int, shuffler *Shuffler) []types.EmergencyEvent {
	events := append([]types.EmergencyEvent(nil), pool...)
	shuffler.Shuffle(len(events), func(i, j int) {
		events[i], events[j] = events[j], events[i]
	})
	if count < len(events) {
		events = events[:count]
	}
	return events
}

// NewResponseState draws the session's events and moves straight to in-progress
func NewResponseState(library *content.Library, scenario types.ScenarioSelection, shuffler *Shuffler) *types.ResponseState {
	settings := SettingsFor(scenario.Difficulty)
	state := &types.ResponseState{Status: types.ResponseLoading}

	state.Events = SelectEvents(library.Events(scenario.Hazard), settings.EventCount, shuffler)
	state.TimeRemaining = settings.InitialTime
	state.PublicPanic = settings.InitialPanic
	state.CenterStatus = types.CenterIdle
	state.AgenciesContacted = make([]string, 0, len(content.Agencies()))
	state.Log = make([]string, 0, maxLogEntries)

	state.Status = types.ResponseInProgress
	if len(state.Events) == 0 {
		state.Status = types.ResponseComplete
	}
	return state
}

// ReduceResponse applies one action and returns the new state plus any cues to signal.
// The input state is not modified.
func ReduceResponse(state types.ResponseState, rules ResponseRules, action ResponseAction) (types.ResponseState, []types.Cue) {
	if state.Status != types.ResponseInProgress {
		return state, nil
	}
	next := copyResponseState(state)

	switch action.Kind {
	case ActionTick:
		return reduceTick(next, rules)
	case ActionResolveEvent:
		return reduceResolve(next, rules, action.OptionIndex)
	case ActionAdvanceEvent:
		return reduceAdvance(next)
	case ActionOrderEvacuation:
		if next.EvacuationOrdered {
			return state, nil
		}
		next.EvacuationOrdered = true
		next.CenterStatus = types.CenterActive
		next.PublicPanic = clamp(next.PublicPanic-evacuationPanicRelief, 0, 100)
		appendLog(&next, "Evacuation order issued successfully")
		return next, []types.Cue{types.CueClick}
	case ActionContactAgency:
		if !content.IsAgency(action.AgencyID) || containsString(next.AgenciesContacted, action.AgencyID) {
			return state, nil
		}
		next.AgenciesContacted = append(next.AgenciesContacted, action.AgencyID)
		appendLog(&next, fmt.Sprintf("Coordinated with %s", action.AgencyID))
		return next, []types.Cue{types.CueClick}
	}

	return state, nil
}

func reduceTick(next types.ResponseState, rules ResponseRules) (types.ResponseState, []types.Cue) {
	if next.TimeRemaining <= 0 {
		return next, nil
	}
	next.TimeRemaining--
	if next.TimeRemaining > 0 {
		return next, nil
	}

	next.TimeExpired = true
	appendLog(&next, "Time is up")
	if rules.Timeout == TimeoutForfeit {
		first := next.CurrentIndex
		if next.PendingOutcome != nil {
			first++
		}
		for i := first; i < len(next.Events); i++ {
			applyPanic(&next, rules, false)
			appendLog(&next, fmt.Sprintf("%s: No action taken", next.Events[i].Type))
		}
		next.PendingOutcome = nil
		next.CurrentIndex = len(next.Events)
		next.Status = types.ResponseComplete
	}
	return next, []types.Cue{types.CueAlert}
}

func reduceResolve(next types.ResponseState, rules ResponseRules, optionIndex int) (types.ResponseState, []types.Cue) {
	event := next.CurrentEvent()
	if event == nil || next.PendingOutcome != nil {
		return next, nil
	}
	if optionIndex < 0 || optionIndex >= len(event.Options) {
		return next, nil
	}
	option := event.Options[optionIndex]

	next.PendingOutcome = &types.DecisionOutcome{
		EventID:     event.ID,
		OptionIndex: optionIndex,
		OutcomeText: option.OutcomeText,
		Correct:     option.IsCorrect,
	}

	applyPanic(&next, rules, option.IsCorrect)
	if option.IsCorrect {
		next.CorrectDecisionCount++
		next.EventsResolved++
		appendLog(&next, fmt.Sprintf("%s: Correct action taken", event.Type))
		return next, []types.Cue{types.CueSuccess}
	}

	appendLog(&next, fmt.Sprintf("%s: Suboptimal decision", event.Type))
	return next, []types.Cue{types.CueError}
}

func reduceAdvance(next types.ResponseState) (types.ResponseState, []types.Cue) {
	if next.PendingOutcome == nil {
		return next, nil
	}
	next.PendingOutcome = nil
	next.CurrentIndex++
	if next.CurrentIndex >= len(next.Events) {
		next.Status = types.ResponseComplete
		return next, nil
	}
	return next, []types.Cue{types.CueAlert}
}

func applyPanic(rs *types.ResponseState, rules ResponseRules, correct bool) {
	if correct {
		rs.PublicPanic = clamp(rs.PublicPanic-rules.Settings.PanicRelief, 0, 100)
	} else {
		rs.PublicPanic = clamp(rs.PublicPanic+rules.Settings.PanicPenalty, 0, 100)
	}

	switch {
	case rs.CenterStatus == types.CenterActive && rs.PublicPanic >= overwhelmedPanic:
		rs.CenterStatus = types.CenterOverwhelmed
	case rs.CenterStatus == types.CenterOverwhelmed && rs.PublicPanic < recoveredPanic:
		rs.CenterStatus = types.CenterActive
	}
}

// CalculateResponseScore is the 0-100 decision score less panic plus coordination
func CalculateResponseScore(correct, total, panic, agencies int) int {
	base := 0.0
	if total > 0 {
		base = float64(correct) / float64(total) * 100
	}
	score := base - float64(panic)*panicPenaltyWeight + float64(agencies*agencyBonus)
	score = math.Max(0, math.Min(100, score))
	return int(math.Round(score))
}

// EstimateCasualties derives the casualty count from preparedness and response
func EstimateCasualties(preparednessScore int, evacuationOrdered bool, correct, total int) int {
	casualties := 0
	if preparednessScore < 50 {
		casualties += 15
	}
	if preparednessScore < 70 {
		casualties += 10
	}
	if !evacuationOrdered {
		casualties += 20
	}
	if float64(correct) < float64(total)*0.5 {
		casualties += 15
	}
	return clamp(casualties, 0, MaxCasualties)
}

// FinalizeResponse turns a completed phase-2 state into its record
func FinalizeResponse(state types.ResponseState, preparednessScore int) *types.ResponseRecord {
	total := len(state.Events)
	return &types.ResponseRecord{
		EvacuationOrdered:       state.EvacuationOrdered,
		AgenciesContacted:       append([]string(nil), state.AgenciesContacted...),
		EventsResolved:          state.EventsResolved,
		CorrectDecisionCount:    state.CorrectDecisionCount,
		TotalEvents:             total,
		PublicPanic:             state.PublicPanic,
		PublicCompliance:        100 - state.PublicPanic,
		EvacuationCenterStatus:  state.CenterStatus,
		EvacuationCenterManaged: state.CenterStatus != types.CenterIdle,
		TimeExpired:             state.TimeExpired,
		Casualties:              EstimateCasualties(preparednessScore, state.EvacuationOrdered, state.CorrectDecisionCount, total),
		ResponseScore:           CalculateResponseScore(state.CorrectDecisionCount, total, state.PublicPanic, len(state.AgenciesContacted)),
	}
}

func appendLog(rs *types.ResponseState, line string) {
	rs.Log = append([]string{line}, rs.Log...)
	if len(rs.Log) > maxLogEntries {
		rs.Log = rs.Log[:maxLogEntries]
	}
}

func copyResponseState(rs types.ResponseState) types.ResponseState {
	out := rs
	out.Events = append(make([]types.EmergencyEvent, 0, len(rs.Events)), rs.Events...)
	out.AgenciesContacted = append(make([]string, 0, len(rs.AgenciesContacted)), rs.AgenciesContacted...)
	out.Log = append(make([]string, 0, len(rs.Log)), rs.Log...)
	if rs.PendingOutcome != nil {
		pending := *rs.PendingOutcome
		out.PendingOutcome = &pending
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
