package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/drrm-simulator/internal/content"
	"github.com/user/drrm-simulator/internal/types"
)

func correctIndex(ev *types.EmergencyEvent) int {
	for i, opt := range ev.Options {
		if opt.IsCorrect {
			return i
		}
	}
	return -1
}

func wrongIndex(ev *types.EmergencyEvent) int {
	for i, opt := range ev.Options {
		if !opt.IsCorrect {
			return i
		}
	}
	return -1
}

func newState(t *testing.T, hazard types.Hazard, difficulty types.Difficulty) types.ResponseState {
	t.Helper()
	rs := NewResponseState(content.DefaultLibrary(), types.ScenarioSelection{Hazard: hazard, Difficulty: difficulty}, NewShuffler(42))
	require.Equal(t, types.ResponseInProgress, rs.Status)
	return *rs
}

func rulesFor(d types.Difficulty, policy TimeoutPolicy) ResponseRules {
	return ResponseRules{Settings: SettingsFor(d), Timeout: policy}
}

func TestSettingsFor(t *testing.T) {
	tests := []struct {
		difficulty types.Difficulty
		count      int
		time       int
		initPanic  int
	}{
		{types.DifficultyEasy, 3, 300, 10},
		{types.DifficultyMedium, 4, 240, 20},
		{types.DifficultyHard, 5, 150, 40},
	}

	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			s := SettingsFor(tt.difficulty)
			assert.Equal(t, tt.count, s.EventCount)
			assert.Equal(t, tt.time, s.InitialTime)
			assert.Equal(t, tt.initPanic, s.InitialPanic)

			for _, hazard := range types.Hazards {
				rs := newState(t, hazard, tt.difficulty)
				assert.Len(t, rs.Events, tt.count, "hazard %s", hazard)
				assert.Equal(t, tt.time, rs.TimeRemaining)
				assert.Equal(t, tt.initPanic, rs.PublicPanic)
				assert.Equal(t, types.CenterIdle, rs.CenterStatus)
			}
		})
	}
}

func TestSeededDrawIsReproducible(t *testing.T) {
	scenario := types.ScenarioSelection{Hazard: types.HazardTyphoon, Difficulty: types.DifficultyHard}
	ids := func(seed int64) []string {
		rs := NewResponseState(content.DefaultLibrary(), scenario, NewShuffler(seed))
		out := make([]string, 0, len(rs.Events))
		for _, ev := range rs.Events {
			out = append(out, ev.ID)
		}
		return out
	}

	assert.Equal(t, ids(7), ids(7))

	// Some seed must produce a different order, otherwise the draw is not random
	differs := false
	for seed := int64(8); seed < 40 && !differs; seed++ {
		differs = !assert.ObjectsAreEqual(ids(7), ids(seed))
	}
	assert.True(t, differs)
}

func TestSelectEventsDoesNotModifyPool(t *testing.T) {
	pool := content.DefaultLibrary().Events(types.HazardFlood)
	before := append([]types.EmergencyEvent(nil), pool...)

	picked := SelectEvents(pool, 3, NewShuffler(1))
	assert.Len(t, picked, 3)
	assert.Equal(t, before, pool)

	all := SelectEvents(pool, 99, NewShuffler(1))
	assert.Len(t, all, len(pool))
}

func TestEmptyPoolFallsBackToTyphoon(t *testing.T) {
	lib := content.NewLibrary(map[types.Hazard][]types.EmergencyEvent{
		types.HazardTyphoon: content.DefaultLibrary().Events(types.HazardTyphoon),
	})
	rs := NewResponseState(lib, types.ScenarioSelection{Hazard: types.HazardFire, Difficulty: types.DifficultyEasy}, NewShuffler(3))

	require.Len(t, rs.Events, 3)
	for _, ev := range rs.Events {
		assert.Equal(t, types.HazardTyphoon, ev.Hazard)
	}
}

func TestNoEventsCompletesImmediately(t *testing.T) {
	lib := content.NewLibrary(nil)
	rs := NewResponseState(lib, types.ScenarioSelection{Hazard: types.HazardFire, Difficulty: types.DifficultyEasy}, NewShuffler(3))

	assert.Equal(t, types.ResponseComplete, rs.Status)
	assert.Equal(t, 0, FinalizeResponse(*rs, 80).ResponseScore)
}

func TestResolveCorrectAndIncorrect(t *testing.T) {
	rules := rulesFor(types.DifficultyMedium, TimeoutCue)

	// Test case 1: correct decision
	rs := newState(t, types.HazardEarthquake, types.DifficultyMedium)
	next, cues := ReduceResponse(rs, rules, ResponseAction{Kind: ActionResolveEvent, OptionIndex: correctIndex(rs.CurrentEvent())})
	assert.Equal(t, []types.Cue{types.CueSuccess}, cues)
	assert.Equal(t, 1, next.CorrectDecisionCount)
	assert.Equal(t, 1, next.EventsResolved)
	assert.Equal(t, 15, next.PublicPanic)
	require.NotNil(t, next.PendingOutcome)
	assert.True(t, next.PendingOutcome.Correct)
	assert.Equal(t, 0, next.CurrentIndex, "index only moves on advance")

	// Test case 2: incorrect decision
	next, cues = ReduceResponse(rs, rules, ResponseAction{Kind: ActionResolveEvent, OptionIndex: wrongIndex(rs.CurrentEvent())})
	assert.Equal(t, []types.Cue{types.CueError}, cues)
	assert.Equal(t, 0, next.CorrectDecisionCount)
	assert.Equal(t, 0, next.EventsResolved)
	assert.Equal(t, 30, next.PublicPanic)

	// Test case 3: the input state is untouched
	assert.Nil(t, rs.PendingOutcome)
	assert.Equal(t, 20, rs.PublicPanic)
	assert.Empty(t, rs.Log)
}

func TestResolveRefusals(t *testing.T) {
	rules := rulesFor(types.DifficultyEasy, TimeoutCue)
	rs := newState(t, types.HazardVolcano, types.DifficultyEasy)

	// Out of range option is a no-op
	next, cues := ReduceResponse(rs, rules, ResponseAction{Kind: ActionResolveEvent, OptionIndex: 9})
	assert.Nil(t, cues)
	assert.Equal(t, rs, next)

	// A second answer while the outcome is showing is a no-op
	next, _ = ReduceResponse(rs, rules, ResponseAction{Kind: ActionResolveEvent, OptionIndex: 0})
	again, cues := ReduceResponse(next, rules, ResponseAction{Kind: ActionResolveEvent, OptionIndex: 0})
	assert.Nil(t, cues)
	assert.Equal(t, next.CorrectDecisionCount, again.CorrectDecisionCount)
	assert.Equal(t, next.PublicPanic, again.PublicPanic)
}

func TestAdvanceMovesToCompletion(t *testing.T) {
	rules := rulesFor(types.DifficultyEasy, TimeoutCue)
	rs := newState(t, types.HazardFlood, types.DifficultyEasy)

	// Advance without an answer does nothing
	same, cues := ReduceResponse(rs, rules, ResponseAction{Kind: ActionAdvanceEvent})
	assert.Nil(t, cues)
	assert.Equal(t, 0, same.CurrentIndex)

	for i := 0; i < 3; i++ {
		rs, _ = ReduceResponse(rs, rules, ResponseAction{Kind: ActionResolveEvent, OptionIndex: correctIndex(rs.CurrentEvent())})
		var cues []types.Cue
		rs, cues = ReduceResponse(rs, rules, ResponseAction{Kind: ActionAdvanceEvent})
		if i < 2 {
			assert.Equal(t, []types.Cue{types.CueAlert}, cues)
			assert.Equal(t, types.ResponseInProgress, rs.Status)
		}
	}

	assert.Equal(t, types.ResponseComplete, rs.Status)
	assert.Nil(t, rs.CurrentEvent())
	assert.Equal(t, 3, rs.CorrectDecisionCount)

	// Completed state ignores every action
	after, cues := ReduceResponse(rs, rules, ResponseAction{Kind: ActionOrderEvacuation})
	assert.Nil(t, cues)
	assert.False(t, after.EvacuationOrdered)
}

func TestOrderEvacuationIsIdempotent(t *testing.T) {
	rules := rulesFor(types.DifficultyHard, TimeoutCue)
	rs := newState(t, types.HazardTyphoon, types.DifficultyHard)

	rs, cues := ReduceResponse(rs, rules, ResponseAction{Kind: ActionOrderEvacuation})
	assert.Equal(t, []types.Cue{types.CueClick}, cues)
	assert.True(t, rs.EvacuationOrdered)
	assert.Equal(t, types.CenterActive, rs.CenterStatus)
	assert.Equal(t, 30, rs.PublicPanic)

	again, cues := ReduceResponse(rs, rules, ResponseAction{Kind: ActionOrderEvacuation})
	assert.Nil(t, cues)
	assert.Equal(t, 30, again.PublicPanic)
}

func TestEvacuationPanicFloor(t *testing.T) {
	rs := newState(t, types.HazardTyphoon, types.DifficultyEasy)
	rs.PublicPanic = 4

	rs, _ = ReduceResponse(rs, rulesFor(types.DifficultyEasy, TimeoutCue), ResponseAction{Kind: ActionOrderEvacuation})
	assert.Equal(t, 0, rs.PublicPanic)
}

func TestContactAgency(t *testing.T) {
	rules := rulesFor(types.DifficultyMedium, TimeoutCue)
	rs := newState(t, types.HazardLandslide, types.DifficultyMedium)

	rs, cues := ReduceResponse(rs, rules, ResponseAction{Kind: ActionContactAgency, AgencyID: "BFP"})
	assert.Equal(t, []types.Cue{types.CueClick}, cues)
	rs, cues = ReduceResponse(rs, rules, ResponseAction{Kind: ActionContactAgency, AgencyID: "BFP"})
	assert.Nil(t, cues)
	rs, cues = ReduceResponse(rs, rules, ResponseAction{Kind: ActionContactAgency, AgencyID: "NASA"})
	assert.Nil(t, cues)

	assert.Equal(t, []string{"BFP"}, rs.AgenciesContacted)
	assert.Equal(t, 20, rs.PublicPanic, "contact has no numeric effect")
}

func TestPanicStaysInRange(t *testing.T) {
	for _, d := range []types.Difficulty{types.DifficultyEasy, types.DifficultyMedium, types.DifficultyHard} {
		rules := rulesFor(d, TimeoutCue)

		// All wrong pushes panic to the ceiling
		rs := newState(t, types.HazardTyphoon, d)
		for rs.Status == types.ResponseInProgress {
			rs, _ = ReduceResponse(rs, rules, ResponseAction{Kind: ActionResolveEvent, OptionIndex: wrongIndex(rs.CurrentEvent())})
			assert.GreaterOrEqual(t, rs.PublicPanic, 0)
			assert.LessOrEqual(t, rs.PublicPanic, 100)
			rs, _ = ReduceResponse(rs, rules, ResponseAction{Kind: ActionAdvanceEvent})
		}

		// Evacuation plus all correct drives it to the floor
		rs = newState(t, types.HazardTyphoon, d)
		rs, _ = ReduceResponse(rs, rules, ResponseAction{Kind: ActionOrderEvacuation})
		for rs.Status == types.ResponseInProgress {
			rs, _ = ReduceResponse(rs, rules, ResponseAction{Kind: ActionResolveEvent, OptionIndex: correctIndex(rs.CurrentEvent())})
			assert.GreaterOrEqual(t, rs.PublicPanic, 0)
			assert.LessOrEqual(t, rs.PublicPanic, 100)
			rs, _ = ReduceResponse(rs, rules, ResponseAction{Kind: ActionAdvanceEvent})
		}
	}
}

func TestCenterBecomesOverwhelmed(t *testing.T) {
	rules := rulesFor(types.DifficultyHard, TimeoutCue)
	rs := newState(t, types.HazardTyphoon, types.DifficultyHard)
	rs, _ = ReduceResponse(rs, rules, ResponseAction{Kind: ActionOrderEvacuation})
	rs.PublicPanic = 70

	rs, _ = ReduceResponse(rs, rules, ResponseAction{Kind: ActionResolveEvent, OptionIndex: wrongIndex(rs.CurrentEvent())})
	assert.Equal(t, 90, rs.PublicPanic)
	assert.Equal(t, types.CenterOverwhelmed, rs.CenterStatus)

	rs, _ = ReduceResponse(rs, rules, ResponseAction{Kind: ActionAdvanceEvent})
	rs.PublicPanic = 52
	rs, _ = ReduceResponse(rs, rules, ResponseAction{Kind: ActionResolveEvent, OptionIndex: correctIndex(rs.CurrentEvent())})
	assert.Equal(t, 49, rs.PublicPanic)
	assert.Equal(t, types.CenterActive, rs.CenterStatus)
}

func TestIdleCenterNeverOverwhelmed(t *testing.T) {
	rules := rulesFor(types.DifficultyHard, TimeoutCue)
	rs := newState(t, types.HazardTyphoon, types.DifficultyHard)
	rs.PublicPanic = 95

	rs, _ = ReduceResponse(rs, rules, ResponseAction{Kind: ActionResolveEvent, OptionIndex: wrongIndex(rs.CurrentEvent())})
	assert.Equal(t, types.CenterIdle, rs.CenterStatus)
}

func TestTimeoutCuePolicy(t *testing.T) {
	rules := rulesFor(types.DifficultyEasy, TimeoutCue)
	rs := newState(t, types.HazardFire, types.DifficultyEasy)
	rs.TimeRemaining = 2

	rs, cues := ReduceResponse(rs, rules, ResponseAction{Kind: ActionTick})
	assert.Nil(t, cues)
	assert.Equal(t, 1, rs.TimeRemaining)

	rs, cues = ReduceResponse(rs, rules, ResponseAction{Kind: ActionTick})
	assert.Equal(t, []types.Cue{types.CueAlert}, cues)
	assert.Equal(t, 0, rs.TimeRemaining)
	assert.True(t, rs.TimeExpired)
	assert.Equal(t, types.ResponseInProgress, rs.Status)

	// Further ticks do nothing and the events can still be answered
	rs, cues = ReduceResponse(rs, rules, ResponseAction{Kind: ActionTick})
	assert.Nil(t, cues)
	assert.Equal(t, 0, rs.TimeRemaining)
	rs, cues = ReduceResponse(rs, rules, ResponseAction{Kind: ActionResolveEvent, OptionIndex: correctIndex(rs.CurrentEvent())})
	assert.Equal(t, []types.Cue{types.CueSuccess}, cues)
}

func TestTimeoutForfeitPolicy(t *testing.T) {
	rules := rulesFor(types.DifficultyEasy, TimeoutForfeit)
	rs := newState(t, types.HazardFire, types.DifficultyEasy)

	// First event answered and its outcome still showing
	rs, _ = ReduceResponse(rs, rules, ResponseAction{Kind: ActionResolveEvent, OptionIndex: correctIndex(rs.CurrentEvent())})
	require.Equal(t, 0, rs.PublicPanic)
	rs.TimeRemaining = 1

	rs, cues := ReduceResponse(rs, rules, ResponseAction{Kind: ActionTick})
	assert.Equal(t, []types.Cue{types.CueAlert}, cues)
	assert.Equal(t, types.ResponseComplete, rs.Status)
	assert.True(t, rs.TimeExpired)
	assert.Nil(t, rs.PendingOutcome)
	assert.Equal(t, 1, rs.CorrectDecisionCount)
	// Two unanswered events at +5 each
	assert.Equal(t, 10, rs.PublicPanic)

	rec := FinalizeResponse(rs, 80)
	assert.Equal(t, 3, rec.TotalEvents)
	assert.True(t, rec.TimeExpired)
}

func TestLogIsCappedNewestFirst(t *testing.T) {
	rules := rulesFor(types.DifficultyHard, TimeoutCue)
	rs := newState(t, types.HazardTyphoon, types.DifficultyHard)

	rs, _ = ReduceResponse(rs, rules, ResponseAction{Kind: ActionOrderEvacuation})
	for _, agency := range content.Agencies() {
		rs, _ = ReduceResponse(rs, rules, ResponseAction{Kind: ActionContactAgency, AgencyID: agency.ID})
	}
	for rs.Status == types.ResponseInProgress {
		rs, _ = ReduceResponse(rs, rules, ResponseAction{Kind: ActionResolveEvent, OptionIndex: correctIndex(rs.CurrentEvent())})
		rs, _ = ReduceResponse(rs, rules, ResponseAction{Kind: ActionAdvanceEvent})
	}

	assert.Len(t, rs.Log, 10)
	assert.Contains(t, rs.Log[0], "Correct action taken")
}

func TestCalculateResponseScore(t *testing.T) {
	tests := []struct {
		name                                  string
		correct, total, publicPanic, agencies int
		want                                  int
	}{
		{"perfect fire on easy", 3, 3, 0, 3, 100},
		{"clamped high", 5, 5, 0, 5, 100},
		{"half right", 2, 4, 20, 1, 49},
		{"clamped low", 0, 5, 100, 0, 0},
		{"no events", 0, 0, 10, 2, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateResponseScore(tt.correct, tt.total, tt.publicPanic, tt.agencies))
		})
	}

	for correct := 0; correct <= 5; correct++ {
		for publicPanic := 0; publicPanic <= 100; publicPanic += 10 {
			for agencies := 0; agencies <= 5; agencies++ {
				score := CalculateResponseScore(correct, 5, publicPanic, agencies)
				assert.GreaterOrEqual(t, score, 0)
				assert.LessOrEqual(t, score, 100)
			}
		}
	}
}

func TestEstimateCasualties(t *testing.T) {
	tests := []struct {
		name       string
		prep       int
		evacuated  bool
		correct    int
		total      int
		casualties int
	}{
		{"well prepared", 70, true, 3, 3, 0},
		{"just under 70", 69, true, 3, 3, 10},
		{"exactly 50", 50, true, 3, 3, 10},
		{"just under 50", 49, true, 3, 3, 25},
		{"no evacuation", 80, false, 3, 3, 20},
		{"half correct is enough", 80, true, 2, 4, 0},
		{"under half correct", 80, true, 1, 4, 15},
		{"everything wrong is capped", 10, false, 0, 5, MaxCasualties},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateCasualties(tt.prep, tt.evacuated, tt.correct, tt.total)
			assert.Equal(t, tt.casualties, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, MaxCasualties)
		})
	}
}

func TestFireEasyEndToEnd(t *testing.T) {
	rules := rulesFor(types.DifficultyEasy, TimeoutCue)
	rs := newState(t, types.HazardFire, types.DifficultyEasy)
	require.Len(t, rs.Events, 3)
	assert.Equal(t, 300, rs.TimeRemaining)
	assert.Equal(t, 10, rs.PublicPanic)

	rs, _ = ReduceResponse(rs, rules, ResponseAction{Kind: ActionOrderEvacuation})
	for _, id := range []string{"BFP", "PNP", "DOH"} {
		rs, _ = ReduceResponse(rs, rules, ResponseAction{Kind: ActionContactAgency, AgencyID: id})
	}
	for rs.Status == types.ResponseInProgress {
		rs, _ = ReduceResponse(rs, rules, ResponseAction{Kind: ActionResolveEvent, OptionIndex: correctIndex(rs.CurrentEvent())})
		rs, _ = ReduceResponse(rs, rules, ResponseAction{Kind: ActionAdvanceEvent})
	}

	rec := FinalizeResponse(rs, 75)
	assert.Equal(t, 0, rec.PublicPanic)
	assert.Equal(t, 100, rec.PublicCompliance)
	assert.Equal(t, 100, rec.ResponseScore)
	assert.Equal(t, 0, rec.Casualties)
	assert.True(t, rec.EvacuationCenterManaged)
	assert.Equal(t, types.CenterActive, rec.EvacuationCenterStatus)
	assert.Equal(t, 3, rec.EventsResolved)
}
