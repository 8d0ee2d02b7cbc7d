package game

import (
	"fmt"
	"math"

	"github.com/user/drrm-simulator/internal/content"
	"github.com/user/drrm-simulator/internal/types"
)

const (
	preparednessWeight = 0.30
	responseWeight     = 0.40
	recoveryWeight     = 0.30

	// DefaultRecoveryEstimate stands in for the recovery score before phase 3 finalizes
	DefaultRecoveryEstimate = 80
)

// CalculateFinalScore weights the three phase scores 30/40/30
func CalculateFinalScore(preparedness, response, recovery int) int {
	score := float64(preparedness)*preparednessWeight +
		float64(response)*responseWeight +
		float64(recovery)*recoveryWeight
	return int(math.Round(score))
}

// EstimateFinalScore is the in-progress estimate with the default recovery value
func EstimateFinalScore(preparedness, response int) int {
	return CalculateFinalScore(preparedness, response, DefaultRecoveryEstimate)
}

// GradeFor maps a final score to its letter grade
func GradeFor(score int) types.Grade {
	switch {
	case score >= 90:
		return types.Grade{Letter: "A", Label: "Outstanding"}
	case score >= 80:
		return types.Grade{Letter: "B", Label: "Very Good"}
	case score >= 70:
		return types.Grade{Letter: "C", Label: "Good"}
	case score >= 60:
		return types.Grade{Letter: "D", Label: "Fair"}
	default:
		return types.Grade{Letter: "F", Label: "Needs Improvement"}
	}
}

// GenerateReport builds the end-of-session report. All three phases must be finalized.
func GenerateReport(record types.SessionRecord) (*types.Report, error) {
	if record.Preparedness == nil || !record.Preparedness.Finalized ||
		record.Response == nil || record.Recovery == nil || !record.Recovery.Finalized {
		return nil, ErrNoReport
	}
	prep, resp, recov := *record.Preparedness, *record.Response, *record.Recovery

	final := CalculateFinalScore(prep.PreparednessScore, resp.ResponseScore, recov.RecoveryScore)
	report := &types.Report{
		SessionID:         record.ID,
		Scenario:          record.Scenario,
		PreparednessScore: prep.PreparednessScore,
		ResponseScore:     resp.ResponseScore,
		RecoveryScore:     recov.RecoveryScore,
		FinalScore:        final,
		Grade:             GradeFor(final),
		CorrectDecisions:  make([]types.Feedback, 0),
		Mistakes:          make([]types.Feedback, 0),
		Lesson:            content.LessonFor(record.Scenario.Hazard),
		Assessment:        AssessDamage(resp),
	}

	for _, fb := range analyzeDecisions(prep, resp, recov) {
		if fb.Correct {
			report.CorrectDecisions = append(report.CorrectDecisions, fb)
		} else {
			report.Mistakes = append(report.Mistakes, fb)
		}
	}

	return report, nil
}

// analyzeDecisions evaluates the fixed, ordered feedback predicates
func analyzeDecisions(prep types.PreparednessRecord, resp types.ResponseRecord, recov types.RecoveryRecord) []types.Feedback {
	var out []types.Feedback
	good := func(cat types.FeedbackCategory, text string) {
		out = append(out, types.Feedback{Category: cat, Text: text, Correct: true})
	}
	bad := func(cat types.FeedbackCategory, text, improvement string) {
		out = append(out, types.Feedback{Category: cat, Text: text, Improvement: improvement})
	}

	if prep.PreparednessScore >= 70 {
		good(types.FeedbackPreparedness, "Excellent preparedness planning (Go Bags, drills, risk assessment)")
	} else {
		bad(types.FeedbackPreparedness, "Insufficient preparedness reduced effectiveness",
			"Always complete comprehensive preparedness: Go Bags, evacuation plans, drills, and risk assessments as required by RA 10121.")
	}

	switch n := len(prep.GoBagItems); {
	case n >= 8:
		good(types.FeedbackPreparedness, "Comprehensive Go Bags prepared following NDRRMC guidelines")
	case n < MinGoBagItems:
		bad(types.FeedbackPreparedness, "Go Bags were incomplete",
			"NDRRMC recommends Go Bags with at least 72-hour supplies: water, food, first aid, documents, flashlight, radio, and medicines.")
	}

	if prep.DrillsCompleted {
		good(types.FeedbackPreparedness, "Community drills conducted - resulted in orderly evacuation")
	}

	if resp.EvacuationOrdered {
		good(types.FeedbackResponse, "Timely evacuation orders issued - saved lives")
	} else {
		bad(types.FeedbackResponse, "Failed to issue evacuation orders",
			"As Barangay DRRM Officer, you must issue clear evacuation orders when advisories indicate danger (RA 10121, Section 12).")
	}

	if len(resp.AgenciesContacted) >= 4 {
		good(types.FeedbackResponse, "Excellent inter-agency coordination (BFP, PNP, DOH, etc.)")
	} else {
		bad(types.FeedbackResponse, "Limited coordination with emergency agencies",
			"NDRRMC framework emphasizes multi-agency coordination. Always work with BFP, PNP, AFP, DOH, and DSWD during disasters.")
	}

	switch {
	case resp.Casualties == 0:
		good(types.FeedbackResponse, "Zero casualties - outstanding life-saving actions!")
	case resp.Casualties < 5:
		good(types.FeedbackResponse, fmt.Sprintf("Minimal casualties (%d) - good response", resp.Casualties))
	default:
		bad(types.FeedbackResponse, fmt.Sprintf("%d casualties could have been prevented", resp.Casualties),
			"Better preparedness and earlier evacuation reduces casualties. Every life matters!")
	}

	if recov.BuildBackBetterCommitted {
		good(types.FeedbackRecovery, "Committed to Build Back Better - safer, more resilient reconstruction")
	} else {
		bad(types.FeedbackRecovery, "Rebuilt without Build Back Better standards",
			"Reconstruction should reduce future risk: stronger materials, safer locations, and hazard-resistant designs.")
	}

	if recov.DRRMPlanUpdated {
		good(types.FeedbackRecovery, "Barangay DRRM plan updated with lessons learned")
	} else {
		bad(types.FeedbackRecovery, "DRRM plan was not updated after the disaster",
			"Update the Barangay DRRM plan after every event so the next response is better (RA 10121, Section 12).")
	}

	return out
}
