package game

import (
	"github.com/user/drrm-simulator/internal/content"
	"github.com/user/drrm-simulator/internal/types"
)

// RecoveryScoreCap bounds the recovery score. The weights below sum to 125.
const RecoveryScoreCap = 100

const (
	rdanaPts           = 20
	reliefPts          = 15
	medicalPts         = 10
	psychosocialPts    = 10
	buildBackBetterPts = 10
	drrmPlanPts        = 10

	// MinInfrastructureTasks must be done before phase 3 can complete
	MinInfrastructureTasks = 2
)

// NewRecoveryRecord returns an empty phase-3 record
func NewRecoveryRecord() *types.RecoveryRecord {
	return &types.RecoveryRecord{InfrastructureTasksCompleted: make([]string, 0, len(content.InfrastructureTasks()))}
}

// CalculateRecoveryScore sums the weighted recovery tasks, clamped to RecoveryScoreCap
func CalculateRecoveryScore(rec types.RecoveryRecord) int {
	score := 0
	if rec.RDANACompleted {
		score += rdanaPts
	}
	for _, id := range rec.InfrastructureTasksCompleted {
		if task, ok := content.LookupInfrastructureTask(id); ok {
			score += task.Points
		}
	}
	if rec.ReliefDistributed {
		score += reliefPts
	}
	if rec.MedicalCareProvided {
		score += medicalPts
	}
	if rec.PsychosocialSupportProvided {
		score += psychosocialPts
	}
	if rec.BuildBackBetterCommitted {
		score += buildBackBetterPts
	}
	if rec.DRRMPlanUpdated {
		score += drrmPlanPts
	}
	return clamp(score, 0, RecoveryScoreCap)
}

// RecoveryGateSatisfied reports whether phase 3 may be completed
func RecoveryGateSatisfied(rec types.RecoveryRecord) bool {
	return rec.RDANACompleted &&
		rec.ReliefDistributed &&
		len(rec.InfrastructureTasksCompleted) >= MinInfrastructureTasks
}

// ToggleInfrastructureTask flips the completion of a restoration task
func ToggleInfrastructureTask(rec *types.RecoveryRecord, taskID string) error {
	if _, ok := content.LookupInfrastructureTask(taskID); !ok {
		return ErrUnknownTask
	}
	for i, id := range rec.InfrastructureTasksCompleted {
		if id == taskID {
			rec.InfrastructureTasksCompleted = append(rec.InfrastructureTasksCompleted[:i], rec.InfrastructureTasksCompleted[i+1:]...)
			return nil
		}
	}
	rec.InfrastructureTasksCompleted = append(rec.InfrastructureTasksCompleted, taskID)
	return nil
}

// FinalizeRecovery computes the score and freezes the record
func FinalizeRecovery(rec *types.RecoveryRecord) {
	rec.RecoveryScore = CalculateRecoveryScore(*rec)
	rec.Finalized = true
}

// AssessDamage builds the RDANA figures from the response outcome.
// Fewer than ten casualties counts as a contained disaster.
func AssessDamage(resp types.ResponseRecord) types.DamageAssessment {
	contained := resp.Casualties < 10

	a := types.DamageAssessment{
		HousesDamaged:     pick(contained, 45, 120),
		HousesDestroyed:   pick(contained, 5, 25),
		WaterSystem:       "Major damage",
		FamiliesAffected:  pick(contained, 250, 600),
		FamiliesEvacuated: pick(resp.EvacuationOrdered, 180, 50),
		Casualties:        resp.Casualties,
		Injuries:          resp.Casualties * 2,
		Missing:           pick(resp.EvacuationOrdered, 0, 3),
		FoodPacksNeeded:   pick(contained, 250, 600),
		HygieneKitsNeeded: 500,
		SheltersNeeded:    pick(contained, 25, 80),
		EvacuationCenter:  "Needs support",
	}
	if contained {
		a.WaterSystem = "Minor damage"
	}
	if resp.EvacuationCenterManaged {
		a.EvacuationCenter = "Well-managed"
	}
	return a
}

func pick(cond bool, yes, no int) int {
	if cond {
		return yes
	}
	return no
}
