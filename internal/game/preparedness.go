package game

import (
	"math"

	"github.com/user/drrm-simulator/internal/content"
	"github.com/user/drrm-simulator/internal/types"
)

const (
	goBagWeight       = 0.4
	goBagCap          = 40.0
	riskAssessmentPts = 15
	alertPts          = 10
	drillsPts         = 10

	// Budget thresholds and their points
	budgetFull    = 50000
	budgetPartial = 30000

	// BudgetStep and BudgetMax bound the budget slider
	BudgetStep = 10000
	BudgetMax  = 100000

	// MinGoBagItems is the smallest bag that may leave phase 1
	MinGoBagItems = 5
)

// BudgetBreakdown is how an allocated budget is spent
type BudgetBreakdown struct {
	Supplies         int `json:"supplies"`
	CenterOperations int `json:"center_operations"`
	ResponseTeam     int `json:"response_team"`
}

// NewPreparednessRecord returns an empty phase-1 record
func NewPreparednessRecord() *types.PreparednessRecord {
	return &types.PreparednessRecord{GoBagItems: make([]string, 0, content.MaxGoBagItems)}
}

// CalculatePreparednessScore computes the 0-100 preparedness score. It is pure.
func CalculatePreparednessScore(rec types.PreparednessRecord) int {
	score := 0.0

	bagPoints := 0
	for _, id := range rec.GoBagItems {
		if item, ok := content.LookupGoBagItem(id); ok {
			bagPoints += item.Points
		}
	}
	score += math.Min(float64(bagPoints)*goBagWeight, goBagCap)

	if rec.EvacuationCenterID != "" {
		if center, ok := content.LookupEvacuationCenter(rec.EvacuationCenterID); ok {
			score += float64(center.Points)
		}
	}

	if rec.RiskAssessmentDone {
		score += riskAssessmentPts
	}
	if rec.AlertUnderstood {
		score += alertPts
	}
	if rec.DrillsCompleted {
		score += drillsPts
	}

	switch {
	case rec.BudgetAllocated >= budgetFull:
		score += 10
	case rec.BudgetAllocated >= budgetPartial:
		score += 5
	}

	return clamp(int(math.Round(score)), 0, 100)
}

// PreparednessGateSatisfied reports whether phase 1 may be completed
func PreparednessGateSatisfied(rec types.PreparednessRecord) bool {
	return len(rec.GoBagItems) >= MinGoBagItems &&
		rec.EvacuationCenterID != "" &&
		rec.AlertUnderstood &&
		rec.RiskAssessmentDone
}

// ToggleGoBagItem removes the item if packed, otherwise packs it
func ToggleGoBagItem(rec *types.PreparednessRecord, itemID string) error {
	if _, ok := content.LookupGoBagItem(itemID); !ok {
		return ErrUnknownItem
	}

	for i, id := range rec.GoBagItems {
		if id == itemID {
			rec.GoBagItems = append(rec.GoBagItems[:i], rec.GoBagItems[i+1:]...)
			return nil
		}
	}

	if len(rec.GoBagItems) >= content.MaxGoBagItems {
		return ErrBagFull
	}
	rec.GoBagItems = append(rec.GoBagItems, itemID)
	return nil
}

// NormalizeBudget clamps an amount to the slider range and snaps it to the step
func NormalizeBudget(amount int) int {
	amount = clamp(amount, 0, BudgetMax)
	return (amount + BudgetStep/2) / BudgetStep * BudgetStep
}

// SplitBudget divides a budget 40/30/30
func SplitBudget(amount int) BudgetBreakdown {
	return BudgetBreakdown{
		Supplies:         int(math.Round(float64(amount) * 0.4)),
		CenterOperations: int(math.Round(float64(amount) * 0.3)),
		ResponseTeam:     int(math.Round(float64(amount) * 0.3)),
	}
}

// FinalizePreparedness computes the score and freezes the record
func FinalizePreparedness(rec *types.PreparednessRecord) {
	rec.PreparednessScore = CalculatePreparednessScore(*rec)
	rec.Finalized = true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
