package types

// Grade is the letter grade for a final score
type Grade struct {
	Letter string `json:"letter"`
	Label  string `json:"label"`
}

// FeedbackCategory groups decision feedback by phase
type FeedbackCategory string

const (
	FeedbackPreparedness FeedbackCategory = "preparedness"
	FeedbackResponse     FeedbackCategory = "response"
	FeedbackRecovery     FeedbackCategory = "recovery"
)

// Feedback is a single correct decision or mistake
type Feedback struct {
	Category    FeedbackCategory `json:"category"`
	Text        string           `json:"text"`
	Correct     bool             `json:"correct"`
	Improvement string           `json:"improvement,omitempty"`
}

// Lesson is the historical case study for a hazard
type Lesson struct {
	RealWorld   string `json:"real_world"`
	Lesson      string `json:"lesson"`
	KeyTakeaway string `json:"key_takeaway"`
}

// DamageAssessment is the RDANA summary derived from the response outcome
type DamageAssessment struct {
	HousesDamaged     int    `json:"houses_damaged"`
	HousesDestroyed   int    `json:"houses_destroyed"`
	WaterSystem       string `json:"water_system"`
	FamiliesAffected  int    `json:"families_affected"`
	FamiliesEvacuated int    `json:"families_evacuated"`
	Casualties        int    `json:"casualties"`
	Injuries          int    `json:"injuries"`
	Missing           int    `json:"missing"`
	FoodPacksNeeded   int    `json:"food_packs_needed"`
	HygieneKitsNeeded int    `json:"hygiene_kits_needed"`
	SheltersNeeded    int    `json:"shelters_needed"`
	EvacuationCenter  string `json:"evacuation_center"`
}

// Report is the end-of-session summary
type Report struct {
	SessionID         string            `json:"session_id"`
	Scenario          ScenarioSelection `json:"scenario"`
	PreparednessScore int               `json:"preparedness_score"`
	ResponseScore     int               `json:"response_score"`
	RecoveryScore     int               `json:"recovery_score"`
	FinalScore        int               `json:"final_score"`
	Grade             Grade             `json:"grade"`
	CorrectDecisions  []Feedback        `json:"correct_decisions"`
	Mistakes          []Feedback        `json:"mistakes"`
	Lesson            Lesson            `json:"lesson"`
	Assessment        DamageAssessment  `json:"assessment"`
}
