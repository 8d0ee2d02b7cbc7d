package content

import "github.com/user/drrm-simulator/internal/types"

// MaxGoBagItems is the capacity of a go bag
const MaxGoBagItems = 12

// Alert is the official advisory shown at the start of phase 1
type Alert struct {
	Agency   string `json:"agency"`
	Signal   string `json:"signal"`
	Advisory string `json:"advisory"`
}

// GoBagItem is a selectable go-bag supply
type GoBagItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Points   int    `json:"points"`
}

// EvacuationCenter is a selectable evacuation site
type EvacuationCenter struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	Readiness string `json:"readiness"`
	Points    int    `json:"points"`
}

// Agency is a responder that can be contacted in phase 2
type Agency struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// InfrastructureTask is a weighted phase-3 restoration task
type InfrastructureTask struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

// RiskProfile describes the community assessed in phase 1
type RiskProfile struct {
	Households      int      `json:"households"`
	VulnerableGroup string   `json:"vulnerable_groups"`
	Location        string   `json:"location"`
	Infrastructure  string   `json:"infrastructure"`
	Hazards         []string `json:"hazards"`
}

var goBagCatalog = []GoBagItem{
	{ID: "water", Name: "Bottled Water (3L per person)", Category: "essential", Points: 10},
	{ID: "food", Name: "Ready-to-eat Food (3-day supply)", Category: "essential", Points: 10},
	{ID: "firstaid", Name: "First Aid Kit", Category: "essential", Points: 10},
	{ID: "flashlight", Name: "Flashlight & Batteries", Category: "essential", Points: 8},
	{ID: "radio", Name: "Battery-powered Radio", Category: "essential", Points: 8},
	{ID: "whistle", Name: "Emergency Whistle", Category: "essential", Points: 6},
	{ID: "documents", Name: "Important Documents (Waterproof)", Category: "essential", Points: 10},
	{ID: "cash", Name: "Emergency Cash", Category: "essential", Points: 8},
	{ID: "medicine", Name: "Personal Medicines", Category: "essential", Points: 9},
	{ID: "clothes", Name: "Extra Clothes", Category: "comfort", Points: 5},
	{ID: "blanket", Name: "Blanket/Mat", Category: "comfort", Points: 5},
	{ID: "toiletries", Name: "Hygiene Items", Category: "comfort", Points: 6},
	{ID: "phone", Name: "Phone & Powerbank", Category: "communication", Points: 9},
	{ID: "rope", Name: "Rope/Cord", Category: "tools", Points: 4},
	{ID: "knife", Name: "Multi-tool/Swiss Knife", Category: "tools", Points: 4},
	{ID: "mask", Name: "Face Masks", Category: "health", Points: 7},
	{ID: "alcohol", Name: "Alcohol/Sanitizer", Category: "health", Points: 6},
}

var evacuationCenters = []EvacuationCenter{
	{ID: "school", Name: "Kiling Elementary School", Capacity: 500, Readiness: "Good", Points: 10},
	{ID: "hall", Name: "Barangay Hall & Covered Court", Capacity: 300, Readiness: "Fair", Points: 8},
	{ID: "church", Name: "Local Church/Chapel", Capacity: 200, Readiness: "Good", Points: 9},
	{ID: "gym", Name: "Municipal Gymnasium", Capacity: 800, Readiness: "Excellent", Points: 10},
}

var agencies = []Agency{
	{ID: "BFP", Name: "Bureau of Fire Protection"},
	{ID: "PNP", Name: "Philippine National Police"},
	{ID: "AFP", Name: "Armed Forces of the Philippines"},
	{ID: "DOH", Name: "Department of Health"},
	{ID: "DSWD", Name: "Department of Social Welfare and Development"},
}

var infrastructureTasks = []InfrastructureTask{
	{ID: "power", Name: "Restore Electricity", Description: "Coordinate with electric cooperative", Points: 15},
	{ID: "water", Name: "Restore Water Supply", Description: "Repair water system", Points: 15},
	{ID: "roads", Name: "Clear Roads & Debris", Description: "Remove obstacles for access", Points: 10},
	{ID: "comms", Name: "Restore Communications", Description: "Repair cell towers, radios", Points: 10},
}

// GoBagCatalog returns a copy of the go-bag item catalog
func GoBagCatalog() []GoBagItem {
	return append([]GoBagItem(nil), goBagCatalog...)
}

// LookupGoBagItem finds a catalog item by id
func LookupGoBagItem(id string) (GoBagItem, bool) {
	for _, item := range goBagCatalog {
		if item.ID == id {
			return item, true
		}
	}
	return GoBagItem{}, false
}

// EvacuationCenters returns a copy of the evacuation center catalog
func EvacuationCenters() []EvacuationCenter {
	return append([]EvacuationCenter(nil), evacuationCenters...)
}

// LookupEvacuationCenter finds an evacuation center by id
func LookupEvacuationCenter(id string) (EvacuationCenter, bool) {
	for _, center := range evacuationCenters {
		if center.ID == id {
			return center, true
		}
	}
	return EvacuationCenter{}, false
}

// Agencies returns the five responders available in phase 2
func Agencies() []Agency {
	return append([]Agency(nil), agencies...)
}

// IsAgency reports whether id names a known responder
func IsAgency(id string) bool {
	for _, a := range agencies {
		if a.ID == id {
			return true
		}
	}
	return false
}

// InfrastructureTasks returns the phase-3 restoration tasks
func InfrastructureTasks() []InfrastructureTask {
	return append([]InfrastructureTask(nil), infrastructureTasks...)
}

// LookupInfrastructureTask finds a restoration task by id
func LookupInfrastructureTask(id string) (InfrastructureTask, bool) {
	for _, task := range infrastructureTasks {
		if task.ID == id {
			return task, true
		}
	}
	return InfrastructureTask{}, false
}

// AlertFor returns the advisory for a hazard
func AlertFor(h types.Hazard) Alert {
	switch h {
	case types.HazardTyphoon:
		return Alert{
			Agency:   "PAGASA (Weather)",
			Signal:   "Signal #4 (Very Strong Typhoon)",
			Advisory: "A Super Typhoon is coming! Winds are very strong. The sea might rise (storm surge). Heavy rain is falling.",
		}
	case types.HazardEarthquake:
		return Alert{
			Agency:   "PHIVOLCS (Quakes)",
			Signal:   "Earthquake Alert",
			Advisory: "A very strong earthquake happened! Buildings might shake. Watch out for aftershocks (smaller shakes).",
		}
	case types.HazardFlood:
		return Alert{
			Agency:   "PAGASA (Weather)",
			Signal:   "Red Rainfall Warning",
			Advisory: "Too much rain! Floods are rising fast. Low places will be underwater.",
		}
	case types.HazardVolcano:
		return Alert{
			Agency:   "PHIVOLCS (Volcanoes)",
			Signal:   "Alert Level 4",
			Advisory: "The volcano might erupt (explode) soon! Dangerous ash and lava are coming.",
		}
	case types.HazardLandslide:
		return Alert{
			Agency:   "PAGASA & MGB",
			Signal:   "Landslide Warning",
			Advisory: "It rained too much on the mountains. The soil is soft and might slide down. Dangerous!",
		}
	case types.HazardFire:
		return Alert{
			Agency:   "BFP (Firefighters)",
			Signal:   "Fire Alarm",
			Advisory: "Big fire in the village! The wind is spreading the fire. Everyone must leave now!",
		}
	}
	return AlertFor(types.HazardTyphoon)
}

// LessonFor returns the historical case study for a hazard
func LessonFor(h types.Hazard) types.Lesson {
	switch h {
	case types.HazardTyphoon:
		return types.Lesson{
			RealWorld:   "Typhoon Yolanda (Haiyan) 2013",
			Lesson:      "Super Typhoon Yolanda caused massive storm surge casualties because many did not understand what \"storm surge\" meant. Early evacuation and clear communication saves lives.",
			KeyTakeaway: "PAGASA now uses Filipino terms and clearer warnings. \"Daluyong ng Dagat\" (storm surge) is now better understood.",
		}
	case types.HazardEarthquake:
		return types.Lesson{
			RealWorld:   "Bohol Earthquake 2013",
			Lesson:      "The magnitude 7.2 earthquake in Bohol showed the importance of earthquake drills and structural assessments. Many casualties occurred in old churches and buildings.",
			KeyTakeaway: "Regular \"Duck, Cover, Hold\" drills and building code compliance are critical in earthquake-prone areas.",
		}
	case types.HazardFlood:
		return types.Lesson{
			RealWorld:   "Ondoy Flooding 2009",
			Lesson:      "Tropical Storm Ondoy dumped a month's worth of rain in 6 hours, causing massive urban flooding. Many were trapped because they didn't expect such extreme rainfall.",
			KeyTakeaway: "PAGASA's rainfall warning system (Yellow, Orange, Red) helps communities prepare for different flood intensities.",
		}
	case types.HazardVolcano:
		return types.Lesson{
			RealWorld:   "Taal Volcano Eruption 2020",
			Lesson:      "Taal's phreatic eruption reminded us that volcanoes can erupt with little warning. PHIVOLCS alert levels must be heeded immediately.",
			KeyTakeaway: "Know your volcano alert levels: Level 4 means evacuate immediately, don't wait for Level 5 (eruption in progress).",
		}
	case types.HazardLandslide:
		return types.Lesson{
			RealWorld:   "Cherry Hills Landslide 1999",
			Lesson:      "The Cherry Hills landslide in Antipolo killed dozens. Heavy rainfall saturated slopes, causing catastrophic failure. Ground cracks are warning signs.",
			KeyTakeaway: "Evacuate immediately when ground cracks appear. Landslides happen in seconds - prevention through evacuation is key.",
		}
	case types.HazardFire:
		return types.Lesson{
			RealWorld:   "Urban Fires in Dense Communities",
			Lesson:      "Fires spread rapidly in densely populated informal settlements. Quick BFP response and community fire lanes save lives and property.",
			KeyTakeaway: "Fire prevention (no open flames, fire lanes, fire extinguishers) and early BFP notification are critical in urban areas.",
		}
	}
	return LessonFor(types.HazardTyphoon)
}

// RiskProfileFor returns the community profile used by the phase-1 risk assessment
func RiskProfileFor(h types.Hazard) RiskProfile {
	profile := RiskProfile{
		Households:      850,
		VulnerableGroup: "200 elderly, 150 children under 5",
		Infrastructure:  "Mostly light materials",
	}

	switch h {
	case types.HazardEarthquake:
		profile.Location = "Near an active fault line"
		profile.Hazards = []string{"Ground Shaking", "Building Collapse", "Fire"}
	case types.HazardFlood:
		profile.Location = "Riverside/Low-lying"
		profile.Hazards = []string{"Flash Flood", "River Overflow"}
	case types.HazardVolcano:
		profile.Location = "Within the 14-km danger zone"
		profile.Hazards = []string{"Ashfall", "Pyroclastic Flow", "Lahar"}
	case types.HazardLandslide:
		profile.Location = "Mountain slope"
		profile.Hazards = []string{"Landslide", "Flash Flood"}
	case types.HazardFire:
		profile.Location = "Dense urban settlement"
		profile.Hazards = []string{"Fire Spread", "Smoke Inhalation"}
	default:
		profile.Location = "Coastal/Low-lying"
		profile.Hazards = []string{"Flooding", "Storm Surge"}
	}

	return profile
}
