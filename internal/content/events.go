package content

import "github.com/user/drrm-simulator/internal/types"

func right(action, outcome string) types.EmergencyOption {
	return types.EmergencyOption{ActionText: action, OutcomeText: outcome, IsCorrect: true}
}

func wrong(action, outcome string) types.EmergencyOption {
	return types.EmergencyOption{ActionText: action, OutcomeText: outcome}
}

func defaultEventPools() map[types.Hazard][]types.EmergencyEvent {
	return map[types.Hazard][]types.EmergencyEvent{
		types.HazardTyphoon: {
			{
				ID: "evac1", Type: "Evacuation Decision", Severity: types.SeverityHigh,
				Description: "PAGASA Signal #4 is now in effect. Coastal residents are asking if they should evacuate now.",
				Options: []types.EmergencyOption{
					right("Order immediate mandatory evacuation of all coastal and low-lying areas",
						"Correct! Early evacuation saves lives. Residents moved to safety before peak storm."),
					wrong("Wait for Signal #5 before ordering evacuation",
						"Incorrect. Signal #5 doesn't exist. Delayed evacuation puts lives at risk!"),
					wrong("Let residents decide for themselves",
						"Incorrect. As DRRM Officer, you must issue clear evacuation orders per RA 10121."),
				},
			},
			{
				ID: "storm1", Type: "Storm Surge Warning", Severity: types.SeverityHigh,
				Description: "PAGASA warns of 2-3 meter storm surge in 2 hours. Some families refuse to leave their homes.",
				Options: []types.EmergencyOption{
					right("Coordinate with Barangay Tanods and PNP for forced evacuation",
						"Correct! Forced evacuation is legal when lives are in imminent danger (PD 1566)."),
					wrong("Respect their decision and leave them",
						"Incorrect. Storm surges are deadly - you must evacuate all residents from danger zones."),
				},
			},
			{
				ID: "rescue1", Type: "Rescue Request", Severity: types.SeverityHigh,
				Description: "Family is trapped on roof by rising floodwater. Strong winds make rescue dangerous.",
				Options: []types.EmergencyOption{
					right("Coordinate with BFP and AFP for rescue operation using appropriate equipment",
						"Correct! Professional rescue teams have training and equipment for dangerous conditions."),
					wrong("Send barangay tanods immediately without waiting",
						"Incorrect. Untrained rescuers in dangerous conditions may become victims themselves."),
				},
			},
			{
				ID: "hospital_power", Type: "Critical Infrastructure", Severity: types.SeverityHigh,
				Description: "District Hospital reports power failure. Generators are failing. Patients on life support at risk.",
				Options: []types.EmergencyOption{
					right("Prioritize fuel delivery and coordinate technical team from Electric Coop",
						"Correct! Securing power for critical lifeline facilities is a top priority."),
					wrong("Relocate all patients to the Barangay Hall",
						"Incorrect. Moving critical patients during a storm is extremely dangerous and facilities are inadequate."),
				},
			},
			{
				ID: "food_shortage", Type: "Relief Operations", Severity: types.SeverityMedium,
				Description: "Evacuees are increasing rapidly. Food stocks in the center are running low.",
				Options: []types.EmergencyOption{
					right("Request augmentation from DSWD and Municipal DRRMO",
						"Correct! Local government should request higher level support when local resources are insufficient."),
					wrong("Ask evacuees to go home and get food",
						"Incorrect. Sending people back to danger zones defeats the purpose of evacuation!"),
				},
			},
		},
		types.HazardEarthquake: {
			{
				ID: "aftershock1", Type: "Aftershock Warning", Severity: types.SeverityHigh,
				Description: "PHIVOLCS warns of strong aftershocks. People want to return home to get belongings.",
				Options: []types.EmergencyOption{
					right("Prohibit entry to damaged buildings until structural inspection",
						"Correct! Aftershocks can collapse weakened structures. Safety first per NDRRMC protocols."),
					wrong("Allow quick trips with escorts",
						"Incorrect. Even brief exposure to unstable buildings during aftershocks is extremely dangerous."),
				},
			},
			{
				ID: "quake_fire1", Type: "Fire Emergency", Severity: types.SeverityHigh,
				Description: "Electrical fire breaks out in damaged building due to exposed wires. Spreading quickly.",
				Options: []types.EmergencyOption{
					right("Immediately call BFP, evacuate adjacent houses, coordinate rescue with trained personnel",
						"Correct! Quick BFP response and systematic evacuation prevents fire from spreading."),
					wrong("Organize community bucket brigade to fight fire",
						"Incorrect. Large fires need professional firefighters. Focus on evacuation and rescue."),
				},
			},
			{
				ID: "collapse1", Type: "Structural Collapse", Severity: types.SeverityHigh,
				Description: "Part of the public market collapsed. Vendors may be trapped under the debris.",
				Options: []types.EmergencyOption{
					right("Cordon the area and deploy the AFP and BFP urban search-and-rescue teams",
						"Correct! Trained USAR teams know how to shore debris safely before extraction."),
					wrong("Let volunteers dig through the rubble by hand",
						"Incorrect. Untrained digging can cause secondary collapse and crush survivors."),
				},
			},
			{
				ID: "school_check", Type: "School Safety", Severity: types.SeverityMedium,
				Description: "Parents ask whether classes can resume tomorrow in the elementary school.",
				Options: []types.EmergencyOption{
					right("Suspend classes until engineers certify the building as safe",
						"Correct! Buildings must pass structural inspection before reoccupation."),
					wrong("Resume classes since the school looks undamaged",
						"Incorrect. Hidden cracks are common after strong shaking. Inspection comes first."),
				},
			},
			{
				ID: "tsunami_rumor", Type: "Misinformation", Severity: types.SeverityMedium,
				Description: "A rumor spreads on social media that a tsunami will hit in ten minutes.",
				Options: []types.EmergencyOption{
					right("Verify with PHIVOLCS and broadcast the official advisory",
						"Correct! Official, verified information stops panic and keeps people safe."),
					wrong("Ignore it, rumors always die down",
						"Incorrect. Unchecked rumors cause stampedes and unsafe self-evacuation."),
					wrong("Share the post so everyone is warned",
						"Incorrect. Spreading unverified warnings multiplies panic."),
				},
			},
		},
		types.HazardFlood: {
			{
				ID: "flood_rise", Type: "Rising Water", Severity: types.SeverityHigh,
				Description: "The river gauge passes critical level. Low-lying purok residents are still at home.",
				Options: []types.EmergencyOption{
					right("Order pre-emptive evacuation of all low-lying puroks now",
						"Correct! Pre-emptive evacuation before water peaks prevents drowning."),
					wrong("Wait until water enters houses before evacuating",
						"Incorrect. Flood water can rise a meter in minutes. Evacuate early."),
				},
			},
			{
				ID: "flood_crossing", Type: "Road Hazard", Severity: types.SeverityHigh,
				Description: "A jeepney driver wants to cross a flooded bridge to reach the evacuation center.",
				Options: []types.EmergencyOption{
					right("Close the bridge with PNP and reroute through higher ground",
						"Correct! Moving water 30 cm deep can sweep away a vehicle."),
					wrong("Let the jeepney cross slowly",
						"Incorrect. Vehicles are swept away in moving water. Never cross flooded roads."),
				},
			},
			{
				ID: "flood_rescue", Type: "Rescue Request", Severity: types.SeverityHigh,
				Description: "An elderly couple is stranded on their second floor as water keeps rising.",
				Options: []types.EmergencyOption{
					right("Dispatch the trained water rescue team with rubber boats and life vests",
						"Correct! Equipped rescuers can reach them safely."),
					wrong("Ask neighbors to swim over and help",
						"Incorrect. Swimming in flood water risks drowning, debris and disease."),
				},
			},
			{
				ID: "flood_health", Type: "Health Threat", Severity: types.SeverityMedium,
				Description: "Evacuees are wading through flood water. DOH warns of leptospirosis.",
				Options: []types.EmergencyOption{
					right("Coordinate with DOH for prophylaxis and boots distribution",
						"Correct! Preventive doxycycline and protective gear cut leptospirosis cases."),
					wrong("Wait for symptoms before acting",
						"Incorrect. Leptospirosis can be fatal. Prevention is the priority."),
				},
			},
			{
				ID: "flood_water", Type: "Relief Operations", Severity: types.SeverityMedium,
				Description: "The water system is contaminated. Evacuees are asking for drinking water.",
				Options: []types.EmergencyOption{
					right("Request potable water delivery and purification tablets from DSWD",
						"Correct! Safe drinking water prevents outbreaks in crowded centers."),
					wrong("Tell evacuees to boil flood water",
						"Incorrect. Flood water carries chemicals and sewage that boiling does not remove."),
				},
			},
		},
		types.HazardVolcano: {
			{
				ID: "eruption_level4", Type: "Alert Level 4 Raised", Severity: types.SeverityHigh,
				Description: "PHIVOLCS raises Alert Level to 4. Hazardous eruption imminent.",
				Options: []types.EmergencyOption{
					right("Issue immediate mandatory evacuation, coordinate transportation, activate all evacuation centers",
						"Correct! Alert Level 4 means eruption within hours to days - immediate action required!"),
					wrong("Prepare evacuation but wait for Level 5",
						"Incorrect. Alert Level 5 means eruption in progress - too late! Act at Level 4."),
				},
			},
			{
				ID: "ashfall1", Type: "Ashfall", Severity: types.SeverityMedium,
				Description: "Heavy ashfall blankets the barangay. Residents are coughing.",
				Options: []types.EmergencyOption{
					right("Distribute N95 masks and advise residents to stay indoors",
						"Correct! Volcanic ash damages lungs. Proper masks and shelter protect health."),
					wrong("Hand out wet cloth and continue outdoor work",
						"Incorrect. Cloth does not filter fine ash and outdoor exposure worsens harm."),
				},
			},
			{
				ID: "livestock1", Type: "Livelihood", Severity: types.SeverityMedium,
				Description: "Farmers want to go back inside the danger zone to retrieve their livestock.",
				Options: []types.EmergencyOption{
					right("Keep the danger zone closed and coordinate supervised animal rescue later",
						"Correct! Lives come first. Animal rescue happens only when PHIVOLCS allows it."),
					wrong("Allow farmers short visits during daylight",
						"Incorrect. Eruptions can happen without notice. No one enters the danger zone."),
				},
			},
			{
				ID: "lahar1", Type: "Lahar Threat", Severity: types.SeverityHigh,
				Description: "Heavy rain is falling on fresh ash deposits upstream of the river channels.",
				Options: []types.EmergencyOption{
					right("Evacuate communities along river channels immediately",
						"Correct! Rain on loose ash produces lahars that bury everything in their path."),
					wrong("Monitor the river and evacuate if it rises",
						"Incorrect. Lahars move fast and arrive with little warning."),
				},
			},
			{
				ID: "roadblock1", Type: "Traffic Control", Severity: types.SeverityLow,
				Description: "Sightseers are driving toward the volcano to take photos of the eruption.",
				Options: []types.EmergencyOption{
					right("Set up PNP checkpoints to turn back non-residents",
						"Correct! Checkpoints keep roads clear for evacuation and keep people safe."),
					wrong("Let them through, they will leave on their own",
						"Incorrect. Onlookers block evacuation routes and put themselves in danger."),
				},
			},
		},
		types.HazardLandslide: {
			{
				ID: "landslide1", Type: "Landslide Risk", Severity: types.SeverityHigh,
				Description: "Continuous rain saturating mountainside. Ground showing cracks. Houses at risk.",
				Options: []types.EmergencyOption{
					right("Immediately evacuate at-risk houses, coordinate with MGB and DENR for assessment",
						"Correct! Ground cracks are warning signs - evacuate before catastrophic failure."),
					wrong("Monitor situation and prepare to evacuate if landslide occurs",
						"Incorrect. Landslides happen in seconds - must evacuate at first warning signs!"),
				},
			},
			{
				ID: "landslide_road", Type: "Blocked Road", Severity: types.SeverityMedium,
				Description: "A slide has blocked the only road out of the upland sitio.",
				Options: []types.EmergencyOption{
					right("Request DPWH clearing equipment and coordinate AFP airlift for the sick",
						"Correct! Heavy equipment and air support restore access safely."),
					wrong("Have residents clear the debris by hand",
						"Incorrect. Slopes remain unstable and can slide again onto workers."),
				},
			},
			{
				ID: "landslide_buried", Type: "Search and Rescue", Severity: types.SeverityHigh,
				Description: "Two houses were buried. Neighbors hear voices under the mud.",
				Options: []types.EmergencyOption{
					right("Deploy trained SAR teams and monitor the slope for secondary slides",
						"Correct! Rescuers work safely with a spotter watching the slope."),
					wrong("Send everyone available to dig immediately",
						"Incorrect. A secondary slide could bury the rescuers too."),
				},
			},
			{
				ID: "landslide_spring", Type: "Warning Sign", Severity: types.SeverityMedium,
				Description: "Muddy water suddenly springs from the hillside above the chapel.",
				Options: []types.EmergencyOption{
					right("Evacuate the area below the hillside and report to MGB",
						"Correct! Sudden springs mean saturated soil - a slide may be imminent."),
					wrong("Clean the water channel and carry on",
						"Incorrect. New springs are a classic landslide precursor."),
				},
			},
			{
				ID: "landslide_return", Type: "Return Decision", Severity: types.SeverityLow,
				Description: "Rain has stopped. Evacuees want to go back to their hillside homes tonight.",
				Options: []types.EmergencyOption{
					right("Wait for MGB to declare the slope stable before allowing return",
						"Correct! Slopes stay unstable for days after heavy rain."),
					wrong("Allow return since the rain has stopped",
						"Incorrect. Many slides happen after the rain ends as water drains through soil."),
				},
			},
		},
		types.HazardFire: {
			{
				ID: "fire1", Type: "Urban Fire", Severity: types.SeverityHigh,
				Description: "Fire spreading rapidly in dense community. Strong winds. Multiple families trapped.",
				Options: []types.EmergencyOption{
					right("Immediately call BFP, evacuate adjacent houses, coordinate rescue with trained personnel",
						"Correct! Quick BFP response and systematic evacuation prevents fire from spreading."),
					wrong("Organize community bucket brigade to fight fire",
						"Incorrect. Large fires need professional firefighters. Focus on evacuation and rescue."),
				},
			},
			{
				ID: "fire_access", Type: "Blocked Access", Severity: types.SeverityHigh,
				Description: "Parked vehicles block the narrow alley the fire trucks need to enter.",
				Options: []types.EmergencyOption{
					right("Have PNP and tanods clear the fire lane and guide the trucks in",
						"Correct! Clear fire lanes let firefighters reach the blaze in time."),
					wrong("Tell the trucks to wait until owners move their cars",
						"Incorrect. Every minute of delay lets the fire spread to more houses."),
				},
			},
			{
				ID: "fire_lpg", Type: "Explosion Risk", Severity: types.SeverityHigh,
				Description: "Residents report LPG tanks inside houses next to the fire.",
				Options: []types.EmergencyOption{
					right("Widen the evacuation perimeter and inform BFP of the tank locations",
						"Correct! Exploding tanks can injure people far from the fire."),
					wrong("Ask residents to run in and carry the tanks out",
						"Incorrect. Entering houses near a fire risks lives for an avoidable hazard."),
				},
			},
			{
				ID: "fire_smoke", Type: "Medical Emergency", Severity: types.SeverityMedium,
				Description: "Several children at the covered court are coughing from smoke inhalation.",
				Options: []types.EmergencyOption{
					right("Move them upwind and call DOH medical teams for assessment",
						"Correct! Fresh air and medical screening prevent complications."),
					wrong("Give them water and keep them where they are",
						"Incorrect. Staying in smoke worsens inhalation injury."),
				},
			},
			{
				ID: "fire_displaced", Type: "Relief Operations", Severity: types.SeverityMedium,
				Description: "Forty families lost their homes and need shelter for the night.",
				Options: []types.EmergencyOption{
					right("Open the evacuation center and request family food packs from DSWD",
						"Correct! Shelter and relief for displaced families is the immediate priority."),
					wrong("Tell families to stay with relatives",
						"Incorrect. Not everyone has relatives nearby. The barangay must provide shelter."),
				},
			},
		},
	}
}
