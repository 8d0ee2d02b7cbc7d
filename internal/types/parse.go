package types

import (
	"errors"
	"strings"

	"github.com/agnivade/levenshtein"
)

var (
	ErrUnknownHazard     = errors.New("unknown hazard")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// hazardAliases maps display names and legacy keys onto hazards
var hazardAliases = map[string]Hazard{
	"bagyo":             HazardTyphoon,
	"typhoon (bagyo)":   HazardTyphoon,
	"quake":             HazardEarthquake,
	"flooding":          HazardFlood,
	"volcanic eruption": HazardVolcano,
	"volcanic_eruption": HazardVolcano,
	"eruption":          HazardVolcano,
	"urban fire":        HazardFire,
}

// ParseHazard resolves free text (persisted blobs, request bodies) to a hazard.
// Exact names win, then aliases, then the closest name within a small edit distance.
func ParseHazard(raw string) (Hazard, error) {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == "" {
		return "", ErrUnknownHazard
	}

	if h := Hazard(token); h.Valid() {
		return h, nil
	}
	if h, ok := hazardAliases[token]; ok {
		return h, nil
	}

	best := Hazard("")
	bestDist := -1
	for _, h := range Hazards {
		dist := levenshtein.ComputeDistance(token, string(h))
		if dist > levenshteinLimit(len(h)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = h, dist
		}
	}
	if bestDist < 0 {
		return "", ErrUnknownHazard
	}
	return best, nil
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// ParseDifficulty resolves a difficulty name, ignoring case and surrounding space
func ParseDifficulty(raw string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(raw)))
	if !d.Valid() {
		return "", ErrUnknownDifficulty
	}
	return d, nil
}
