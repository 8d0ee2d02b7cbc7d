package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHazard(t *testing.T) {
	cases := map[string]Hazard{
		"typhoon":           HazardTyphoon,
		"  Earthquake ":     HazardEarthquake,
		"FIRE":              HazardFire,
		"volcanic_eruption": HazardVolcano,
		"Bagyo":             HazardTyphoon,
		"flooding":          HazardFlood,
		"typhon":            HazardTyphoon,
		"landslid":          HazardLandslide,
		"erthquake":         HazardEarthquake,
		"fir":               HazardFire,
	}

	for raw, want := range cases {
		got, err := ParseHazard(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestParseHazardRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "   ", "tsunami", "drought", "xx"} {
		_, err := ParseHazard(raw)
		assert.ErrorIs(t, err, ErrUnknownHazard, raw)
	}
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty(" Hard ")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, d)

	_, err = ParseDifficulty("nightmare")
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
}

func TestEnumsValid(t *testing.T) {
	for _, h := range Hazards {
		assert.True(t, h.Valid())
	}
	assert.False(t, Hazard("tsunami").Valid())
	assert.True(t, PhaseReport.Valid())
	assert.False(t, Phase("phase4").Valid())
}

func TestCurrentEvent(t *testing.T) {
	rs := ResponseState{Events: []EmergencyEvent{{ID: "a"}, {ID: "b"}}}
	require.NotNil(t, rs.CurrentEvent())
	assert.Equal(t, "a", rs.CurrentEvent().ID)

	rs.CurrentIndex = 2
	assert.Nil(t, rs.CurrentEvent())
}
