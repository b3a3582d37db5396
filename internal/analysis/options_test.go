package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var educationOptions = []string{"High School", "Associate Degree", "Bachelor Degree", "Master Degree", "Doctorate"}

func TestBestOption_ExactMatchWins(t *testing.T) {
	assert.Equal(t, "Bachelor Degree", BestOption("Bachelor Degree", educationOptions))
}

func TestBestOption_CaseInsensitive(t *testing.T) {
	assert.Equal(t, "Master Degree", BestOption("master degree", educationOptions))
}

func TestBestOption_TokenSubset(t *testing.T) {
	assert.Equal(t, "Bachelor Degree", BestOption("Bachelor", educationOptions))
}

func TestBestOption_Substring(t *testing.T) {
	assert.Equal(t, "Doctorate", BestOption("doctor", educationOptions))
}

func TestBestOption_NoMatchReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", BestOption("Bootcamp", educationOptions))
	assert.Equal(t, "", BestOption("", educationOptions))
	assert.Equal(t, "", BestOption("Bachelor", nil))
}

func TestBestOption_ExactBeatsSubset(t *testing.T) {
	options := []string{"Data", "Data Analyst"}
	assert.Equal(t, "Data", BestOption("Data", options))
}

func TestCanonical(t *testing.T) {
	bands := []string{"0-1", "1-3", "3-5", "5-10", "10+"}
	assert.Equal(t, "1-3", Canonical("1-3 years", bands))
	assert.Equal(t, "1-3", Canonical("1-3", bands))
	assert.Equal(t, "veteran", Canonical("veteran", bands))
	assert.Equal(t, "", Canonical("", bands))
}
