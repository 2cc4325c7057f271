package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yojanasetu/portal-go/internal/domain/user"
)

func TestMatchPercentage_NoRulesMatchesEveryone(t *testing.T) {
	score := MatchPercentage(Eligibility{}, user.Profile{Age: 30, State: "Kerala", Gender: "Male"})
	assert.Equal(t, 100, score)
}

func TestMatchPercentage_AllRulesSatisfied(t *testing.T) {
	rules := Eligibility{AgeMin: 18, AgeMax: 40, State: "Maharashtra"}
	profile := user.Profile{Age: 30, State: "Maharashtra", Gender: "Female"}

	assert.Equal(t, 100, MatchPercentage(rules, profile))
}

func TestMatchPercentage_HalfSatisfied(t *testing.T) {
	rules := Eligibility{AgeMin: 18, AgeMax: 40, State: "Maharashtra"}
	profile := user.Profile{Age: 50, State: "Maharashtra", Gender: "Female"}

	assert.Equal(t, 50, MatchPercentage(rules, profile))
}

func TestMatchPercentage_AnyIsInactive(t *testing.T) {
	rules := Eligibility{State: "Any", Gender: "Any", CasteCategory: "Any"}
	profile := user.Profile{Age: 25, State: "Goa", Gender: "Male"}

	// No active rules at all.
	assert.Equal(t, 100, MatchPercentage(rules, profile))
}

func TestMatchPercentage_AgeMaxDefaultsOpenEnded(t *testing.T) {
	rules := Eligibility{AgeMin: 60}
	young := user.Profile{Age: 40}
	old := user.Profile{Age: 99}

	assert.Equal(t, 0, MatchPercentage(rules, young))
	assert.Equal(t, 100, MatchPercentage(rules, old))
}

func TestMatchPercentage_AgeBoundsInclusive(t *testing.T) {
	rules := Eligibility{AgeMin: 18, AgeMax: 40}

	assert.Equal(t, 100, MatchPercentage(rules, user.Profile{Age: 18}))
	assert.Equal(t, 100, MatchPercentage(rules, user.Profile{Age: 40}))
	assert.Equal(t, 0, MatchPercentage(rules, user.Profile{Age: 17}))
	assert.Equal(t, 0, MatchPercentage(rules, user.Profile{Age: 41}))
}

func TestMatchPercentage_IncomeCeilingInclusive(t *testing.T) {
	rules := Eligibility{AnnualIncomeMax: 250000}

	assert.Equal(t, 100, MatchPercentage(rules, user.Profile{AnnualIncome: 250000}))
	assert.Equal(t, 0, MatchPercentage(rules, user.Profile{AnnualIncome: 250001}))
	// A zero income satisfies the ceiling.
	assert.Equal(t, 100, MatchPercentage(rules, user.Profile{}))
}

func TestMatchPercentage_BooleanRules(t *testing.T) {
	rules := Eligibility{RequiresBPL: true, RequiresDisability: true}

	assert.Equal(t, 100, MatchPercentage(rules, user.Profile{IsBPL: true, IsDisabled: true}))
	assert.Equal(t, 50, MatchPercentage(rules, user.Profile{IsBPL: true}))
	assert.Equal(t, 0, MatchPercentage(rules, user.Profile{}))
}

func TestMatchPercentage_EducationFloor(t *testing.T) {
	rules := Eligibility{EducationLevelMin: 3}

	assert.Equal(t, 100, MatchPercentage(rules, user.Profile{EducationLevel: 4}))
	assert.Equal(t, 100, MatchPercentage(rules, user.Profile{EducationLevel: 3}))
	assert.Equal(t, 0, MatchPercentage(rules, user.Profile{EducationLevel: 2}))
}

func TestMatchPercentage_Rounding(t *testing.T) {
	// 1 of 3 rules satisfied rounds 33.33 down, 2 of 3 rounds 66.67 up.
	rules := Eligibility{AgeMin: 18, State: "Punjab", Gender: "Female"}

	oneOfThree := user.Profile{Age: 20, State: "Kerala", Gender: "Male"}
	assert.Equal(t, 33, MatchPercentage(rules, oneOfThree))

	twoOfThree := user.Profile{Age: 20, State: "Punjab", Gender: "Male"}
	assert.Equal(t, 67, MatchPercentage(rules, twoOfThree))
}

func TestMatchPercentage_NineRuleFullHouse(t *testing.T) {
	rules := Eligibility{
		AgeMin:             18,
		AgeMax:             60,
		AnnualIncomeMax:    300000,
		State:              "Bihar",
		Gender:             "Female",
		CasteCategory:      "OBC",
		Occupation:         "Self-Employed",
		RequiresBPL:        true,
		RequiresDisability: true,
		EducationLevelMin:  2,
	}
	profile := user.Profile{
		Age:            35,
		AnnualIncome:   200000,
		State:          "Bihar",
		Gender:         "Female",
		CasteCategory:  "OBC",
		Occupation:     "Self-Employed",
		IsBPL:          true,
		IsDisabled:     true,
		EducationLevel: 3,
	}

	assert.Equal(t, 100, MatchPercentage(rules, profile))

	profile.State = "Odisha"
	// 8 of 9 rounds to 89.
	assert.Equal(t, 89, MatchPercentage(rules, profile))
}
