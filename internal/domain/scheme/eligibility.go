package scheme

import (
	"math"

	"github.com/yojanasetu/portal-go/internal/domain/user"
)

func stringRuleActive(v string) bool {
	return v != "" && v != "Any"
}

// MatchPercentage scores a citizen profile against a scheme's eligibility
// rules. Each active rule counts toward the denominator; each satisfied
// rule toward the numerator. A scheme with no active rules matches everyone
// at 100. The result is rounded half-up to the nearest integer percent.
func MatchPercentage(rules Eligibility, profile user.Profile) int {
	matched := 0
	applicable := 0

	if rules.AgeMin > 0 || rules.AgeMax > 0 {
		applicable++
		ageMax := rules.AgeMax
		if ageMax == 0 {
			ageMax = 150
		}
		if profile.Age >= rules.AgeMin && profile.Age <= ageMax {
			matched++
		}
	}

	if rules.AnnualIncomeMax > 0 {
		applicable++
		if profile.AnnualIncome <= rules.AnnualIncomeMax {
			matched++
		}
	}

	if stringRuleActive(rules.State) {
		applicable++
		if rules.State == profile.State {
			matched++
		}
	}

	if stringRuleActive(rules.Gender) {
		applicable++
		if rules.Gender == profile.Gender {
			matched++
		}
	}

	if stringRuleActive(rules.CasteCategory) {
		applicable++
		if rules.CasteCategory == profile.CasteCategory {
			matched++
		}
	}

	if stringRuleActive(rules.Occupation) {
		applicable++
		if rules.Occupation == profile.Occupation {
			matched++
		}
	}

	if rules.RequiresBPL {
		applicable++
		if profile.IsBPL {
			matched++
		}
	}

	if rules.RequiresDisability {
		applicable++
		if profile.IsDisabled {
			matched++
		}
	}

	if rules.EducationLevelMin > 0 {
		applicable++
		if profile.EducationLevel >= rules.EducationLevelMin {
			matched++
		}
	}

	if applicable == 0 {
		return 100
	}

	return int(math.Round(float64(matched) / float64(applicable) * 100))
}
