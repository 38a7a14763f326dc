package smc

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vaclaims/ratings-api/internal/domain"
	"github.com/vaclaims/ratings-api/internal/domain/rating"
)

// HouseboundOtherThreshold is the combined rating the non-total conditions
// must reach, together with one 100% condition, for SMC-S. Inclusive.
const HouseboundOtherThreshold = 60

// Disclaimer is appended to every SMC result.
const Disclaimer = "SMC determinations are made by the VA on the full evidence of record. " +
	"Consult an accredited Veterans Service Officer, agent, or attorney before filing."

const noLevelRecommendation = "No SMC level was identified from the conditions provided. " +
	"If a condition involves loss of use, anatomical loss, or a need for aid and attendance, " +
	"make sure it is recorded with the matching flags."

// kQualifyingParts are the body parts whose loss or loss of use earns SMC-K.
var kQualifyingParts = map[domain.BodyPart]struct{}{
	domain.BodyPartHand:          {},
	domain.BodyPartFoot:          {},
	domain.BodyPartEye:           {},
	domain.BodyPartCreativeOrgan: {},
	domain.BodyPartButtocks:      {},
}

// substitutiveLevels pay the highest applicable rate, never a sum.
var substitutiveLevels = []domain.SMCLevel{
	domain.SMCLevelS,
	domain.SMCLevelL,
	domain.SMCLevelM,
	domain.SMCLevelO,
}

// Engine evaluates SMC eligibility against one year's rates.
type Engine struct {
	year  int
	rates Rates
}

// NewEngine returns an engine bound to year. It fails with
// domain.ErrUnknownYear when the table has no schedule for that year.
func NewEngine(table *RateTable, year int) (*Engine, error) {
	rates, err := table.Rates(year)
	if err != nil {
		return nil, err
	}
	return &Engine{year: year, rates: rates}, nil
}

// Year returns the rate year the engine prices against.
func (e *Engine) Year() int {
	return e.year
}

// findings accumulates what each rule discovered.
type findings struct {
	levels    map[domain.SMCLevel]bool
	potential map[domain.SMCLevel]bool
	kCount    int
	evidence  []domain.SMCEvidence
	explain   []string
	recommend []string
}

func (f *findings) grant(level domain.SMCLevel, explanation string) {
	f.levels[level] = true
	f.explain = append(f.explain, explanation)
}

func (f *findings) flag(level domain.SMCLevel, recommendation string) {
	f.potential[level] = true
	f.recommend = append(f.recommend, recommendation)
}

func (f *findings) cite(level domain.SMCLevel, condition, reason string) {
	f.evidence = append(f.evidence, domain.SMCEvidence{Level: level, ConditionName: condition, Reason: reason})
}

// Check evaluates conditions against every SMC tier. An empty or
// non-qualifying list is a valid result with Eligible set to false.
func (e *Engine) Check(conditions []domain.SMCCondition) domain.SMCEligibilityResult {
	f := &findings{
		levels:    map[domain.SMCLevel]bool{},
		potential: map[domain.SMCLevel]bool{},
	}

	var totals []domain.SMCCondition
	var others []domain.DisabilityRating
	for _, c := range conditions {
		if c.Rating == domain.MaxRating {
			totals = append(totals, c)
			continue
		}
		others = append(others, domain.DisabilityRating{Percentage: c.Rating, Description: c.Name})
	}
	combinedOther := rating.Combine(others).CombinedRounded

	checkK(f, conditions)
	checkS(f, totals, combinedOther)
	checkL(f, conditions)
	checkM(f, totals)
	oEligible := checkO(f, conditions)
	checkHigherTiers(f, conditions, oEligible)

	result := domain.SMCEligibilityResult{
		Levels:             orderedLevels(f.levels),
		PotentialLevels:    orderedLevels(f.potential),
		KCount:             f.kCount,
		CombinedOther:      combinedOther,
		EligibleConditions: f.evidence,
		Explanations:       f.explain,
		Recommendations:    f.recommend,
		Year:               e.year,
	}
	result.Eligible = len(result.Levels) > 0
	result.EstimatedMonthlyAddition = e.monthlyAddition(f)

	if result.EligibleConditions == nil {
		result.EligibleConditions = []domain.SMCEvidence{}
	}
	if result.Explanations == nil {
		result.Explanations = []string{}
	}
	if !result.Eligible && len(result.PotentialLevels) == 0 {
		result.Recommendations = append(result.Recommendations, noLevelRecommendation)
	}
	result.Recommendations = append(result.Recommendations, Disclaimer)

	return result
}

// monthlyAddition is K per instance plus the single highest of S, L, M, O.
func (e *Engine) monthlyAddition(f *findings) decimal.Decimal {
	total := e.rates.K.Mul(decimal.NewFromInt(int64(f.kCount)))

	best := decimal.Zero
	for _, level := range substitutiveLevels {
		if f.levels[level] {
			best = decimal.Max(best, e.rates.For(level))
		}
	}

	return total.Add(best).Round(2)
}

func checkK(f *findings, conditions []domain.SMCCondition) {
	for _, c := range conditions {
		if !c.HasLoss() {
			continue
		}
		if _, ok := kQualifyingParts[c.BodyPart]; !ok {
			continue
		}
		f.kCount++
		f.cite(domain.SMCLevelK, c.Name, fmt.Sprintf("%s of %s", lossKind(c), c.BodyPart))
	}
	if f.kCount > 0 {
		f.grant(domain.SMCLevelK, fmt.Sprintf(
			"SMC-K: %d qualifying loss or loss of use of a hand, foot, eye, creative organ, or buttocks. "+
				"K is paid once per instance in addition to any other SMC level.", f.kCount))
	}
}

func checkS(f *findings, totals []domain.SMCCondition, combinedOther int) {
	if len(totals) == 0 || combinedOther < HouseboundOtherThreshold {
		return
	}
	f.cite(domain.SMCLevelS, totals[0].Name, "rated 100%")
	f.grant(domain.SMCLevelS, fmt.Sprintf(
		"SMC-S (housebound): %s is rated 100%% and the remaining conditions combine to %d%%, "+
			"meeting the %d%% threshold.", totals[0].Name, combinedOther, HouseboundOtherThreshold))
}

func checkL(f *findings, conditions []domain.SMCCondition) {
	found := false
	for _, c := range conditions {
		switch {
		case c.RequiresAidAttendance:
			f.cite(domain.SMCLevelL, c.Name, "requires regular aid and attendance")
			found = true
		case c.IsHousebound:
			f.cite(domain.SMCLevelL, c.Name, "housebound")
			found = true
		}
	}
	if found {
		f.grant(domain.SMCLevelL,
			"SMC-L: a condition requires regular aid and attendance or renders the veteran housebound. "+
				"L and S are not paid together; the higher rate applies.")
	}
}

func checkM(f *findings, totals []domain.SMCCondition) {
	if len(totals) < 2 {
		return
	}
	for _, c := range totals {
		f.cite(domain.SMCLevelM, c.Name, "rated 100%")
	}
	f.grant(domain.SMCLevelM, fmt.Sprintf(
		"SMC-M: %d conditions are independently rated 100%%.", len(totals)))
}

func checkO(f *findings, conditions []domain.SMCCondition) bool {
	tally := tallyLimbs(conditions, func(c domain.SMCCondition) bool {
		return c.AnatomicalLoss && c.BodyPart.IsExtremity()
	})
	label, names, ok := tally.pairedExtremity()
	if !ok {
		return false
	}
	for _, name := range names {
		f.cite(domain.SMCLevelO, name, "anatomical loss of "+label)
	}
	f.grant(domain.SMCLevelO, "SMC-O: anatomical loss of "+label+".")
	return true
}

// checkHigherTiers flags N, R1 and R2 for adjudication.
func checkHigherTiers(f *findings, conditions []domain.SMCCondition, oEligible bool) {
	nPotential := false
	if !oEligible {
		tally := tallyLimbs(conditions, func(c domain.SMCCondition) bool {
			return c.HasLoss() && (c.BodyPart.IsExtremity() || c.BodyPart == domain.BodyPartEye)
		})
		_, _, paired := tally.pairedExtremity()
		if paired || tally[domain.BodyPartEye].pair() {
			nPotential = true
			f.flag(domain.SMCLevelN,
				"Potential SMC-N: loss or loss of use affecting paired extremities or both eyes. "+
					"The VA decides N on the level and severity of each loss; request a review of the evidence.")
		}
	}

	aid := false
	for _, c := range conditions {
		if c.RequiresAidAttendance {
			aid = true
			break
		}
	}
	if aid && (oEligible || nPotential) {
		f.flag(domain.SMCLevelR1,
			"Potential SMC-R1: an O or N level combined with a need for regular aid and attendance "+
				"may qualify for R.1. This is adjudicated case by case.")
		f.flag(domain.SMCLevelR2,
			"Potential SMC-R2: if the veteran needs a higher level of care provided by a licensed "+
				"health professional, R.2 may apply. Document the in-home care being received.")
	}
}

func orderedLevels(set map[domain.SMCLevel]bool) []domain.SMCLevel {
	levels := []domain.SMCLevel{}
	for _, l := range domain.AllSMCLevels() {
		if set[l] {
			levels = append(levels, l)
		}
	}
	return levels
}

func lossKind(c domain.SMCCondition) string {
	if c.AnatomicalLoss {
		return "anatomical loss"
	}
	return "loss of use"
}
