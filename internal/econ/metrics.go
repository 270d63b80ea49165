package econ

import (
	"math"

	"econmap/internal/domain"
)

// RealGrowth deflates nominal growth g by inflation i (both percent):
// ((1 + g/100) / (1 + i/100) - 1) * 100. Null operands, and i = -100,
// give null.
func RealGrowth(g, i *float64) *float64 {
	if g == nil || i == nil {
		return nil
	}
	denom := 1 + *i/100
	if denom == 0 {
		return nil
	}
	v := ((1+*g/100)/denom - 1) * 100
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

type conditionRule struct {
	match func(inf, gdp float64) bool
	label domain.Condition
}

// conditionRules are evaluated in order; the first match wins. Inflation
// above 5 with real growth in [1, 5] matches nothing and ends up Other.
var conditionRules = []conditionRule{
	{func(inf, _ float64) bool { return inf > 100 }, domain.ConditionHyperinflation},
	{func(inf, _ float64) bool { return inf < 0 }, domain.ConditionDeflation},
	{func(inf, gdp float64) bool { return inf > 5 && gdp < 1 }, domain.ConditionStagflation},
	{func(inf, gdp float64) bool { return inf > 5 && gdp > 5 }, domain.ConditionOverheating},
	{func(inf, gdp float64) bool { return inf >= 0 && inf <= 5 && gdp > 3 }, domain.ConditionHealthyGrowth},
	{func(inf, gdp float64) bool { return inf >= 0 && inf <= 5 && gdp > 0 && gdp <= 3 }, domain.ConditionSteadyGrowth},
	{func(_, gdp float64) bool { return gdp <= 0 }, domain.ConditionRecession},
}

// Classify labels a row from its inflation and real growth.
func Classify(inflation, realGrowth *float64) domain.Condition {
	if inflation == nil || realGrowth == nil {
		return domain.ConditionUnknown
	}
	for _, rule := range conditionRules {
		if rule.match(*inflation, *realGrowth) {
			return rule.label
		}
	}
	return domain.ConditionOther
}

// Derive fills Real_GDP_Growth and Economic_Condition on every row.
func Derive(rows []domain.EnrichedRecord) {
	for i := range rows {
		rows[i].RealGDPGrowth = RealGrowth(rows[i].GDPGrowth, rows[i].Inflation)
		rows[i].Condition = Classify(rows[i].Inflation, rows[i].RealGDPGrowth)
	}
}
