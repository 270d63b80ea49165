package domain

import "fmt"

// Condition is the economic-condition label derived from inflation and real growth.
// The set of values is closed; see Conditions.
type Condition string

const (
	ConditionHyperinflation Condition = "Hyperinflation"
	ConditionOverheating    Condition = "Overheating"
	ConditionStagflation    Condition = "Stagflation"
	ConditionHealthyGrowth  Condition = "Healthy Growth"
	ConditionSteadyGrowth   Condition = "Steady Growth"
	ConditionRecession      Condition = "Recession"
	ConditionDeflation      Condition = "Deflation"
	ConditionOther          Condition = "Other"
	ConditionUnknown        Condition = "Unknown"
)

// Conditions lists every label in legend order.
var Conditions = []Condition{
	ConditionHyperinflation,
	ConditionOverheating,
	ConditionStagflation,
	ConditionHealthyGrowth,
	ConditionSteadyGrowth,
	ConditionRecession,
	ConditionDeflation,
	ConditionOther,
	ConditionUnknown,
}

// Index returns the position of c in Conditions, or -1.
func (c Condition) Index() int {
	for i, v := range Conditions {
		if v == c {
			return i
		}
	}
	return -1
}

// ParseCondition converts a persisted label back into a Condition.
func ParseCondition(s string) (Condition, error) {
	c := Condition(s)
	if c.Index() < 0 {
		return "", fmt.Errorf("unknown economic condition: %q", s)
	}
	return c, nil
}
