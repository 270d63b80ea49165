package econ_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econmap/internal/domain"
	"econmap/internal/econ"
)

func f(v float64) *float64 { return domain.Float(v) }

func TestRealGrowth(t *testing.T) {
	got := econ.RealGrowth(f(10), f(5))
	require.NotNil(t, got)
	assert.InDelta(t, 4.7619, *got, 1e-4)

	zero := econ.RealGrowth(f(5), f(5))
	require.NotNil(t, zero)
	assert.InDelta(t, 0, *zero, 1e-12)

	assert.Nil(t, econ.RealGrowth(nil, f(5)))
	assert.Nil(t, econ.RealGrowth(f(5), nil))
	assert.Nil(t, econ.RealGrowth(f(5), f(-100)), "zero denominator")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		inf  *float64
		gdp  *float64
		want domain.Condition
	}{
		{"null inflation", nil, f(3), domain.ConditionUnknown},
		{"null growth", f(3), nil, domain.ConditionUnknown},
		{"hyperinflation ignores growth", f(150), f(20), domain.ConditionHyperinflation},
		{"hyperinflation with recession", f(150), f(-20), domain.ConditionHyperinflation},
		{"inflation 100 is not hyper", f(100), f(-2), domain.ConditionStagflation},
		{"deflation", f(-0.5), f(10), domain.ConditionDeflation},
		{"stagflation", f(8), f(0.5), domain.ConditionStagflation},
		{"overheating", f(8), f(6), domain.ConditionOverheating},
		{"high inflation moderate growth", f(8), f(3), domain.ConditionOther},
		{"high inflation growth 5", f(8), f(5), domain.ConditionOther},
		{"healthy growth", f(2), f(4), domain.ConditionHealthyGrowth},
		{"healthy at inflation 5", f(5), f(3.5), domain.ConditionHealthyGrowth},
		{"steady growth", f(2), f(3), domain.ConditionSteadyGrowth},
		{"steady at zero inflation", f(0), f(0.1), domain.ConditionSteadyGrowth},
		{"recession", f(2), f(0), domain.ConditionRecession},
		{"recession negative", f(4), f(-3), domain.ConditionRecession},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, econ.Classify(tt.inf, tt.gdp))
		})
	}
}

func TestDerive(t *testing.T) {
	rows := []domain.EnrichedRecord{
		{JoinedRecord: domain.JoinedRecord{GDPGrowth: f(10), Inflation: f(5)}},
		{JoinedRecord: domain.JoinedRecord{GDPGrowth: nil, Inflation: f(5)}},
	}

	econ.Derive(rows)

	require.NotNil(t, rows[0].RealGDPGrowth)
	assert.InDelta(t, 4.7619, *rows[0].RealGDPGrowth, 1e-4)
	assert.Equal(t, domain.ConditionHealthyGrowth, rows[0].Condition)
	assert.Nil(t, rows[1].RealGDPGrowth)
	assert.Equal(t, domain.ConditionUnknown, rows[1].Condition)
}
