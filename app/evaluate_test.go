package app

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rngbias/domain/bias"
	"rngbias/domain/core"
)

// passthroughBands makes every penalty equal the raw feature value, which
// keeps expectations easy to compute by hand.
func passthroughBands() ([]float64, []float64, []float64) {
	alpha := make([]float64, bias.NumFeatures)
	beta := make([]float64, bias.NumFeatures)
	gamma := make([]float64, bias.NumFeatures)
	for i := range gamma {
		gamma[i] = 1
	}
	return alpha, beta, gamma
}

func mustSequence(t *testing.T, raw string) core.Sequence {
	t.Helper()
	seq, err := core.ParseSequence(raw, len(raw))
	require.NoError(t, err)
	return seq
}

func TestEvaluateSingleObjectiveNoConstraints(t *testing.T) {
	alpha, beta, gamma := passthroughBands()
	svc, err := NewService(EvalConfig{
		Objectives: [][]int{{1}},
		Alpha:      alpha, Beta: beta, Gamma: gamma,
	}, nil)
	require.NoError(t, err)

	seq := mustSequence(t, strings.Repeat("123456", 8)+"12") // 50 symbols

	objectives, constraints, err := svc.Evaluate(context.Background(), seq)
	require.NoError(t, err)
	require.Len(t, objectives, 1)
	assert.GreaterOrEqual(t, objectives[0], 0.0)
	assert.Empty(t, constraints)

	res := NewResult(objectives, constraints)
	assert.IsType(t, float64(0), res.Objective)
	assert.Nil(t, res.Constraint)
	assert.Nil(t, res.Error)
}

func TestEvaluateKnownStreakPenalties(t *testing.T) {
	alpha, beta, gamma := passthroughBands()
	svc, err := NewService(EvalConfig{
		Objectives: [][]int{{7}, {9}, {7, 9}},
		Alpha:      alpha, Beta: beta, Gamma: gamma,
	}, nil)
	require.NoError(t, err)

	seq := mustSequence(t, strings.Repeat("1", 50))

	objectives, _, err := svc.Evaluate(context.Background(), seq)
	require.NoError(t, err)
	// 49 two-streak windows, 47 four-streak windows.
	assert.Equal(t, []float64{49, 47, 96}, objectives)
}

func TestNewServiceAllowsSurplusBounds(t *testing.T) {
	// The stock configuration keeps twelve bound entries even when the
	// constraint list is emptied; unused entries are inert.
	alpha, beta, gamma := passthroughBands()
	lower := make([]float64, 12)
	upper := make([]float64, 12)
	for i := range lower {
		lower[i], upper[i] = 0.1, 0.9
	}
	_, err := NewService(EvalConfig{
		Objectives:  [][]int{{1}},
		Constraints: nil,
		LowerBounds: lower,
		UpperBounds: upper,
		Alpha:       alpha, Beta: beta, Gamma: gamma,
	}, nil)
	assert.NoError(t, err)
}

func TestEvaluateConstraints(t *testing.T) {
	alpha, beta, gamma := passthroughBands()
	svc, err := NewService(EvalConfig{
		Objectives:  [][]int{{1}},
		Constraints: []int{1, 2},
		LowerBounds: []float64{0.1, 0.1},
		UpperBounds: []float64{0.9, 0.9},
		Alpha:       alpha, Beta: beta, Gamma: gamma,
	}, nil)
	require.NoError(t, err)

	seq := mustSequence(t, strings.Repeat("111223456", 4)) // 36 symbols

	objectives, constraints, err := svc.Evaluate(context.Background(), seq)
	require.NoError(t, err)
	assert.Len(t, objectives, 1)
	require.Len(t, constraints, 2)
	for _, c := range constraints {
		assert.GreaterOrEqual(t, c, 0.0)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	alpha, beta, gamma := passthroughBands()
	svc, err := NewService(EvalConfig{
		Objectives:  [][]int{{1, 2, 3}, {6, 7, 8}, {10, 11, 12, 13, 14, 15}},
		Constraints: []int{1, 2, 3},
		LowerBounds: []float64{0.1, 0.1, 0.1},
		UpperBounds: []float64{0.9, 0.9, 0.9},
		Alpha:       alpha, Beta: beta, Gamma: gamma,
	}, nil)
	require.NoError(t, err)

	seq := mustSequence(t, strings.Repeat("142536625314", 4))

	wantObj, wantCon, err := svc.Evaluate(context.Background(), seq)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		obj, con, err := svc.Evaluate(context.Background(), seq)
		require.NoError(t, err)
		assert.Equal(t, wantObj, obj)
		assert.Equal(t, wantCon, con)
	}
}

func TestNewServiceRejectsBadConfigs(t *testing.T) {
	alpha, beta, gamma := passthroughBands()

	tests := []struct {
		name     string
		cfg      EvalConfig
		sentinel error
	}{
		{
			"feature index too large",
			EvalConfig{Objectives: [][]int{{16}}, Alpha: alpha, Beta: beta, Gamma: gamma},
			core.ErrFeatureIndex,
		},
		{
			"feature index zero",
			EvalConfig{Objectives: [][]int{{0}}, Alpha: alpha, Beta: beta, Gamma: gamma},
			core.ErrFeatureIndex,
		},
		{
			"empty objective set",
			EvalConfig{Objectives: [][]int{{}}, Alpha: alpha, Beta: beta, Gamma: gamma},
			core.ErrEmptyObjectiveSet,
		},
		{
			"band arrays too short",
			EvalConfig{Objectives: [][]int{{1}}, Alpha: alpha[:3], Beta: beta, Gamma: gamma},
			core.ErrBandShape,
		},
		{
			"bound arrays mismatch constraints",
			EvalConfig{
				Constraints: []int{1, 2},
				LowerBounds: []float64{0.1},
				UpperBounds: []float64{0.9, 0.9},
				Alpha:       alpha, Beta: beta, Gamma: gamma,
			},
			core.ErrBoundShape,
		},
		{
			"non-monotonic bounds",
			EvalConfig{
				Constraints: []int{1},
				LowerBounds: []float64{0.9},
				UpperBounds: []float64{0.1},
				Alpha:       alpha, Beta: beta, Gamma: gamma,
			},
			core.ErrBoundOrder,
		},
		{
			"dimension too large",
			EvalConfig{
				Constraints: []int{bias.MaxTestDimension + 1},
				LowerBounds: []float64{0.1},
				UpperBounds: []float64{0.9},
				Alpha:       alpha, Beta: beta, Gamma: gamma,
			},
			core.ErrTestDimension,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(tt.cfg, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.True(t, core.IsConfigError(err))
		})
	}
}
