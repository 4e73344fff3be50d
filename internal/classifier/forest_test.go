package classifier

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadShippedModel(t *testing.T) *Forest {
	t.Helper()
	data, err := os.ReadFile("../../models/match_model.json")
	require.NoError(t, err)
	f, err := Decode(data)
	require.NoError(t, err)
	return f
}

func TestForest_ShippedModel(t *testing.T) {
	f := loadShippedModel(t)

	tests := []struct {
		name     string
		features []float64
		want     string
	}{
		{name: "low resistance", features: []float64{30, 0, 2.4e9}, want: "L-match"},
		{name: "low resistance large reactance", features: []float64{10, 45, 5e9}, want: "L-match"},
		{name: "high resistance small reactance", features: []float64{75, 0, 2.4e9}, want: "stub"},
		{name: "high resistance large reactance", features: []float64{75, 45, 1e9}, want: "pi"},
		{name: "high resistance negative reactance", features: []float64{90, -40, 10e9}, want: "pi"},
		{name: "high resistance moderate reactance", features: []float64{75, 25, 2.4e9}, want: "direct"},
		{name: "matched resistance", features: []float64{50, 0, 2.4e9}, want: "direct"},
		{name: "matched resistance large reactance", features: []float64{50, -45, 2.4e9}, want: "pi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Predict(tt.features)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestForest_PredictRejectsBadFeatures(t *testing.T) {
	f := loadShippedModel(t)

	for _, features := range [][]float64{
		nil,
		{30, 0},
		{30, 0, 2.4e9, 1},
		{math.NaN(), 0, 2.4e9},
		{30, math.Inf(-1), 2.4e9},
	} {
		_, err := f.Predict(features)
		assert.ErrorIs(t, err, ErrInvalidFeatures, "features=%v", features)
	}
}

func TestForest_TieGoesToFirstClass(t *testing.T) {
	f, err := Decode([]byte(`{
		"features": ["x"],
		"classes": ["a", "b"],
		"trees": [
			{"nodes": [{"left": -1, "right": -1, "class": 1}]},
			{"nodes": [{"left": -1, "right": -1, "class": 0}]}
		]
	}`))
	require.NoError(t, err)

	got, err := f.Predict([]float64{1})
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}

func TestForest_SplitSendsEqualValuesLeft(t *testing.T) {
	f, err := Decode([]byte(`{
		"features": ["x"],
		"classes": ["low", "high"],
		"trees": [{"nodes": [
			{"feature": 0, "threshold": 5, "left": 1, "right": 2},
			{"left": -1, "right": -1, "class": 0},
			{"left": -1, "right": -1, "class": 1}
		]}]
	}`))
	require.NoError(t, err)

	for x, want := range map[float64]string{4.9: "low", 5: "low", 5.1: "high"} {
		got, err := f.Predict([]float64{x})
		require.NoError(t, err)
		assert.Equal(t, want, got, "x=%g", x)
	}
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{name: "not json", json: `pickle`},
		{name: "no features", json: `{"classes": ["a"], "trees": [{"nodes": [{"left": -1, "class": 0}]}]}`},
		{name: "no classes", json: `{"features": ["x"], "trees": [{"nodes": [{"left": -1, "class": 0}]}]}`},
		{name: "no trees", json: `{"features": ["x"], "classes": ["a"], "trees": []}`},
		{name: "empty tree", json: `{"features": ["x"], "classes": ["a"], "trees": [{"nodes": []}]}`},
		{name: "leaf class out of range", json: `{"features": ["x"], "classes": ["a"], "trees": [{"nodes": [{"left": -1, "class": 3}]}]}`},
		{name: "feature out of range", json: `{"features": ["x"], "classes": ["a"], "trees": [{"nodes": [
			{"feature": 2, "left": 1, "right": 2}, {"left": -1}, {"left": -1}]}]}`},
		{name: "child points backwards", json: `{"features": ["x"], "classes": ["a"], "trees": [{"nodes": [
			{"feature": 0, "left": 1, "right": 2}, {"feature": 0, "left": 0, "right": 2}, {"left": -1}]}]}`},
		{name: "child past end", json: `{"features": ["x"], "classes": ["a"], "trees": [{"nodes": [
			{"feature": 0, "left": 1, "right": 7}, {"left": -1}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Decode([]byte(tt.json))
			assert.ErrorIs(t, err, ErrInvalidModel)
			assert.Nil(t, f)
		})
	}
}
