package model

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"flightfare/internal/domain"
)

func row33(set map[int]float64) []float64 {
	row := make([]float64, 33)
	for i, v := range set {
		row[i] = v
	}
	return row
}

func TestLoadGradientBoosting(t *testing.T) {
	m, err := Load(filepath.Join("testdata", "fare_gb.json"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if m.Kind() != KindGradientBoosting || m.NumFeatures() != 33 || m.NumTrees() != 5 {
		t.Fatalf("unexpected model shape: kind=%s features=%d trees=%d", m.Kind(), m.NumFeatures(), m.NumTrees())
	}
	names := m.FeatureNames()
	if len(names) != 33 || names[13] != "Airline_IndiGo" {
		t.Fatalf("unexpected feature names: %v", names)
	}

	// IndiGo, Delhi -> Cochin, 15 March, 3h45m, non-stop.
	row := row33(map[int]float64{1: 15, 2: 3, 3: 2019, 4: 13, 5: 45, 6: 10, 8: 3, 9: 45, 13: 1, 24: 1, 28: 1})
	out, err := m.Predict([][]float64{row})
	if err != nil {
		t.Fatalf("Predict returned error: %v", err)
	}
	if len(out) != 1 || out[0] != 5787 {
		t.Fatalf("Predict = %v, want [5787]", out)
	}
}

func TestLoadWithoutFeatureNames(t *testing.T) {
	m, err := Load(filepath.Join("testdata", "fare_gb_unnamed.json"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if m.FeatureNames() != nil {
		t.Fatalf("expected no feature names, got %v", m.FeatureNames())
	}
}

func TestLoadMissingArtifact(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "does_not_exist.json"))
	if !domain.IsModelLoad(err) {
		t.Fatalf("expected ModelLoadError, got %v", err)
	}
	if !strings.Contains(err.Error(), "does_not_exist.json") || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("diagnostic should name the file: %v", err)
	}
}

func TestLoadCorruptArtifact(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "corrupt.json"))
	if !domain.IsModelLoad(err) {
		t.Fatalf("expected ModelLoadError, got %v", err)
	}
}

func TestRandomForestAveragesTrees(t *testing.T) {
	m, err := Parse([]byte(`{
		"kind": "random_forest",
		"n_features": 2,
		"trees": [
			{"nodes": [{"feature": 0, "threshold": 1, "left": 1, "right": 2}, {"left": -1, "value": 100}, {"left": -1, "value": 300}]},
			{"nodes": [{"left": -1, "value": 500}]}
		]
	}`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	out, err := m.Predict([][]float64{{0, 0}, {2, 0}})
	if err != nil {
		t.Fatalf("Predict returned error: %v", err)
	}
	if out[0] != 300 || out[1] != 400 {
		t.Fatalf("Predict = %v, want [300 400]", out)
	}
}

func TestLinearModel(t *testing.T) {
	m, err := New(Artifact{Kind: KindLinear, NumFeatures: 3, Intercept: 1000, Coefficients: []float64{10, 0, -5}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	out, err := m.Predict([][]float64{{2, 99, 4}})
	if err != nil {
		t.Fatalf("Predict returned error: %v", err)
	}
	if out[0] != 1000 {
		t.Fatalf("Predict = %v, want 1000", out[0])
	}
}

func TestNewRejectsMalformedArtifacts(t *testing.T) {
	cases := map[string]Artifact{
		"unknown kind":     {Kind: "svm", NumFeatures: 1},
		"no features":      {Kind: KindLinear},
		"no trees":         {Kind: KindRandomForest, NumFeatures: 1},
		"coefficients":     {Kind: KindLinear, NumFeatures: 2, Coefficients: []float64{1}},
		"names length":     {Kind: KindLinear, NumFeatures: 2, FeatureNames: []string{"a"}, Coefficients: []float64{1, 2}},
		"child range":      {Kind: KindRandomForest, NumFeatures: 1, Trees: []Tree{{Nodes: []Node{{Left: 1, Right: 5}, {Left: -1}}}}},
		"feature range":    {Kind: KindGradientBoosting, NumFeatures: 1, Trees: []Tree{{Nodes: []Node{{Feature: 3, Left: 1, Right: 1}, {Left: -1}}}}},
		"empty tree nodes": {Kind: KindGradientBoosting, NumFeatures: 1, Trees: []Tree{{}}},
		"repeated name":    {Kind: KindLinear, NumFeatures: 2, FeatureNames: []string{"Year", "Year"}, Coefficients: []float64{1, 2}},
	}
	for name, a := range cases {
		if _, err := New(a); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestPredictRejectsBadRows(t *testing.T) {
	m, err := New(Artifact{Kind: KindLinear, NumFeatures: 2, Coefficients: []float64{1, 1}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := m.Predict([][]float64{{1}}); err == nil {
		t.Fatalf("expected error for short row")
	}
	if _, err := m.Predict([][]float64{{1, math.NaN()}}); err == nil {
		t.Fatalf("expected error for NaN feature")
	}
}

func TestCyclicTreeDoesNotHang(t *testing.T) {
	m, err := New(Artifact{
		Kind:        KindRandomForest,
		NumFeatures: 1,
		Trees:       []Tree{{Nodes: []Node{{Feature: 0, Threshold: 1, Left: 0, Right: 0}}}},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := m.Predict([][]float64{{0}}); err == nil {
		t.Fatalf("expected traversal error")
	}
}
