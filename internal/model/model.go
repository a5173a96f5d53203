// Package model loads the serialized fare regressor and evaluates it.
//
// The artifact is a JSON document describing either a tree ensemble
// (random forest or gradient boosting) or a linear model. It is read once at
// startup and is read-only afterwards, so a *Model is safe for concurrent use.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"flightfare/internal/domain"
)

// Regressor is anything that maps feature rows to one value per row.
type Regressor interface {
	Predict(rows [][]float64) ([]float64, error)
}

// FeatureNamer is implemented by models that publish their expected columns.
type FeatureNamer interface {
	FeatureNames() []string
}

type Kind string

const (
	KindRandomForest     Kind = "random_forest"
	KindGradientBoosting Kind = "gradient_boosting"
	KindLinear           Kind = "linear"
)

// Node is one split or leaf. A leaf has Left == -1.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

type Tree struct {
	Nodes []Node `json:"nodes"`
}

type Artifact struct {
	Kind         Kind      `json:"kind"`
	Version      string    `json:"version"`
	FeatureNames []string  `json:"feature_names,omitempty"`
	NumFeatures  int       `json:"n_features"`
	BaseScore    float64   `json:"base_score"`
	LearningRate float64   `json:"learning_rate"`
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients,omitempty"`
	Trees        []Tree    `json:"trees,omitempty"`
}

type Model struct {
	a Artifact
}

// Load reads and validates the artifact at path.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ModelLoadError{Path: path, Err: errors.New("file not found")}
		}
		return nil, domain.ModelLoadError{Path: path, Err: err}
	}
	m, err := Parse(data)
	if err != nil {
		return nil, domain.ModelLoadError{Path: path, Err: err}
	}
	return m, nil
}

// Parse decodes an artifact from JSON.
func Parse(data []byte) (*Model, error) {
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	return New(a)
}

// New validates a and wraps it as a Model.
func New(a Artifact) (*Model, error) {
	if a.NumFeatures <= 0 {
		a.NumFeatures = len(a.FeatureNames)
	}
	if a.NumFeatures <= 0 {
		return nil, errors.New("artifact declares no features")
	}
	if len(a.FeatureNames) > 0 && len(a.FeatureNames) != a.NumFeatures {
		return nil, fmt.Errorf("artifact lists %d feature names for %d features", len(a.FeatureNames), a.NumFeatures)
	}
	seen := make(map[string]bool, len(a.FeatureNames))
	for _, name := range a.FeatureNames {
		if seen[name] {
			return nil, fmt.Errorf("artifact lists feature %q twice", name)
		}
		seen[name] = true
	}

	switch a.Kind {
	case KindRandomForest, KindGradientBoosting:
		if len(a.Trees) == 0 {
			return nil, fmt.Errorf("%s artifact has no trees", a.Kind)
		}
		for i, t := range a.Trees {
			if err := t.validate(a.NumFeatures); err != nil {
				return nil, fmt.Errorf("tree %d: %w", i, err)
			}
		}
		if a.Kind == KindGradientBoosting && a.LearningRate == 0 {
			a.LearningRate = 1
		}
	case KindLinear:
		if len(a.Coefficients) != a.NumFeatures {
			return nil, fmt.Errorf("linear artifact has %d coefficients for %d features", len(a.Coefficients), a.NumFeatures)
		}
	default:
		return nil, fmt.Errorf("unknown model kind %q", a.Kind)
	}
	return &Model{a: a}, nil
}

func (m *Model) Kind() Kind       { return m.a.Kind }
func (m *Model) Version() string  { return m.a.Version }
func (m *Model) NumFeatures() int { return m.a.NumFeatures }
func (m *Model) NumTrees() int    { return len(m.a.Trees) }

// FeatureNames returns the declared column order, or nil when the artifact
// does not carry names.
func (m *Model) FeatureNames() []string {
	if len(m.a.FeatureNames) == 0 {
		return nil
	}
	return append([]string(nil), m.a.FeatureNames...)
}

// Predict evaluates every row. Rows must have exactly NumFeatures finite values.
func (m *Model) Predict(rows [][]float64) ([]float64, error) {
	out := make([]float64, 0, len(rows))
	for i, row := range rows {
		if len(row) != m.a.NumFeatures {
			return nil, fmt.Errorf("row %d has %d features, model expects %d", i, len(row), m.a.NumFeatures)
		}
		for j, x := range row {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("row %d feature %d is not finite", i, j)
			}
		}
		y, err := m.predictRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out = append(out, y)
	}
	return out, nil
}

func (m *Model) predictRow(x []float64) (float64, error) {
	switch m.a.Kind {
	case KindLinear:
		y := m.a.Intercept
		for i, c := range m.a.Coefficients {
			y += c * x[i]
		}
		return y, nil
	case KindRandomForest:
		var sum float64
		for _, t := range m.a.Trees {
			v, err := t.eval(x)
			if err != nil {
				return 0, err
			}
			sum += v
		}
		return sum / float64(len(m.a.Trees)), nil
	default:
		var sum float64
		for _, t := range m.a.Trees {
			v, err := t.eval(x)
			if err != nil {
				return 0, err
			}
			sum += v
		}
		return m.a.BaseScore + m.a.LearningRate*sum, nil
	}
}

func (t Tree) validate(numFeatures int) error {
	if len(t.Nodes) == 0 {
		return errors.New("empty tree")
	}
	for i, n := range t.Nodes {
		if n.Left == -1 {
			continue
		}
		if n.Left < 0 || n.Left >= len(t.Nodes) || n.Right < 0 || n.Right >= len(t.Nodes) {
			return fmt.Errorf("node %d has children out of range", i)
		}
		if n.Feature < 0 || n.Feature >= numFeatures {
			return fmt.Errorf("node %d splits on feature %d of %d", i, n.Feature, numFeatures)
		}
	}
	return nil
}

// eval walks from the root; x[feature] <= threshold goes left. The step bound
// stops malformed trees that loop back on themselves.
func (t Tree) eval(x []float64) (float64, error) {
	i := 0
	for steps := 0; steps <= len(t.Nodes); steps++ {
		n := t.Nodes[i]
		if n.Left == -1 {
			return n.Value, nil
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
	return 0, errors.New("tree traversal did not reach a leaf")
}
