package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// FeatureOrder is the fixed input order the trained pipeline expects.
var FeatureOrder = []string{
	"age", "sex", "cp", "trestbps", "chol", "fbs", "restecg",
	"thalach", "exang", "oldpeak", "slope", "ca", "thal",
}

// Scaler holds the standardization parameters baked into the pipeline.
// Empty slices mean the pipeline was fit on raw values.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Artifact is a deserialized logistic-regression pipeline. The file layout is
// owned by the training side; this codec only reads it and evaluates
// predict / predict_proba over a feature vector in FeatureOrder.
type Artifact struct {
	ModelType    string    `json:"model_type"`
	Accuracy     float64   `json:"accuracy"`
	Features     []string  `json:"features"`
	Scaler       Scaler    `json:"scaler"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	// Decision threshold persisted by training. Labels come from this, not
	// from a hard-coded 0.5.
	Threshold float64 `json:"threshold"`
}

// LoadArtifact reads and validates a model artifact from path.
func LoadArtifact(path string) (*Artifact, error) {
	base, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(base)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(b, &a); err != nil {
		return nil, fmt.Errorf("parse artifact: %w", err)
	}
	if err := a.validate(); err != nil {
		return nil, fmt.Errorf("invalid artifact %s: %w", base, err)
	}
	return &a, nil
}

func (a *Artifact) validate() error {
	if len(a.Features) == 0 {
		return fmt.Errorf("empty feature list")
	}
	if len(a.Features) != len(FeatureOrder) {
		return fmt.Errorf("expected %d features, got %d", len(FeatureOrder), len(a.Features))
	}
	for i, f := range a.Features {
		if f != FeatureOrder[i] {
			return fmt.Errorf("feature %d is %q, expected %q", i, f, FeatureOrder[i])
		}
	}
	if len(a.Coefficients) != len(a.Features) {
		return fmt.Errorf("coefficients length %d does not match %d features", len(a.Coefficients), len(a.Features))
	}
	if len(a.Scaler.Mean) != len(a.Scaler.Scale) {
		return fmt.Errorf("scaler mean/scale length mismatch")
	}
	if len(a.Scaler.Mean) != 0 && len(a.Scaler.Mean) != len(a.Features) {
		return fmt.Errorf("scaler length %d does not match %d features", len(a.Scaler.Mean), len(a.Features))
	}
	for i, s := range a.Scaler.Scale {
		if s == 0 {
			return fmt.Errorf("scaler scale[%d] is zero", i)
		}
	}
	if a.Accuracy < 0 || a.Accuracy > 1 {
		return fmt.Errorf("accuracy %v out of [0,1]", a.Accuracy)
	}
	if a.Threshold == 0 {
		a.Threshold = 0.5
	}
	if a.Threshold <= 0 || a.Threshold >= 1 {
		return fmt.Errorf("threshold %v out of (0,1)", a.Threshold)
	}
	return nil
}

// PredictProba returns the positive-class probability for one feature vector.
func (a *Artifact) PredictProba(vector []float64) (float64, error) {
	if len(vector) != len(a.Features) {
		return 0, fmt.Errorf("vector length %d, model expects %d", len(vector), len(a.Features))
	}
	z := a.Intercept
	for i, v := range vector {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("vector[%d] is not finite", i)
		}
		if len(a.Scaler.Mean) != 0 {
			v = (v - a.Scaler.Mean[i]) / a.Scaler.Scale[i]
		}
		z += a.Coefficients[i] * v
	}
	return 1 / (1 + math.Exp(-z)), nil
}

// Predict returns the class decision and positive-class probability for one
// feature vector. The decision uses the artifact's own threshold.
func (a *Artifact) Predict(vector []float64) (int, float64, error) {
	p, err := a.PredictProba(vector)
	if err != nil {
		return 0, 0, err
	}
	if p >= a.Threshold {
		return 1, p, nil
	}
	return 0, p, nil
}

// expandHome expands a leading '~' to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" {
		return path, nil
	}
	if path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	// handle cases like ~/models/heart.json
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}
