package model

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func validArtifact() Artifact {
	n := len(FeatureOrder)
	a := Artifact{
		ModelType:    "Logistic Regression",
		Accuracy:     0.8852,
		Features:     append([]string(nil), FeatureOrder...),
		Coefficients: make([]float64, n),
		Intercept:    0,
		Threshold:    0.5,
	}
	return a
}

func writeArtifact(t *testing.T, a Artifact) string {
	t.Helper()
	b, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	p := filepath.Join(t.TempDir(), "heart.json")
	if err := os.WriteFile(p, b, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoadArtifact(t *testing.T) {
	a := validArtifact()
	p := writeArtifact(t, a)
	got, err := LoadArtifact(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.ModelType != "Logistic Regression" || got.Accuracy != 0.8852 || len(got.Features) != 13 {
		t.Fatalf("unexpected artifact: %+v", got)
	}
}

func TestLoadArtifactMissingFile(t *testing.T) {
	if _, err := LoadArtifact(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadArtifactCorrupt(t *testing.T) {
	p := filepath.Join(t.TempDir(), "heart.json")
	if err := os.WriteFile(p, []byte("{truncated"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadArtifact(p); err == nil {
		t.Fatalf("expected error for corrupt artifact")
	}
}

func TestLoadArtifactRejectsBadShapes(t *testing.T) {
	cases := map[string]func(*Artifact){
		"empty features":     func(a *Artifact) { a.Features = nil; a.Coefficients = nil },
		"wrong feature name": func(a *Artifact) { a.Features[0] = "bmi" },
		"short coefficients": func(a *Artifact) { a.Coefficients = a.Coefficients[:5] },
		"scaler mismatch":    func(a *Artifact) { a.Scaler = Scaler{Mean: []float64{1}, Scale: []float64{1}} },
		"zero scale": func(a *Artifact) {
			a.Scaler = Scaler{Mean: make([]float64, 13), Scale: make([]float64, 13)}
		},
		"bad accuracy":  func(a *Artifact) { a.Accuracy = 1.5 },
		"bad threshold": func(a *Artifact) { a.Threshold = 1.0 },
	}
	for name, mutate := range cases {
		a := validArtifact()
		mutate(&a)
		p := writeArtifact(t, a)
		if _, err := LoadArtifact(p); err == nil {
			t.Fatalf("%s: expected load error", name)
		}
	}
}

func TestLoadArtifactDefaultsThreshold(t *testing.T) {
	a := validArtifact()
	a.Threshold = 0
	got, err := LoadArtifact(writeArtifact(t, a))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Threshold != 0.5 {
		t.Fatalf("threshold=%v, want 0.5", got.Threshold)
	}
}

func TestPredictProbaLogit(t *testing.T) {
	a := validArtifact()
	a.Intercept = 2
	vec := make([]float64, 13)
	p, err := a.PredictProba(vec)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	want := 1 / (1 + math.Exp(-2.0))
	if math.Abs(p-want) > 1e-12 {
		t.Fatalf("p=%v, want %v", p, want)
	}
}

func TestPredictProbaStandardizes(t *testing.T) {
	a := validArtifact()
	a.Scaler = Scaler{Mean: make([]float64, 13), Scale: make([]float64, 13)}
	for i := range a.Scaler.Scale {
		a.Scaler.Scale[i] = 1
	}
	a.Scaler.Mean[0] = 50
	a.Scaler.Scale[0] = 10
	a.Coefficients[0] = 1
	vec := make([]float64, 13)
	vec[0] = 50 // standardizes to 0, so z stays at the intercept
	p, err := a.PredictProba(vec)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if p != 0.5 {
		t.Fatalf("p=%v, want 0.5", p)
	}
}

func TestPredictUsesArtifactThreshold(t *testing.T) {
	a := validArtifact()
	a.Threshold = 0.6
	vec := make([]float64, 13)
	label, p, err := a.Predict(vec)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	// p is exactly 0.5, which is positive under a 0.5 threshold but not 0.6
	if p != 0.5 || label != 0 {
		t.Fatalf("label=%d p=%v, want label 0 at p 0.5", label, p)
	}
	a.Threshold = 0.5
	label, _, err = a.Predict(vec)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if label != 1 {
		t.Fatalf("label=%d, want 1", label)
	}
}

func TestPredictRejectsBadVector(t *testing.T) {
	a := validArtifact()
	if _, _, err := a.Predict(make([]float64, 5)); err == nil {
		t.Fatalf("expected error for short vector")
	}
	vec := make([]float64, 13)
	vec[3] = math.NaN()
	if _, _, err := a.Predict(vec); err == nil {
		t.Fatalf("expected error for NaN input")
	}
}
