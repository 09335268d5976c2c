package predict

import (
	"fmt"
	"math"

	"heartd/pkg/types"
)

// fieldSpec describes one input field: its accessor, whether the domain is
// integer-valued, and the documented range enforced under strict validation.
type fieldSpec struct {
	name     string
	get      func(r *types.PatientRecord) *float64
	integer  bool
	min, max float64
}

// fields lists the 13 inputs in the exact order the trained pipeline expects.
var fields = []fieldSpec{
	{"age", func(r *types.PatientRecord) *float64 { return r.Age }, true, 29, 77},
	{"sex", func(r *types.PatientRecord) *float64 { return r.Sex }, true, 0, 1},
	{"cp", func(r *types.PatientRecord) *float64 { return r.Cp }, true, 0, 3},
	{"trestbps", func(r *types.PatientRecord) *float64 { return r.Trestbps }, true, 94, 200},
	{"chol", func(r *types.PatientRecord) *float64 { return r.Chol }, true, 126, 564},
	{"fbs", func(r *types.PatientRecord) *float64 { return r.Fbs }, true, 0, 1},
	{"restecg", func(r *types.PatientRecord) *float64 { return r.Restecg }, true, 0, 2},
	{"thalach", func(r *types.PatientRecord) *float64 { return r.Thalach }, true, 71, 202},
	{"exang", func(r *types.PatientRecord) *float64 { return r.Exang }, true, 0, 1},
	{"oldpeak", func(r *types.PatientRecord) *float64 { return r.Oldpeak }, false, 0, 6.2},
	{"slope", func(r *types.PatientRecord) *float64 { return r.Slope }, true, 0, 2},
	{"ca", func(r *types.PatientRecord) *float64 { return r.Ca }, true, 0, 4},
	{"thal", func(r *types.PatientRecord) *float64 { return r.Thal }, true, 0, 3},
}

// AssembleVector validates one record and returns its feature vector in model
// order. Presence and numeric type are always enforced; the documented ranges
// only under strict.
func AssembleVector(r types.PatientRecord, strict bool) ([]float64, error) {
	vec := make([]float64, 0, len(fields))
	for _, f := range fields {
		v := f.get(&r)
		if v == nil {
			return nil, ErrValidation(f.name, "field is required")
		}
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			return nil, ErrValidation(f.name, "must be a finite number")
		}
		if f.integer && *v != math.Trunc(*v) {
			return nil, ErrValidation(f.name, "must be an integer")
		}
		if strict && (*v < f.min || *v > f.max) {
			return nil, ErrValidation(f.name, fmt.Sprintf("must be between %g and %g", f.min, f.max))
		}
		vec = append(vec, *v)
	}
	return vec, nil
}
