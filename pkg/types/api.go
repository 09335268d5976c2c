package types

// PatientRecord is one patient's input features for a prediction request.
// All 13 fields are required. Numeric values are decoded as float64 pointers
// so a missing field is distinguishable from zero; the transport layer turns
// a wrong-typed field into a validation error naming that field, and
// integer-domain checks happen during validation.
type PatientRecord struct {
	// Age in years (29-77 in the training data).
	// example: 63
	Age *float64 `json:"age" example:"63"`
	// Sex: 0 = female, 1 = male.
	// example: 1
	Sex *float64 `json:"sex" example:"1"`
	// Chest pain type (0-3).
	// example: 3
	Cp *float64 `json:"cp" example:"3"`
	// Resting blood pressure in mm Hg (94-200).
	// example: 145
	Trestbps *float64 `json:"trestbps" example:"145"`
	// Serum cholesterol in mg/dl (126-564).
	// example: 233
	Chol *float64 `json:"chol" example:"233"`
	// Fasting blood sugar > 120 mg/dl: 0 = false, 1 = true.
	// example: 1
	Fbs *float64 `json:"fbs" example:"1"`
	// Resting electrocardiographic results (0-2).
	// example: 0
	Restecg *float64 `json:"restecg" example:"0"`
	// Maximum heart rate achieved in bpm (71-202).
	// example: 150
	Thalach *float64 `json:"thalach" example:"150"`
	// Exercise induced angina: 0 = no, 1 = yes.
	// example: 0
	Exang *float64 `json:"exang" example:"0"`
	// ST depression induced by exercise relative to rest (0.0-6.2).
	// example: 2.3
	Oldpeak *float64 `json:"oldpeak" example:"2.3"`
	// Slope of the peak exercise ST segment (0-2).
	// example: 0
	Slope *float64 `json:"slope" example:"0"`
	// Number of major vessels colored by fluoroscopy (0-4).
	// example: 0
	Ca *float64 `json:"ca" example:"0"`
	// Thalassemia (0-3).
	// example: 1
	Thal *float64 `json:"thal" example:"1"`
}

// PredictionResponse is returned by POST /predict.
type PredictionResponse struct {
	// Predicted class: 0 = no heart disease, 1 = heart disease.
	// example: 1
	Prediction int `json:"prediction" example:"1"`
	// Positive-class probability in [0,1].
	// example: 0.85
	Probability float64 `json:"probability" example:"0.85"`
	// Coarse confidence bucket: Low, Medium or High.
	// example: High
	Confidence string `json:"confidence" example:"High"`
}

// BatchPrediction is one entry of a batch prediction response.
type BatchPrediction struct {
	// 1-based position of the patient in the request list.
	// example: 1
	PatientID int `json:"patient_id" example:"1"`
	// Predicted class: 0 = no heart disease, 1 = heart disease.
	// example: 1
	Prediction int `json:"prediction" example:"1"`
	// Positive-class probability in [0,1].
	// example: 0.85
	Probability float64 `json:"probability" example:"0.85"`
	// Coarse confidence bucket: Low, Medium or High.
	// example: High
	Confidence string `json:"confidence" example:"High"`
}

// BatchPredictionResponse is returned by POST /predict-batch.
type BatchPredictionResponse struct {
	// Per-patient predictions in request order.
	Predictions []BatchPrediction `json:"predictions"`
	// Number of prediction entries returned.
	// example: 2
	TotalPatients int `json:"total_patients" example:"2"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	// Overall status: healthy iff the model is loaded.
	// example: healthy
	Status string `json:"status" example:"healthy"`
	// Whether the model artifact was loaded at startup.
	// example: true
	ModelLoaded bool `json:"model_loaded" example:"true"`
	// Server time, RFC3339.
	// example: 2025-01-02T15:04:05Z
	Timestamp string `json:"timestamp" example:"2025-01-02T15:04:05Z"`
}

// ModelInfoResponse is returned by GET /model-info. Metadata fields are null
// when the model is not loaded.
type ModelInfoResponse struct {
	// Algorithm name reported by the artifact.
	// example: Logistic Regression
	ModelType *string `json:"model_type" example:"Logistic Regression"`
	// Held-out accuracy reported by the artifact.
	// example: 0.8852
	Accuracy *float64 `json:"accuracy" example:"0.8852"`
	// Feature names in the order the model expects.
	Features []string `json:"features"`
	// Number of input features.
	// example: 13
	FeatureCount int `json:"feature_count" example:"13"`
	// Whether the model artifact was loaded at startup.
	// example: true
	ModelLoaded bool `json:"model_loaded" example:"true"`
}

// RootResponse is the static API description returned by GET /.
type RootResponse struct {
	// example: Heart Disease Prediction API
	Message string `json:"message" example:"Heart Disease Prediction API"`
	// example: 1.0.0
	Version string `json:"version" example:"1.0.0"`
	// Endpoint path to description map.
	Endpoints map[string]string `json:"endpoints"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
