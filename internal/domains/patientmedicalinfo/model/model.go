package model

import "hims/shared/model"

const (
	TableName  = "patients_medical_info"
	EntityName = "patient_medical_info"

	FieldID             = "id"
	FieldPatientID      = "patient_id"
	FieldBloodGroup     = "blood_group"
	FieldHeight         = "height"
	FieldWeight         = "weight"
	FieldDrugAllergy    = "drug_allergy"
	FieldFoodAllergy    = "food_allergy"
	FieldChronicDisease = "chronic_disease"
)

// PatientMedicalInfo holds at most one live record per patient.
type PatientMedicalInfo struct {
	ID             string   `db:"id"`
	PatientID      string   `db:"patient_id"`
	BloodGroup     *string  `db:"blood_group"`
	Height         *float64 `db:"height"`
	Weight         *float64 `db:"weight"`
	DrugAllergy    *string  `db:"drug_allergy"`
	FoodAllergy    *string  `db:"food_allergy"`
	ChronicDisease *string  `db:"chronic_disease"`
	model.Metadata
	model.SoftDelete
}
