package dto

import (
	"github.com/google/uuid"

	"hims/internal/domains/patientmedicalinfo/model"
	gDto "hims/shared/dto"
	gModel "hims/shared/model"
	"hims/shared/timezone"
)

type CreatePatientMedicalInfoRequest struct {
	PatientID      string   `json:"patient_id" validate:"required,uuid"`
	BloodGroup     *string  `json:"blood_group" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Height         *float64 `json:"height" validate:"omitempty,gt=0"`
	Weight         *float64 `json:"weight" validate:"omitempty,gt=0"`
	DrugAllergy    *string  `json:"drug_allergy" validate:"omitempty,max=1024"`
	FoodAllergy    *string  `json:"food_allergy" validate:"omitempty,max=1024"`
	ChronicDisease *string  `json:"chronic_disease" validate:"omitempty,max=1024"`
}

func (c *CreatePatientMedicalInfoRequest) ToModel() model.PatientMedicalInfo {
	return model.PatientMedicalInfo{
		ID:             uuid.NewString(),
		PatientID:      c.PatientID,
		BloodGroup:     c.BloodGroup,
		Height:         c.Height,
		Weight:         c.Weight,
		DrugAllergy:    c.DrugAllergy,
		FoodAllergy:    c.FoodAllergy,
		ChronicDisease: c.ChronicDisease,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type UpdatePatientMedicalInfoRequest struct {
	BloodGroup     *string  `db:"blood_group" json:"blood_group" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Height         *float64 `db:"height" json:"height" validate:"omitempty,gt=0"`
	Weight         *float64 `db:"weight" json:"weight" validate:"omitempty,gt=0"`
	DrugAllergy    *string  `db:"drug_allergy" json:"drug_allergy" validate:"omitempty,max=1024"`
	FoodAllergy    *string  `db:"food_allergy" json:"food_allergy" validate:"omitempty,max=1024"`
	ChronicDisease *string  `db:"chronic_disease" json:"chronic_disease" validate:"omitempty,max=1024"`
}

func (u UpdatePatientMedicalInfoRequest) IsEmpty() bool {
	return u == (UpdatePatientMedicalInfoRequest{})
}

type PatientMedicalInfoResponse struct {
	ID             string   `json:"id"`
	PatientID      string   `json:"patient_id"`
	BloodGroup     *string  `json:"blood_group"`
	Height         *float64 `json:"height"`
	Weight         *float64 `json:"weight"`
	DrugAllergy    *string  `json:"drug_allergy"`
	FoodAllergy    *string  `json:"food_allergy"`
	ChronicDisease *string  `json:"chronic_disease"`
	gDto.Metadata
}

func (r *PatientMedicalInfoResponse) FromModel(mod model.PatientMedicalInfo) {
	r.ID = mod.ID
	r.PatientID = mod.PatientID
	r.BloodGroup = mod.BloodGroup
	r.Height = mod.Height
	r.Weight = mod.Weight
	r.DrugAllergy = mod.DrugAllergy
	r.FoodAllergy = mod.FoodAllergy
	r.ChronicDisease = mod.ChronicDisease
	r.Metadata.FromModel(mod.Metadata)
}

func FromModels(models []model.PatientMedicalInfo) []PatientMedicalInfoResponse {
	responses := make([]PatientMedicalInfoResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
