package dto

import (
	"github.com/google/uuid"

	"hims/internal/domains/patient/model"
	"hims/shared/constant"
	gDto "hims/shared/dto"
	gModel "hims/shared/model"
	"hims/shared/timezone"
)

type CreatePatientRequest struct {
	Gender      string  `json:"gender" validate:"required,oneof=male female other"`
	NationalID  string  `json:"national_id" validate:"required,len=13,number"`
	FirstName   string  `json:"first_name" validate:"required,max=255"`
	LastName    string  `json:"last_name" validate:"required,max=255"`
	Nickname    *string `json:"nickname" validate:"omitempty,max=255"`
	Age         *int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Phone       string  `json:"phone" validate:"required,max=20"`
}

func (c *CreatePatientRequest) ToModel() model.Patient {
	patient := model.Patient{
		ID:         uuid.NewString(),
		Gender:     c.Gender,
		NationalID: c.NationalID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Nickname:   c.Nickname,
		Age:        c.Age,
		Phone:      c.Phone,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}

	if c.DateOfBirth != nil {
		// format already validated
		dob, _ := timezone.Parse(constant.DateOnlyFormat, *c.DateOfBirth)
		patient.DateOfBirth = &dob
	}

	return patient
}

type UpdatePatientRequest struct {
	Gender      string  `db:"gender" json:"gender" validate:"omitempty,oneof=male female other"`
	NationalID  string  `db:"national_id" json:"national_id" validate:"omitempty,len=13,number"`
	FirstName   string  `db:"first_name" json:"first_name" validate:"omitempty,max=255"`
	LastName    string  `db:"last_name" json:"last_name" validate:"omitempty,max=255"`
	Nickname    *string `db:"nickname" json:"nickname" validate:"omitempty,max=255"`
	Age         *int    `db:"age" json:"age" validate:"omitempty,gte=0,lte=150"`
	DateOfBirth *string `db:"date_of_birth" json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Phone       string  `db:"phone" json:"phone" validate:"omitempty,max=20"`
}

func (u UpdatePatientRequest) IsEmpty() bool {
	return u == (UpdatePatientRequest{})
}

type PatientResponse struct {
	ID          string  `json:"id"`
	Gender      string  `json:"gender"`
	NationalID  string  `json:"national_id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Nickname    *string `json:"nickname"`
	Age         *int    `json:"age"`
	DateOfBirth *string `json:"date_of_birth"`
	Phone       string  `json:"phone"`
	gDto.Metadata
}

func (r *PatientResponse) FromModel(mod model.Patient) {
	r.ID = mod.ID
	r.Gender = mod.Gender
	r.NationalID = mod.NationalID
	r.FirstName = mod.FirstName
	r.LastName = mod.LastName
	r.Nickname = mod.Nickname
	r.Age = mod.Age
	r.Phone = mod.Phone

	if mod.DateOfBirth != nil {
		dob := timezone.Format(*mod.DateOfBirth, constant.DateOnlyFormat)
		r.DateOfBirth = &dob
	}

	r.Metadata.FromModel(mod.Metadata)
}

func FromModels(models []model.Patient) []PatientResponse {
	responses := make([]PatientResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
