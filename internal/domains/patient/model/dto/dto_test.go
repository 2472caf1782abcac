package dto_test

import (
	"testing"
	"time"

	"hims/internal/domains/patient/model"
	"hims/internal/domains/patient/model/dto"
	gModel "hims/shared/model"
	"hims/shared/timezone"
	"hims/shared/validator"

	"github.com/stretchr/testify/assert"
)

func TestCreatePatientRequest_ToModel(t *testing.T) {
	nickname := "Som"
	age := 42
	dob := "1984-02-29"

	req := dto.CreatePatientRequest{
		Gender:      "female",
		NationalID:  "1234567890123",
		FirstName:   "Somsri",
		LastName:    "Jaidee",
		Nickname:    &nickname,
		Age:         &age,
		DateOfBirth: &dob,
		Phone:       "0812345678",
	}

	patient := req.ToModel()

	assert.NotEmpty(t, patient.ID, "expected ID to be generated")
	assert.Equal(t, req.Gender, patient.Gender)
	assert.Equal(t, req.NationalID, patient.NationalID)
	assert.Equal(t, req.FirstName, patient.FirstName)
	assert.Equal(t, req.LastName, patient.LastName)
	assert.Equal(t, req.Nickname, patient.Nickname)
	assert.Equal(t, req.Age, patient.Age)
	assert.Equal(t, req.Phone, patient.Phone)

	if assert.NotNil(t, patient.DateOfBirth) {
		assert.Equal(t, 1984, patient.DateOfBirth.Year())
		assert.Equal(t, time.February, patient.DateOfBirth.Month())
		assert.Equal(t, 29, patient.DateOfBirth.Day())
	}

	assert.False(t, patient.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.False(t, patient.UpdatedAt.IsZero(), "expected UpdatedAt to be set")
}

func TestCreatePatientRequest_ToModelWithoutOptionalFields(t *testing.T) {
	req := dto.CreatePatientRequest{
		Gender:     "male",
		NationalID: "9876543210987",
		FirstName:  "Somchai",
		LastName:   "Rakdee",
		Phone:      "0898765432",
	}

	patient := req.ToModel()

	assert.Nil(t, patient.Nickname)
	assert.Nil(t, patient.Age)
	assert.Nil(t, patient.DateOfBirth)
}

func TestCreatePatientRequest_NationalIDValidation(t *testing.T) {
	tests := []struct {
		name        string
		nationalID  string
		expectError bool
	}{
		{name: "thirteen digits", nationalID: "1234567890123", expectError: false},
		{name: "too short", nationalID: "123", expectError: true},
		{name: "too long", nationalID: "12345678901234", expectError: true},
		{name: "plus sign", nationalID: "+123456789012", expectError: true},
		{name: "minus sign", nationalID: "-123456789012", expectError: true},
		{name: "decimal point", nationalID: "1.23456789012", expectError: true},
		{name: "letters", nationalID: "12345678901ab", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreatePatientRequest{
				Gender:     "female",
				NationalID: tt.nationalID,
				FirstName:  "Somsri",
				LastName:   "Jaidee",
				Phone:      "0812345678",
			}

			err := validator.ValidateStruct(&req)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdatePatientRequest_IsEmpty(t *testing.T) {
	assert.True(t, dto.UpdatePatientRequest{}.IsEmpty())

	assert.False(t, dto.UpdatePatientRequest{FirstName: "Somsri"}.IsEmpty())

	age := 42
	assert.False(t, dto.UpdatePatientRequest{Age: &age}.IsEmpty())
}

func TestPatientResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	dob := time.Date(1984, time.February, 29, 0, 0, 0, 0, timezone.GetLocation())

	patientModel := model.Patient{
		ID:          "test-id",
		Gender:      "female",
		NationalID:  "1234567890123",
		FirstName:   "Somsri",
		LastName:    "Jaidee",
		DateOfBirth: &dob,
		Phone:       "0812345678",
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	var response dto.PatientResponse
	response.FromModel(patientModel)

	assert.Equal(t, patientModel.ID, response.ID)
	assert.Equal(t, patientModel.Gender, response.Gender)
	assert.Equal(t, patientModel.NationalID, response.NationalID)
	assert.Equal(t, patientModel.FirstName, response.FirstName)
	assert.Equal(t, patientModel.LastName, response.LastName)
	assert.Equal(t, patientModel.Phone, response.Phone)
	assert.NotEmpty(t, response.CreatedAt)
	assert.NotEmpty(t, response.UpdatedAt)

	if assert.NotNil(t, response.DateOfBirth) {
		assert.Equal(t, "1984-02-29", *response.DateOfBirth)
	}
}

func TestFromModels(t *testing.T) {
	now := timezone.Now()
	patients := []model.Patient{
		{
			ID:         "test-id-1",
			Gender:     "male",
			NationalID: "1111111111111",
			FirstName:  "Somchai",
			LastName:   "Rakdee",
			Phone:      "0811111111",
			Metadata:   gModel.Metadata{CreatedAt: now, UpdatedAt: now},
		},
		{
			ID:         "test-id-2",
			Gender:     "female",
			NationalID: "2222222222222",
			FirstName:  "Somsri",
			LastName:   "Jaidee",
			Phone:      "0822222222",
			Metadata:   gModel.Metadata{CreatedAt: now, UpdatedAt: now},
		},
	}

	responses := dto.FromModels(patients)

	assert.Len(t, responses, 2)
	assert.Equal(t, patients[0].ID, responses[0].ID)
	assert.Equal(t, patients[1].ID, responses[1].ID)
	assert.Nil(t, responses[0].DateOfBirth)
}
