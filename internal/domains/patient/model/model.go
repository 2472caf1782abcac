package model

import (
	"time"

	"hims/shared/model"
)

const (
	TableName  = "patients"
	EntityName = "patient"

	FieldID          = "id"
	FieldGender      = "gender"
	FieldNationalID  = "national_id"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldNickname    = "nickname"
	FieldAge         = "age"
	FieldDateOfBirth = "date_of_birth"
	FieldPhone       = "phone"
)

// SearchFields are the columns matched by the free-text search parameter.
var SearchFields = []string{
	FieldFirstName,
	FieldLastName,
	FieldNickname,
	FieldPhone,
	FieldNationalID,
}

type Patient struct {
	ID          string     `db:"id"`
	Gender      string     `db:"gender"`
	NationalID  string     `db:"national_id"`
	FirstName   string     `db:"first_name"`
	LastName    string     `db:"last_name"`
	Nickname    *string    `db:"nickname"`
	Age         *int       `db:"age"`
	DateOfBirth *time.Time `db:"date_of_birth"`
	Phone       string     `db:"phone"`
	model.Metadata
	model.SoftDelete
}
