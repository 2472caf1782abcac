package model

import (
	"time"

	"hims/shared/model"
)

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID              = "id"
	FieldFullNameEng     = "full_name_eng"
	FieldFullNameTh      = "full_name_th"
	FieldNickname        = "nickname"
	FieldNationalID      = "national_id"
	FieldPhone           = "phone"
	FieldGender          = "gender"
	FieldRole            = "role"
	FieldAge             = "age"
	FieldProfileImageURL = "profile_image_url"
	FieldHireDate        = "hire_date"
	FieldTerminationDate = "termination_date"
)

var SearchFields = []string{
	FieldFullNameEng,
	FieldFullNameTh,
	FieldNickname,
	FieldNationalID,
	FieldPhone,
}

type Staff struct {
	ID              string     `db:"id"`
	FullNameEng     string     `db:"full_name_eng"`
	FullNameTh      string     `db:"full_name_th"`
	Nickname        *string    `db:"nickname"`
	NationalID      string     `db:"national_id"`
	Phone           string     `db:"phone"`
	Gender          string     `db:"gender"`
	Role            string     `db:"role"`
	Age             *int       `db:"age"`
	ProfileImageURL *string    `db:"profile_image_url"`
	HireDate        time.Time  `db:"hire_date"`
	TerminationDate *time.Time `db:"termination_date"`
	model.Metadata
	model.SoftDelete
}
