package dto

import (
	"github.com/google/uuid"

	"hims/internal/domains/staff/model"
	"hims/shared/constant"
	gDto "hims/shared/dto"
	gModel "hims/shared/model"
	"hims/shared/timezone"
)

type CreateStaffRequest struct {
	FullNameEng     string  `json:"full_name_eng" validate:"required,max=255"`
	FullNameTh      string  `json:"full_name_th" validate:"required,max=255"`
	Nickname        *string `json:"nickname" validate:"omitempty,max=255"`
	NationalID      string  `json:"national_id" validate:"required,len=13,number"`
	Phone           string  `json:"phone" validate:"required,max=20"`
	Gender          string  `json:"gender" validate:"required,oneof=male female other"`
	Role            string  `json:"role" validate:"required,max=50"`
	Age             *int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	ProfileImageURL *string `json:"profile_image_url" validate:"omitempty,max=1024"`
	HireDate        string  `json:"hire_date" validate:"required,datetime=2006-01-02"`
	TerminationDate *string `json:"termination_date" validate:"omitempty,datetime=2006-01-02"`
}

func (c *CreateStaffRequest) ToModel() model.Staff {
	hireDate, _ := timezone.Parse(constant.DateOnlyFormat, c.HireDate)

	staff := model.Staff{
		ID:              uuid.NewString(),
		FullNameEng:     c.FullNameEng,
		FullNameTh:      c.FullNameTh,
		Nickname:        c.Nickname,
		NationalID:      c.NationalID,
		Phone:           c.Phone,
		Gender:          c.Gender,
		Role:            c.Role,
		Age:             c.Age,
		ProfileImageURL: c.ProfileImageURL,
		HireDate:        hireDate,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}

	if c.TerminationDate != nil {
		termination, _ := timezone.Parse(constant.DateOnlyFormat, *c.TerminationDate)
		staff.TerminationDate = &termination
	}

	return staff
}

type UpdateStaffRequest struct {
	FullNameEng     string  `db:"full_name_eng" json:"full_name_eng" validate:"omitempty,max=255"`
	FullNameTh      string  `db:"full_name_th" json:"full_name_th" validate:"omitempty,max=255"`
	Nickname        *string `db:"nickname" json:"nickname" validate:"omitempty,max=255"`
	NationalID      string  `db:"national_id" json:"national_id" validate:"omitempty,len=13,number"`
	Phone           string  `db:"phone" json:"phone" validate:"omitempty,max=20"`
	Gender          string  `db:"gender" json:"gender" validate:"omitempty,oneof=male female other"`
	Role            string  `db:"role" json:"role" validate:"omitempty,max=50"`
	Age             *int    `db:"age" json:"age" validate:"omitempty,gte=0,lte=150"`
	ProfileImageURL *string `db:"profile_image_url" json:"profile_image_url" validate:"omitempty,max=1024"`
	HireDate        string  `db:"hire_date" json:"hire_date" validate:"omitempty,datetime=2006-01-02"`
	TerminationDate *string `db:"termination_date" json:"termination_date" validate:"omitempty,datetime=2006-01-02"`
}

func (u UpdateStaffRequest) IsEmpty() bool {
	return u == (UpdateStaffRequest{})
}

type StaffResponse struct {
	ID              string  `json:"id"`
	FullNameEng     string  `json:"full_name_eng"`
	FullNameTh      string  `json:"full_name_th"`
	Nickname        *string `json:"nickname"`
	NationalID      string  `json:"national_id"`
	Phone           string  `json:"phone"`
	Gender          string  `json:"gender"`
	Role            string  `json:"role"`
	Age             *int    `json:"age"`
	ProfileImageURL *string `json:"profile_image_url"`
	HireDate        string  `json:"hire_date"`
	TerminationDate *string `json:"termination_date"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(mod model.Staff) {
	r.ID = mod.ID
	r.FullNameEng = mod.FullNameEng
	r.FullNameTh = mod.FullNameTh
	r.Nickname = mod.Nickname
	r.NationalID = mod.NationalID
	r.Phone = mod.Phone
	r.Gender = mod.Gender
	r.Role = mod.Role
	r.Age = mod.Age
	r.ProfileImageURL = mod.ProfileImageURL
	r.HireDate = timezone.Format(mod.HireDate, constant.DateOnlyFormat)

	if mod.TerminationDate != nil {
		termination := timezone.Format(*mod.TerminationDate, constant.DateOnlyFormat)
		r.TerminationDate = &termination
	}

	r.Metadata.FromModel(mod.Metadata)
}

func FromModels(models []model.Staff) []StaffResponse {
	responses := make([]StaffResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
