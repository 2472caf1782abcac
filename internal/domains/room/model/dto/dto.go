package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"hims/internal/domains/room/model"
	gDto "hims/shared/dto"
	gModel "hims/shared/model"
	"hims/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber string   `json:"room_number" validate:"required,max=50"`
	Building   *string  `json:"building" validate:"omitempty,max=255"`
	Floor      int      `json:"floor" validate:"gte=0"`
	RoomType   string   `json:"room_type" validate:"required,oneof=GENERAL ICU OPERATING_THEATER RECOVERY VIP SEMI_PRIVATE PRIVATE"`
	Capacity   int      `json:"capacity" validate:"required,gte=1"`
	Facilities []string `json:"facilities" validate:"omitempty,dive,max=255"`
	IsActive   *bool    `json:"is_active"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	isActive := true
	if c.IsActive != nil {
		isActive = *c.IsActive
	}

	return model.Room{
		ID:         uuid.NewString(),
		RoomNumber: c.RoomNumber,
		Building:   c.Building,
		Floor:      c.Floor,
		RoomType:   c.RoomType,
		Capacity:   c.Capacity,
		Facilities: pq.StringArray(c.Facilities),
		IsActive:   isActive,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber string         `db:"room_number" json:"room_number" validate:"omitempty,max=50"`
	Building   *string        `db:"building" json:"building" validate:"omitempty,max=255"`
	Floor      *int           `db:"floor" json:"floor" validate:"omitempty,gte=0"`
	RoomType   string         `db:"room_type" json:"room_type" validate:"omitempty,oneof=GENERAL ICU OPERATING_THEATER RECOVERY VIP SEMI_PRIVATE PRIVATE"`
	Capacity   *int           `db:"capacity" json:"capacity" validate:"omitempty,gte=1"`
	Facilities pq.StringArray `db:"facilities" json:"facilities" validate:"omitempty,dive,max=255"`
	IsActive   *bool          `db:"is_active" json:"is_active"`
}

func (u UpdateRoomRequest) IsEmpty() bool {
	return u.RoomNumber == "" &&
		u.Building == nil &&
		u.Floor == nil &&
		u.RoomType == "" &&
		u.Capacity == nil &&
		u.Facilities == nil &&
		u.IsActive == nil
}

type RoomResponse struct {
	ID         string   `json:"id"`
	RoomNumber string   `json:"room_number"`
	Building   *string  `json:"building"`
	Floor      int      `json:"floor"`
	RoomType   string   `json:"room_type"`
	Capacity   int      `json:"capacity"`
	Facilities []string `json:"facilities"`
	IsActive   bool     `json:"is_active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(mod model.Room) {
	r.ID = mod.ID
	r.RoomNumber = mod.RoomNumber
	r.Building = mod.Building
	r.Floor = mod.Floor
	r.RoomType = mod.RoomType
	r.Capacity = mod.Capacity
	r.IsActive = mod.IsActive

	// facilities always serializes as an array
	r.Facilities = []string(mod.Facilities)
	if r.Facilities == nil {
		r.Facilities = []string{}
	}

	r.Metadata.FromModel(mod.Metadata)
}

func FromModels(models []model.Room) []RoomResponse {
	responses := make([]RoomResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
