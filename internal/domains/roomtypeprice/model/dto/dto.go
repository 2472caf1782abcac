package dto

import (
	"github.com/google/uuid"

	"hims/internal/domains/roomtypeprice/model"
	gDto "hims/shared/dto"
	gModel "hims/shared/model"
	"hims/shared/timezone"
)

type CreateRoomTypePriceRequest struct {
	RoomType        string   `json:"room_type" validate:"required,oneof=GENERAL ICU OPERATING_THEATER RECOVERY VIP SEMI_PRIVATE PRIVATE"`
	NameEn          string   `json:"name_en" validate:"required,max=255"`
	NameTh          string   `json:"name_th" validate:"required,max=255"`
	Description     *string  `json:"description" validate:"omitempty,max=1024"`
	BasePricePerDay *float64 `json:"base_price_per_day" validate:"required,gte=0"`
	IsActive        *bool    `json:"is_active"`
}

func (c *CreateRoomTypePriceRequest) ToModel() model.RoomTypePrice {
	isActive := true
	if c.IsActive != nil {
		isActive = *c.IsActive
	}

	price := model.RoomTypePrice{
		ID:          uuid.NewString(),
		RoomType:    c.RoomType,
		NameEn:      c.NameEn,
		NameTh:      c.NameTh,
		Description: c.Description,
		IsActive:    isActive,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}

	if c.BasePricePerDay != nil {
		price.BasePricePerDay = *c.BasePricePerDay
	}

	return price
}

type UpdateRoomTypePriceRequest struct {
	RoomType        string   `db:"room_type" json:"room_type" validate:"omitempty,oneof=GENERAL ICU OPERATING_THEATER RECOVERY VIP SEMI_PRIVATE PRIVATE"`
	NameEn          string   `db:"name_en" json:"name_en" validate:"omitempty,max=255"`
	NameTh          string   `db:"name_th" json:"name_th" validate:"omitempty,max=255"`
	Description     *string  `db:"description" json:"description" validate:"omitempty,max=1024"`
	BasePricePerDay *float64 `db:"base_price_per_day" json:"base_price_per_day" validate:"omitempty,gte=0"`
	IsActive        *bool    `db:"is_active" json:"is_active"`
}

func (u UpdateRoomTypePriceRequest) IsEmpty() bool {
	return u == (UpdateRoomTypePriceRequest{})
}

type RoomTypePriceResponse struct {
	ID              string  `json:"id"`
	RoomType        string  `json:"room_type"`
	NameEn          string  `json:"name_en"`
	NameTh          string  `json:"name_th"`
	Description     *string `json:"description"`
	BasePricePerDay float64 `json:"base_price_per_day"`
	IsActive        bool    `json:"is_active"`
	gDto.Metadata
}

func (r *RoomTypePriceResponse) FromModel(mod model.RoomTypePrice) {
	r.ID = mod.ID
	r.RoomType = mod.RoomType
	r.NameEn = mod.NameEn
	r.NameTh = mod.NameTh
	r.Description = mod.Description
	r.BasePricePerDay = mod.BasePricePerDay
	r.IsActive = mod.IsActive
	r.Metadata.FromModel(mod.Metadata)
}

func FromModels(models []model.RoomTypePrice) []RoomTypePriceResponse {
	responses := make([]RoomTypePriceResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
