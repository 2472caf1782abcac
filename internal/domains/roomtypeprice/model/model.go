package model

import (
	roomModel "hims/internal/domains/room/model"
	"hims/shared/model"
)

const (
	TableName  = "room_type_prices"
	EntityName = "room_type_price"

	FieldID              = "id"
	FieldRoomType        = "room_type"
	FieldNameEn          = "name_en"
	FieldNameTh          = "name_th"
	FieldDescription     = "description"
	FieldBasePricePerDay = "base_price_per_day"
	FieldIsActive        = "is_active"
)

var SearchFields = []string{FieldNameEn, FieldNameTh, FieldRoomType}

// RoomTypes lists the valid room_type values, shared with the rooms table.
var RoomTypes = []string{
	roomModel.RoomTypeGeneral,
	roomModel.RoomTypeICU,
	roomModel.RoomTypeOperatingTheater,
	roomModel.RoomTypeRecovery,
	roomModel.RoomTypeVIP,
	roomModel.RoomTypeSemiPrivate,
	roomModel.RoomTypePrivate,
}

// RoomTypePrice has no soft delete; pricing rows are removed outright.
type RoomTypePrice struct {
	ID              string  `db:"id"`
	RoomType        string  `db:"room_type"`
	NameEn          string  `db:"name_en"`
	NameTh          string  `db:"name_th"`
	Description     *string `db:"description"`
	BasePricePerDay float64 `db:"base_price_per_day"`
	IsActive        bool    `db:"is_active"`
	model.Metadata
}
