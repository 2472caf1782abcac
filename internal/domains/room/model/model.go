package model

import (
	"github.com/lib/pq"

	"hims/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldBuilding   = "building"
	FieldFloor      = "floor"
	FieldRoomType   = "room_type"
	FieldCapacity   = "capacity"
	FieldFacilities = "facilities"
	FieldIsActive   = "is_active"
)

const (
	RoomTypeGeneral          = "GENERAL"
	RoomTypeICU              = "ICU"
	RoomTypeOperatingTheater = "OPERATING_THEATER"
	RoomTypeRecovery         = "RECOVERY"
	RoomTypeVIP              = "VIP"
	RoomTypeSemiPrivate      = "SEMI_PRIVATE"
	RoomTypePrivate          = "PRIVATE"
)

var SearchFields = []string{FieldRoomNumber, FieldBuilding}

type Room struct {
	ID         string         `db:"id"`
	RoomNumber string         `db:"room_number"`
	Building   *string        `db:"building"`
	Floor      int            `db:"floor"`
	RoomType   string         `db:"room_type"`
	Capacity   int            `db:"capacity"`
	Facilities pq.StringArray `db:"facilities"`
	IsActive   bool           `db:"is_active"`
	model.Metadata
	model.SoftDelete
}
