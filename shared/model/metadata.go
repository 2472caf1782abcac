package model

import "time"

// Metadata carries the timestamps every entity row maintains.
type Metadata struct {
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// SoftDelete marks a row logically absent when DeletedAt is set. Rows with a
// delete marker are excluded from every read path.
type SoftDelete struct {
	DeletedAt *time.Time `db:"deleted_at" json:"-"`
}
