package model

import "time"

// Metadata is the audit block every stored row carries.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" json:"modified_at"`
	CreatedBy  string    `db:"created_by"  json:"created_by"`
	ModifiedBy string    `db:"modified_by" json:"modified_by"`
}

// Stamp records a row created by actor at the given instant.
func Stamp(actor string, at time.Time) Metadata {
	return Metadata{
		CreatedAt:  at,
		ModifiedAt: at,
		CreatedBy:  actor,
		ModifiedBy: actor,
	}
}

// Touched reports whether the row changed after it was created.
func (m Metadata) Touched() bool {
	return m.ModifiedAt.After(m.CreatedAt) || m.ModifiedBy != m.CreatedBy
}
