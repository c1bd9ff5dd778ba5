package dto

import (
	"tripbook/shared/constant"
	"tripbook/shared/model"
	"tripbook/shared/timezone"
)

// Metadata leaves the modification fields empty for rows that were never changed.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedAt string `json:"modified_at,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(mod model.Metadata) {
	*m = Metadata{
		CreatedAt: timezone.Format(mod.CreatedAt, constant.DateFormat),
		CreatedBy: mod.CreatedBy,
	}

	if mod.Touched() {
		m.ModifiedAt = timezone.Format(mod.ModifiedAt, constant.DateFormat)
		m.ModifiedBy = mod.ModifiedBy
	}
}
