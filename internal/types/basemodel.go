package types

import (
	"time"
)

// BaseModel carries the timestamps shared by every persisted record.
// CreatedAt is set once on insert and never changes; UpdatedAt is
// refreshed on every mutating call.
type BaseModel struct {
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func GetDefaultBaseModel() BaseModel {
	now := time.Now().UTC()
	return BaseModel{
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes UpdatedAt ahead of a write.
func (m *BaseModel) Touch() {
	m.UpdatedAt = time.Now().UTC()
}
