package models

import (
	"time"

	"github.com/crm/backend/internal/domain/shared"
)

// BaseModel contains the columns shared by every table.
type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToBaseEntity converts the persistence columns to the domain base entity.
func (b *BaseModel) ToBaseEntity() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        b.ID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FromBaseEntity copies the domain base entity into the persistence columns.
func (b *BaseModel) FromBaseEntity(e shared.BaseEntity) {
	b.ID = e.ID
	b.CreatedAt = e.CreatedAt
	b.UpdatedAt = e.UpdatedAt
}
