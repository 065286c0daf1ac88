package activity

import (
	"strings"

	"github.com/crm/backend/internal/domain/shared"
)

// ActivityType is a directory entry mapping an activity type name to a
// display color. Type names are unique; seeded names like "Create" and
// "Update" are referenced by the trade flows through their constants.
type ActivityType struct {
	shared.BaseEntity
	TypeName string
	Color    int
}

// NewActivityType creates a new activity type directory entry
func NewActivityType(typeName string, color int) (*ActivityType, error) {
	typeName = strings.TrimSpace(typeName)
	if typeName == "" {
		return nil, shared.NewDomainError("INVALID_ACTIVITY_TYPE", "Activity type name cannot be empty")
	}
	if color < 0 {
		return nil, shared.NewDomainError("INVALID_COLOR", "Color must be non-negative")
	}

	return &ActivityType{
		BaseEntity: shared.NewBaseEntity(),
		TypeName:   typeName,
		Color:      color,
	}, nil
}

// Rename changes the type name
func (t *ActivityType) Rename(typeName string) error {
	typeName = strings.TrimSpace(typeName)
	if typeName == "" {
		return shared.NewDomainError("INVALID_ACTIVITY_TYPE", "Activity type name cannot be empty")
	}
	t.TypeName = typeName
	t.Touch()
	return nil
}

// SetColor changes the display color
func (t *ActivityType) SetColor(color int) error {
	if color < 0 {
		return shared.NewDomainError("INVALID_COLOR", "Color must be non-negative")
	}
	t.Color = color
	t.Touch()
	return nil
}
