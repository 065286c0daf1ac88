package models

import (
	"github.com/crm/backend/internal/domain/activity"
)

// ActivityRecordModel is the GORM model for activity history records
type ActivityRecordModel struct {
	BaseModel
	CustomerID   int64  `gorm:"not null;index"`
	StatusID     int64  `gorm:"not null"`
	Tags         []byte
	Activity     string `gorm:"type:text;not null"`
	ActivityType string `gorm:"type:varchar(50);not null;index:idx_activity_history_document,priority:3"`
	DocumentType string `gorm:"type:varchar(30);not null;index:idx_activity_history_document,priority:1"`
	DocumentID   int64  `gorm:"not null;index:idx_activity_history_document,priority:2"`
	UserOwner    string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for ActivityRecordModel
func (ActivityRecordModel) TableName() string {
	return "activity_history"
}

// ToDomain converts the model to a domain activity record
func (m *ActivityRecordModel) ToDomain() *activity.Record {
	return &activity.Record{
		BaseEntity: m.ToBaseEntity(),
		CustomerID: m.CustomerID,
		StatusID:   m.StatusID,
		Tags:       m.Tags,
		Activity:   m.Activity,
		TypeName:   m.ActivityType,
		Document: activity.DocumentRef{
			Type: activity.DocumentType(m.DocumentType),
			ID:   m.DocumentID,
		},
		UserOwner: m.UserOwner,
	}
}

// FromDomain converts a domain activity record to the model
func (m *ActivityRecordModel) FromDomain(r *activity.Record) {
	m.FromBaseEntity(r.BaseEntity)
	m.CustomerID = r.CustomerID
	m.StatusID = r.StatusID
	m.Tags = r.Tags
	m.Activity = r.Activity
	m.ActivityType = r.TypeName
	m.DocumentType = string(r.Document.Type)
	m.DocumentID = r.Document.ID
	m.UserOwner = r.UserOwner
}

// ActivityTypeModel is the GORM model for activity type directory entries
type ActivityTypeModel struct {
	BaseModel
	TypeName string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Color    int    `gorm:"not null;default:0"`
}

// TableName returns the table name for ActivityTypeModel
func (ActivityTypeModel) TableName() string {
	return "activity_types"
}

// ToDomain converts the model to a domain activity type
func (m *ActivityTypeModel) ToDomain() *activity.ActivityType {
	return &activity.ActivityType{
		BaseEntity: m.ToBaseEntity(),
		TypeName:   m.TypeName,
		Color:      m.Color,
	}
}

// FromDomain converts a domain activity type to the model
func (m *ActivityTypeModel) FromDomain(t *activity.ActivityType) {
	m.FromBaseEntity(t.BaseEntity)
	m.TypeName = t.TypeName
	m.Color = t.Color
}
