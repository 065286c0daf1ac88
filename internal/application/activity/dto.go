package activity

import (
	"time"

	"github.com/crm/backend/internal/domain/activity"
)

// AppendRequest represents a request to append an activity record
type AppendRequest struct {
	CustomerID   int64  `json:"customer_id" binding:"required,gt=0"`
	StatusID     int64  `json:"status_id" binding:"required,gt=0"`
	Tags         string `json:"tags"`
	Activity     string `json:"activity" binding:"required"`
	ActivityType string `json:"activity_type" binding:"required,max=50"`
	DocumentID   int64  `json:"document_id" binding:"required,gt=0"`
	DocumentType string `json:"document_type" binding:"required"`
	UserOwner    string `json:"user_owner" binding:"max=100"`
}

// UpdateRequest represents a partial update of an activity record.
// Nil fields keep their stored values.
type UpdateRequest struct {
	StatusID     *int64  `json:"status_id" binding:"omitempty,gt=0"`
	Tags         *string `json:"tags"`
	Activity     *string `json:"activity" binding:"omitempty,min=1"`
	ActivityType *string `json:"activity_type" binding:"omitempty,min=1,max=50"`
	DocumentID   *int64  `json:"document_id" binding:"omitempty,gt=0"`
	DocumentType *string `json:"document_type"`
	UserOwner    *string `json:"user_owner" binding:"omitempty,max=100"`
}

// RecordResponse represents a raw activity record in API responses
type RecordResponse struct {
	ID           int64     `json:"id"`
	CustomerID   int64     `json:"customer_id"`
	StatusID     int64     `json:"status_id"`
	Tags         string    `json:"tags"`
	Activity     string    `json:"activity"`
	ActivityType string    `json:"activity_type"`
	DocumentID   int64     `json:"document_id"`
	DocumentType string    `json:"document_type"`
	UserOwner    string    `json:"user_owner"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CustomerData is the denormalized customer block of a normalized record
type CustomerData struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	OwnerName string `json:"owner_name"`
}

// StatusData is the denormalized status block of a normalized record
type StatusData struct {
	ID      int64  `json:"id"`
	Process string `json:"process"`
	Status  string `json:"status"`
	Color   int    `json:"color"`
}

// ActivityTypeData is the denormalized activity type block of a normalized record
type ActivityTypeData struct {
	ID       int64  `json:"id"`
	TypeName string `json:"type_name"`
	Color    int    `json:"color"`
}

// NormalizedRecord is an activity record with its customer, status and
// activity type references resolved to display data. Unresolvable
// references leave the corresponding block zero-valued.
type NormalizedRecord struct {
	ID           int64            `json:"id"`
	CustomerData CustomerData     `json:"customer_data"`
	StatusData   StatusData       `json:"status_data"`
	Tags         string           `json:"tags"`
	Activity     string           `json:"activity"`
	ActivityType ActivityTypeData `json:"activity_type"`
	DocumentID   int64            `json:"document_id"`
	DocumentType string           `json:"document_type"`
	UserOwner    string           `json:"user_owner"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// ActivityTypeRequest represents a request to create or update an activity type
type ActivityTypeRequest struct {
	TypeName string `json:"type_name" binding:"required,min=1,max=50"`
	Color    int    `json:"color" binding:"gte=0"`
}

// ActivityTypeResponse represents an activity type in API responses
type ActivityTypeResponse struct {
	ID        int64     `json:"id"`
	TypeName  string    `json:"type_name"`
	Color     int       `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToRecordResponse converts a record to its raw response form
func ToRecordResponse(record *activity.Record) RecordResponse {
	return RecordResponse{
		ID:           record.ID,
		CustomerID:   record.CustomerID,
		StatusID:     record.StatusID,
		Tags:         record.TagsString(),
		Activity:     record.Activity,
		ActivityType: record.TypeName,
		DocumentID:   record.Document.ID,
		DocumentType: record.Document.Type.String(),
		UserOwner:    record.UserOwner,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}

// ToActivityTypeResponse converts an activity type to its response form
func ToActivityTypeResponse(activityType *activity.ActivityType) ActivityTypeResponse {
	return ActivityTypeResponse{
		ID:        activityType.ID,
		TypeName:  activityType.TypeName,
		Color:     activityType.Color,
		CreatedAt: activityType.CreatedAt,
		UpdatedAt: activityType.UpdatedAt,
	}
}
