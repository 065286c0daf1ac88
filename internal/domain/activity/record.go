package activity

import (
	"time"

	"github.com/crm/backend/internal/domain/shared"
)

// Well-known activity type names. The ActivityType directory maps each
// name to a display color; these constants are the names business flows
// record with.
const (
	TypeNameCreate  = "Create"
	TypeNameUpdate  = "Update"
	TypeNameDelete  = "Delete"
	TypeNameSet     = "Set"
	TypeNameConvert = "Convert"
	TypeNameUpload  = "Upload"
)

// Record is a single audit-log entry describing one business action.
// Records are effectively append-only: once created, the activity text,
// document reference and creation timestamp never change.
type Record struct {
	shared.BaseEntity
	CustomerID int64
	StatusID   int64 // status snapshot at the time of the activity, not a live reference
	Tags       []byte
	Activity   string
	TypeName   string
	Document   DocumentRef
	UserOwner  string
}

// NewRecord creates a new activity record with required fields.
// Referenced customer and status ids are not verified against their
// directories; a dangling reference is legal and degrades to blank
// display data at read time.
func NewRecord(customerID, statusID int64, activityText, typeName string, doc DocumentRef, userOwner string) (*Record, error) {
	if customerID <= 0 {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID must be positive")
	}
	if statusID <= 0 {
		return nil, shared.NewDomainError("INVALID_STATUS", "Status ID must be positive")
	}
	if activityText == "" {
		return nil, shared.NewDomainError("INVALID_ACTIVITY", "Activity text cannot be empty")
	}
	if typeName == "" {
		return nil, shared.NewDomainError("INVALID_ACTIVITY_TYPE", "Activity type name cannot be empty")
	}
	if !doc.Type.IsValid() {
		return nil, shared.NewDomainError("INVALID_DOCUMENT_TYPE", "Unknown document type: "+string(doc.Type))
	}
	if doc.ID <= 0 {
		return nil, shared.NewDomainError("INVALID_DOCUMENT_ID", "Document ID must be positive")
	}

	return &Record{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		StatusID:   statusID,
		Activity:   activityText,
		TypeName:   typeName,
		Document:   doc,
		UserOwner:  userOwner,
	}, nil
}

// SetTags attaches free-text tags, stored as raw UTF-8 bytes
func (r *Record) SetTags(tags string) {
	if tags == "" {
		r.Tags = nil
	} else {
		r.Tags = []byte(tags)
	}
	r.Touch()
}

// TagsString returns the tags blob decoded as a UTF-8 string
func (r *Record) TagsString() string {
	return string(r.Tags)
}

// SetStatusSnapshot replaces the recorded status snapshot
func (r *Record) SetStatusSnapshot(statusID int64) error {
	if statusID <= 0 {
		return shared.NewDomainError("INVALID_STATUS", "Status ID must be positive")
	}
	r.StatusID = statusID
	r.Touch()
	return nil
}

// SetTypeName replaces the activity type name
func (r *Record) SetTypeName(typeName string) error {
	if typeName == "" {
		return shared.NewDomainError("INVALID_ACTIVITY_TYPE", "Activity type name cannot be empty")
	}
	r.TypeName = typeName
	r.Touch()
	return nil
}

// SetUserOwner replaces the acting user display name
func (r *Record) SetUserOwner(userOwner string) {
	r.UserOwner = userOwner
	r.Touch()
}

// Age returns how long ago the record was created
func (r *Record) Age() time.Duration {
	return time.Since(r.CreatedAt)
}
