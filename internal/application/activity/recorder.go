package activity

import (
	"context"

	"github.com/crm/backend/internal/domain/activity"
)

// Recorder appends activity records on behalf of business flows. The
// trade services construct one per transaction over the tx-scoped record
// repository, so the appended record commits or rolls back with the
// business change it describes.
type Recorder struct {
	records activity.RecordRepository
}

// NewRecorder creates a Recorder over the given record repository
func NewRecorder(records activity.RecordRepository) *Recorder {
	return &Recorder{records: records}
}

// Record appends one activity record. Customer id, status snapshot and
// the acting user are explicit parameters.
func (r *Recorder) Record(ctx context.Context, customerID, statusID int64, activityText, typeName string, doc activity.DocumentRef, userOwner string) error {
	record, err := activity.NewRecord(customerID, statusID, activityText, typeName, doc, userOwner)
	if err != nil {
		return err
	}
	return r.records.Save(ctx, record)
}
