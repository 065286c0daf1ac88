package activity

import (
	"context"

	"github.com/crm/backend/internal/domain/activity"
	"github.com/crm/backend/internal/domain/shared"
)

// HistoryService handles the activity history operations
type HistoryService struct {
	records    activity.RecordRepository
	normalizer *Normalizer
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(records activity.RecordRepository, normalizer *Normalizer) *HistoryService {
	return &HistoryService{
		records:    records,
		normalizer: normalizer,
	}
}

// Append appends a new activity record. The customer and status ids are
// recorded as given without directory validation; the document type must
// belong to the closed enum.
func (s *HistoryService) Append(ctx context.Context, req AppendRequest) (*RecordResponse, error) {
	doc, err := activity.NewDocumentRef(activity.DocumentType(req.DocumentType), req.DocumentID)
	if err != nil {
		return nil, err
	}

	record, err := activity.NewRecord(req.CustomerID, req.StatusID, req.Activity, req.ActivityType, doc, req.UserOwner)
	if err != nil {
		return nil, err
	}
	if req.Tags != "" {
		record.SetTags(req.Tags)
	}

	if err := s.records.Save(ctx, record); err != nil {
		return nil, err
	}

	response := ToRecordResponse(record)
	return &response, nil
}

// GetByID retrieves one normalized activity record
func (s *HistoryService) GetByID(ctx context.Context, id int64) (*NormalizedRecord, error) {
	record, err := s.records.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.normalizer.NormalizeOne(ctx, record)
}

// ListAll lists all activity records in insertion order, id ascending
func (s *HistoryService) ListAll(ctx context.Context, filter shared.Filter) (*shared.Page[NormalizedRecord], error) {
	filter.Normalize()

	records, err := s.records.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.records.Count(ctx)
	if err != nil {
		return nil, err
	}

	return s.normalizePage(ctx, records, total, filter)
}

// ListByCustomer lists a customer's records, newest first
func (s *HistoryService) ListByCustomer(ctx context.Context, customerID int64, filter shared.Filter) (*shared.Page[NormalizedRecord], error) {
	if customerID <= 0 {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID must be positive")
	}
	filter.Normalize()

	records, err := s.records.FindByCustomer(ctx, customerID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.records.CountByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return s.normalizePage(ctx, records, total, filter)
}

// ListByDocument lists a document's records, newest first, optionally
// restricted to the given activity type names
func (s *HistoryService) ListByDocument(ctx context.Context, docType string, docID int64, typeNames []string, filter shared.Filter) (*shared.Page[NormalizedRecord], error) {
	ref, err := activity.NewDocumentRef(activity.DocumentType(docType), docID)
	if err != nil {
		return nil, err
	}
	filter.Normalize()

	records, err := s.records.FindByDocument(ctx, ref, typeNames, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.records.CountByDocument(ctx, ref, typeNames)
	if err != nil {
		return nil, err
	}

	return s.normalizePage(ctx, records, total, filter)
}

// Update applies a partial update to an existing record. A missing id is
// an error; updates never create records.
func (s *HistoryService) Update(ctx context.Context, id int64, req UpdateRequest) (*RecordResponse, error) {
	record, err := s.records.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.StatusID != nil {
		if err := record.SetStatusSnapshot(*req.StatusID); err != nil {
			return nil, err
		}
	}
	if req.Tags != nil {
		record.SetTags(*req.Tags)
	}
	if req.Activity != nil {
		if *req.Activity == "" {
			return nil, shared.NewDomainError("INVALID_ACTIVITY", "Activity text cannot be empty")
		}
		record.Activity = *req.Activity
		record.Touch()
	}
	if req.ActivityType != nil {
		if err := record.SetTypeName(*req.ActivityType); err != nil {
			return nil, err
		}
	}
	if req.DocumentType != nil || req.DocumentID != nil {
		docType := record.Document.Type
		docID := record.Document.ID
		if req.DocumentType != nil {
			docType = activity.DocumentType(*req.DocumentType)
		}
		if req.DocumentID != nil {
			docID = *req.DocumentID
		}
		doc, err := activity.NewDocumentRef(docType, docID)
		if err != nil {
			return nil, err
		}
		record.Document = doc
		record.Touch()
	}
	if req.UserOwner != nil {
		record.SetUserOwner(*req.UserOwner)
	}

	if err := s.records.Save(ctx, record); err != nil {
		return nil, err
	}

	response := ToRecordResponse(record)
	return &response, nil
}

// Delete deletes an activity record
func (s *HistoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.records.FindByID(ctx, id); err != nil {
		return err
	}
	return s.records.Delete(ctx, id)
}

func (s *HistoryService) normalizePage(ctx context.Context, records []activity.Record, total int64, filter shared.Filter) (*shared.Page[NormalizedRecord], error) {
	normalized, err := s.normalizer.NormalizePage(ctx, records)
	if err != nil {
		return nil, err
	}
	page := shared.NewPage(normalized, total, filter.Page, filter.Limit)
	return &page, nil
}
