package activity

import (
	"context"

	"github.com/crm/backend/internal/domain/activity"
)

// Normalizer resolves the customer, status and activity type references
// of activity records into display data. It batches lookups per page:
// one multi-get per reference kind regardless of page size. A reference
// that resolves to nothing leaves its block zero-valued; normalization
// never fails because of a dangling reference.
type Normalizer struct {
	customers activity.CustomerLookup
	statuses  activity.StatusLookup
	types     activity.TypeLookup
}

// NewNormalizer creates a new Normalizer
func NewNormalizer(customers activity.CustomerLookup, statuses activity.StatusLookup, types activity.TypeLookup) *Normalizer {
	return &Normalizer{
		customers: customers,
		statuses:  statuses,
		types:     types,
	}
}

// NormalizePage normalizes one page of records, preserving their order
func (n *Normalizer) NormalizePage(ctx context.Context, records []activity.Record) ([]NormalizedRecord, error) {
	if len(records) == 0 {
		return []NormalizedRecord{}, nil
	}

	customerIDs := make([]int64, 0, len(records))
	statusIDs := make([]int64, 0, len(records))
	typeNames := make([]string, 0, len(records))
	seenCustomers := make(map[int64]bool)
	seenStatuses := make(map[int64]bool)
	seenTypes := make(map[string]bool)
	for idx := range records {
		if id := records[idx].CustomerID; !seenCustomers[id] {
			seenCustomers[id] = true
			customerIDs = append(customerIDs, id)
		}
		if id := records[idx].StatusID; !seenStatuses[id] {
			seenStatuses[id] = true
			statusIDs = append(statusIDs, id)
		}
		if name := records[idx].TypeName; !seenTypes[name] {
			seenTypes[name] = true
			typeNames = append(typeNames, name)
		}
	}

	customers, err := n.customers.FindInfoByIDs(ctx, customerIDs)
	if err != nil {
		return nil, err
	}
	statuses, err := n.statuses.FindInfoByIDs(ctx, statusIDs)
	if err != nil {
		return nil, err
	}
	types, err := n.types.FindInfoByTypeNames(ctx, typeNames)
	if err != nil {
		return nil, err
	}

	normalized := make([]NormalizedRecord, len(records))
	for idx := range records {
		normalized[idx] = assemble(&records[idx], customers, statuses, types)
	}
	return normalized, nil
}

// NormalizeOne normalizes a single record
func (n *Normalizer) NormalizeOne(ctx context.Context, record *activity.Record) (*NormalizedRecord, error) {
	page, err := n.NormalizePage(ctx, []activity.Record{*record})
	if err != nil {
		return nil, err
	}
	return &page[0], nil
}

func assemble(record *activity.Record, customers map[int64]activity.CustomerInfo, statuses map[int64]activity.StatusInfo, types map[string]activity.TypeInfo) NormalizedRecord {
	normalized := NormalizedRecord{
		ID:           record.ID,
		Tags:         record.TagsString(),
		Activity:     record.Activity,
		DocumentID:   record.Document.ID,
		DocumentType: record.Document.Type.String(),
		UserOwner:    record.UserOwner,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
	if customer, ok := customers[record.CustomerID]; ok {
		normalized.CustomerData = CustomerData{
			ID:        customer.ID,
			Name:      customer.Name,
			OwnerName: customer.OwnerName,
		}
	}
	if status, ok := statuses[record.StatusID]; ok {
		normalized.StatusData = StatusData{
			ID:      status.ID,
			Process: status.Process,
			Status:  status.Status,
			Color:   status.Color,
		}
	}
	if typeInfo, ok := types[record.TypeName]; ok {
		normalized.ActivityType = ActivityTypeData{
			ID:       typeInfo.ID,
			TypeName: typeInfo.TypeName,
			Color:    typeInfo.Color,
		}
	}
	return normalized
}
