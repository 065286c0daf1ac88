package directory

import (
	"context"

	"github.com/crm/backend/internal/domain/directory"
	"github.com/crm/backend/internal/domain/shared"
)

// StatusService handles status directory operations
type StatusService struct {
	statuses directory.StatusRepository
}

// NewStatusService creates a new StatusService
func NewStatusService(statuses directory.StatusRepository) *StatusService {
	return &StatusService{statuses: statuses}
}

// Create creates a new status
func (s *StatusService) Create(ctx context.Context, req CreateStatusRequest) (*StatusResponse, error) {
	status, err := directory.NewStatus(req.Process, req.Status, req.Color)
	if err != nil {
		return nil, err
	}
	if err := s.statuses.Save(ctx, status); err != nil {
		return nil, err
	}

	response := ToStatusResponse(status)
	return &response, nil
}

// GetByID retrieves a status by ID
func (s *StatusService) GetByID(ctx context.Context, id int64) (*StatusResponse, error) {
	status, err := s.statuses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToStatusResponse(status)
	return &response, nil
}

// List lists all statuses
func (s *StatusService) List(ctx context.Context, filter shared.Filter) (*shared.Page[StatusResponse], error) {
	filter.Normalize()

	statuses, err := s.statuses.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.statuses.Count(ctx)
	if err != nil {
		return nil, err
	}

	return s.toPage(statuses, total, filter), nil
}

// ListByProcess lists the statuses of one process
func (s *StatusService) ListByProcess(ctx context.Context, process string, filter shared.Filter) (*shared.Page[StatusResponse], error) {
	if process == "" {
		return nil, shared.NewDomainError("INVALID_PROCESS", "Process cannot be empty")
	}
	filter.Normalize()

	statuses, err := s.statuses.FindByProcess(ctx, process, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.statuses.CountByProcess(ctx, process)
	if err != nil {
		return nil, err
	}

	return s.toPage(statuses, total, filter), nil
}

// Update applies a partial update to a status
func (s *StatusService) Update(ctx context.Context, id int64, req UpdateStatusRequest) (*StatusResponse, error) {
	status, err := s.statuses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Process != nil {
		if err := status.SetProcess(*req.Process); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := status.Relabel(*req.Status); err != nil {
			return nil, err
		}
	}
	if req.Color != nil {
		if err := status.SetColor(*req.Color); err != nil {
			return nil, err
		}
	}

	if err := s.statuses.Save(ctx, status); err != nil {
		return nil, err
	}

	response := ToStatusResponse(status)
	return &response, nil
}

// Delete deletes a status
func (s *StatusService) Delete(ctx context.Context, id int64) error {
	if _, err := s.statuses.FindByID(ctx, id); err != nil {
		return err
	}
	return s.statuses.Delete(ctx, id)
}

func (s *StatusService) toPage(statuses []directory.Status, total int64, filter shared.Filter) *shared.Page[StatusResponse] {
	responses := make([]StatusResponse, len(statuses))
	for idx := range statuses {
		responses[idx] = ToStatusResponse(&statuses[idx])
	}
	page := shared.NewPage(responses, total, filter.Page, filter.Limit)
	return &page
}
