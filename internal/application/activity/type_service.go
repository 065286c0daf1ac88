package activity

import (
	"context"

	"github.com/crm/backend/internal/domain/activity"
	"github.com/crm/backend/internal/domain/shared"
)

// TypeService handles activity type directory operations
type TypeService struct {
	types activity.ActivityTypeRepository
}

// NewTypeService creates a new TypeService
func NewTypeService(types activity.ActivityTypeRepository) *TypeService {
	return &TypeService{types: types}
}

// Create creates a new activity type
func (s *TypeService) Create(ctx context.Context, req ActivityTypeRequest) (*ActivityTypeResponse, error) {
	exists, err := s.types.ExistsByTypeName(ctx, req.TypeName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Activity type with this name already exists")
	}

	activityType, err := activity.NewActivityType(req.TypeName, req.Color)
	if err != nil {
		return nil, err
	}
	if err := s.types.Save(ctx, activityType); err != nil {
		return nil, err
	}

	response := ToActivityTypeResponse(activityType)
	return &response, nil
}

// GetByID retrieves an activity type by ID
func (s *TypeService) GetByID(ctx context.Context, id int64) (*ActivityTypeResponse, error) {
	activityType, err := s.types.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToActivityTypeResponse(activityType)
	return &response, nil
}

// GetByTypeName retrieves an activity type by its unique name
func (s *TypeService) GetByTypeName(ctx context.Context, typeName string) (*ActivityTypeResponse, error) {
	activityType, err := s.types.FindByTypeName(ctx, typeName)
	if err != nil {
		return nil, err
	}
	response := ToActivityTypeResponse(activityType)
	return &response, nil
}

// List lists activity types
func (s *TypeService) List(ctx context.Context, filter shared.Filter) (*shared.Page[ActivityTypeResponse], error) {
	filter.Normalize()

	activityTypes, err := s.types.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.types.Count(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ActivityTypeResponse, len(activityTypes))
	for idx := range activityTypes {
		responses[idx] = ToActivityTypeResponse(&activityTypes[idx])
	}
	page := shared.NewPage(responses, total, filter.Page, filter.Limit)
	return &page, nil
}

// Update updates an activity type
func (s *TypeService) Update(ctx context.Context, id int64, req ActivityTypeRequest) (*ActivityTypeResponse, error) {
	activityType, err := s.types.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TypeName != activityType.TypeName {
		exists, err := s.types.ExistsByTypeName(ctx, req.TypeName)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Activity type with this name already exists")
		}
		if err := activityType.Rename(req.TypeName); err != nil {
			return nil, err
		}
	}
	if err := activityType.SetColor(req.Color); err != nil {
		return nil, err
	}

	if err := s.types.Save(ctx, activityType); err != nil {
		return nil, err
	}

	response := ToActivityTypeResponse(activityType)
	return &response, nil
}

// Delete deletes an activity type
func (s *TypeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.types.FindByID(ctx, id); err != nil {
		return err
	}
	return s.types.Delete(ctx, id)
}
