package directory

import (
	"strings"

	"github.com/crm/backend/internal/domain/shared"
)

// Status is a pipeline status directory entry. Each status belongs to a
// process (the pipeline it applies to, such as "quotes" or "orders") and
// carries a display color. Activity records snapshot status ids.
type Status struct {
	shared.BaseEntity
	Process string
	Status  string
	Color   int
}

// NewStatus creates a new status directory entry
func NewStatus(process, statusLabel string, color int) (*Status, error) {
	process = strings.TrimSpace(process)
	if process == "" {
		return nil, shared.NewDomainError("INVALID_PROCESS", "Process cannot be empty")
	}
	statusLabel = strings.TrimSpace(statusLabel)
	if statusLabel == "" {
		return nil, shared.NewDomainError("INVALID_STATUS_LABEL", "Status label cannot be empty")
	}
	if color < 0 {
		return nil, shared.NewDomainError("INVALID_COLOR", "Color must be non-negative")
	}

	return &Status{
		BaseEntity: shared.NewBaseEntity(),
		Process:    process,
		Status:     statusLabel,
		Color:      color,
	}, nil
}

// Relabel changes the status label
func (s *Status) Relabel(statusLabel string) error {
	statusLabel = strings.TrimSpace(statusLabel)
	if statusLabel == "" {
		return shared.NewDomainError("INVALID_STATUS_LABEL", "Status label cannot be empty")
	}
	s.Status = statusLabel
	s.Touch()
	return nil
}

// SetProcess moves the status to another process
func (s *Status) SetProcess(process string) error {
	process = strings.TrimSpace(process)
	if process == "" {
		return shared.NewDomainError("INVALID_PROCESS", "Process cannot be empty")
	}
	s.Process = process
	s.Touch()
	return nil
}

// SetColor changes the display color
func (s *Status) SetColor(color int) error {
	if color < 0 {
		return shared.NewDomainError("INVALID_COLOR", "Color must be non-negative")
	}
	s.Color = color
	s.Touch()
	return nil
}
