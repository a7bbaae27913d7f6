package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/kipsang/dukapos-api/internal/domain/entity"
	"github.com/kipsang/dukapos-api/internal/domain/repository"
	"github.com/kipsang/dukapos-api/pkg/apperror"
)

// TerminalService handles point-of-sale terminal management. Terminals are
// never deleted; sales and payments reference them forever, so retired
// stations are deactivated instead.
type TerminalService struct {
	terminalRepo repository.TerminalRepository
}

// NewTerminalService creates a new terminal service
func NewTerminalService(terminalRepo repository.TerminalRepository) *TerminalService {
	return &TerminalService{terminalRepo: terminalRepo}
}

// TerminalInput represents the create or update terminal input
type TerminalInput struct {
	Name     string
	Location *string
}

// CreateTerminal registers a new terminal
func (s *TerminalService) CreateTerminal(ctx context.Context, input *TerminalInput) (*entity.Terminal, error) {
	existing, err := s.terminalRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A terminal with this name already exists")
	}

	terminal := &entity.Terminal{
		Name:     input.Name,
		Location: input.Location,
		IsActive: true,
	}

	if err := s.terminalRepo.Create(ctx, terminal); err != nil {
		return nil, err
	}

	return terminal, nil
}

// GetTerminal retrieves a terminal by ID
func (s *TerminalService) GetTerminal(ctx context.Context, id uuid.UUID) (*entity.Terminal, error) {
	terminal, err := s.terminalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if terminal == nil {
		return nil, apperror.NewNotFoundError("Terminal")
	}
	return terminal, nil
}

// ListTerminals lists terminals, optionally only active ones
func (s *TerminalService) ListTerminals(ctx context.Context, activeOnly bool) ([]entity.Terminal, error) {
	return s.terminalRepo.List(ctx, activeOnly)
}

// UpdateTerminal updates a terminal's name and location
func (s *TerminalService) UpdateTerminal(ctx context.Context, id uuid.UUID, input *TerminalInput) (*entity.Terminal, error) {
	terminal, err := s.terminalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if terminal == nil {
		return nil, apperror.NewNotFoundError("Terminal")
	}

	if input.Name != terminal.Name {
		existing, err := s.terminalRepo.GetByName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != terminal.ID {
			return nil, apperror.NewConflictError("A terminal with this name already exists")
		}
		terminal.Name = input.Name
	}
	terminal.Location = input.Location

	if err := s.terminalRepo.Update(ctx, terminal); err != nil {
		return nil, err
	}

	return terminal, nil
}

// SetActive activates or deactivates a terminal
func (s *TerminalService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*entity.Terminal, error) {
	terminal, err := s.terminalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if terminal == nil {
		return nil, apperror.NewNotFoundError("Terminal")
	}

	terminal.IsActive = active
	if err := s.terminalRepo.Update(ctx, terminal); err != nil {
		return nil, err
	}

	return terminal, nil
}
