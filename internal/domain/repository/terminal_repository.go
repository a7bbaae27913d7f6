package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/kipsang/dukapos-api/internal/domain/entity"
)

// TerminalRepository defines the interface for terminal data operations
type TerminalRepository interface {
	Create(ctx context.Context, terminal *entity.Terminal) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Terminal, error)
	GetByName(ctx context.Context, name string) (*entity.Terminal, error)
	Update(ctx context.Context, terminal *entity.Terminal) error
	List(ctx context.Context, activeOnly bool) ([]entity.Terminal, error)
}
