package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/kipsang/dukapos-api/internal/domain/entity"
	"github.com/kipsang/dukapos-api/internal/domain/enum"
	"github.com/kipsang/dukapos-api/internal/domain/repository"
	"github.com/kipsang/dukapos-api/pkg/apperror"
	"github.com/kipsang/dukapos-api/pkg/pagination"
)

// UserService handles staff account management
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUser returns a user by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// ListUsers returns users with pagination and search
func (s *UserService) ListUsers(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.User, int64, error) {
	return s.userRepo.List(ctx, params, search)
}

// UpdateUserInput represents the profile fields a user may change
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Photo     *string
}

// UpdateUser updates a user's profile fields
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.Photo != nil {
		user.Photo = input.Photo
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangeRole changes a user's role. An admin cannot demote themselves, so
// the shop always keeps at least the acting admin.
func (s *UserService) ChangeRole(ctx context.Context, actorID, userID uuid.UUID, role enum.Role) (*entity.User, error) {
	if !role.Valid() {
		return nil, apperror.NewBadRequestError("Invalid role")
	}
	if actorID == userID && role != enum.RoleAdmin {
		return nil, apperror.NewBadRequestError("You cannot change your own role")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	user.Role = role
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetActive activates or deactivates a user. Deactivation keeps the account
// and its sales history; the user just cannot sign in anymore.
func (s *UserService) SetActive(ctx context.Context, actorID, userID uuid.UUID, active bool) (*entity.User, error) {
	if actorID == userID && !active {
		return nil, apperror.NewBadRequestError("You cannot deactivate your own account")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	user.IsActive = active
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser soft deletes a user account
func (s *UserService) DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error {
	if actorID == userID {
		return apperror.NewBadRequestError("You cannot delete your own account")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	return s.userRepo.Delete(ctx, userID)
}
