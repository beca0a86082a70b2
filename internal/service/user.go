package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dev-bomo/cuvinte-banatene/internal/models"
	"github.com/dev-bomo/cuvinte-banatene/internal/repository"
)

var (
	// ErrSelfDelete signals an admin trying to delete their own account.
	ErrSelfDelete = errors.New("cannot delete your own account")
	// ErrInvalidRole signals a role outside the admin/contributor set.
	ErrInvalidRole = errors.New("invalid role")
)

// UserUpdate carries a partial user update; nil fields are left untouched.
// Password changes are not accepted on this path.
type UserUpdate struct {
	Username *string
	Email    *string
	Role     *string
}

func (u UserUpdate) empty() bool {
	return u.Username == nil && u.Email == nil && u.Role == nil
}

// UserService implements admin-facing account management.
type UserService interface {
	Create(ctx context.Context, username, email, password, role string) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id string, in UserUpdate) (*models.User, error)
	Delete(ctx context.Context, actorID, id string) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Create makes an account with an explicit role. The account starts
// unverified with a token on file, but no verification mail is sent;
// admin-created users go through the resend flow if they need one.
func (s *userService) Create(ctx context.Context, username, email, password, role string) (*models.User, error) {
	if role == "" {
		role = models.RoleContributor
	}
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	token, err := newVerificationToken()
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:                     uuid.NewString(),
		Username:               username,
		Email:                  email,
		PasswordHash:           string(hash),
		Role:                   role,
		EmailVerified:          false,
		EmailVerificationToken: &token,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *userService) Update(ctx context.Context, id string, in UserUpdate) (*models.User, error) {
	if in.empty() {
		return nil, ErrNoUpdates
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Role != nil {
		if !models.ValidRole(*in.Role) {
			return nil, ErrInvalidRole
		}
		user.Role = *in.Role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(ctx, id)
}

// Delete removes an account. The acting admin cannot delete themselves.
func (s *userService) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return ErrSelfDelete
	}
	return s.userRepo.Delete(ctx, id)
}
