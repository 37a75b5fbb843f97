package services

import (
	"context"
	"errors"
	"time"

	"github.com/intervueapp/intervue/internal/cache"
	"github.com/intervueapp/intervue/internal/models"
	mongorepo "github.com/intervueapp/intervue/internal/repositories/mongo"
	"github.com/intervueapp/intervue/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const roleCacheTTL = 5 * time.Minute

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// Sync idempotently creates a user record by email with the default
	// role. Reports whether a record was created.
	Sync(ctx context.Context, name, email, image string) (*models.User, bool, error)
	// ResolveRole returns the role for an authenticated identity,
	// provisioning a candidate record when none exists.
	ResolveRole(ctx context.Context, userID, email string) (models.Role, error)
	SyncExternal(ctx context.Context, externalID, name, email, image string) (*models.User, error)
	DeleteExternal(ctx context.Context, externalID string) error
}

type userService struct {
	users mongorepo.UserRepository
	cache cache.Cache
}

func NewUserService(users mongorepo.UserRepository, c cache.Cache) UserService {
	return &userService{users: users, cache: c}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	const op = "UserService.List"

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list users", err)
	}
	return users, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.User, error) {
	const op = "UserService.GetByID"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid user id", err)
	}

	u, err := s.users.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get user", err)
	}
	return u, nil
}

func (s *userService) Sync(ctx context.Context, name, email, image string) (*models.User, bool, error) {
	const op = "UserService.Sync"

	if name == "" || email == "" {
		return nil, false, utils.E(utils.CodeInvalidArgument, op, "name and email are required", nil)
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, utils.ErrNotFound) {
		return nil, false, utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}

	u := &models.User{
		Name:  name,
		Email: email,
		Image: image,
		Role:  models.RoleCandidate,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			// lost a race with a concurrent sync
			existing, gerr := s.users.GetByEmail(ctx, email)
			if gerr == nil {
				return existing, false, nil
			}
		}
		return nil, false, utils.E(utils.CodeInternal, op, "failed to create user", err)
	}
	return u, true, nil
}

// ResolveRole implements the fail-open default: every authenticated
// identity resolves to some role without admin intervention. When the
// session's user record is missing, a candidate record is provisioned;
// a failed provisioning write is surfaced and grants nothing.
func (s *userService) ResolveRole(ctx context.Context, userID, email string) (models.Role, error) {
	const op = "UserService.ResolveRole"

	if userID == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	key := "role:" + userID
	if s.cache != nil {
		var cached models.Role
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit && cached.Valid() {
			return cached, nil
		}
	}

	role, err := s.lookupOrProvision(ctx, userID, email)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, role, roleCacheTTL)
	}
	return role, nil
}

func (s *userService) lookupOrProvision(ctx context.Context, userID, email string) (models.Role, error) {
	const op = "UserService.ResolveRole"

	if oid, err := primitive.ObjectIDFromHex(userID); err == nil {
		u, err := s.users.GetByID(ctx, oid)
		if err == nil {
			return u.Role, nil
		}
		if !errors.Is(err, utils.ErrNotFound) {
			return "", utils.E(utils.CodeInternal, op, "failed to get user", err)
		}
	}

	// The record behind the session may have been created through
	// another path; match by email before provisioning a duplicate.
	if email != "" {
		u, err := s.users.GetByEmail(ctx, email)
		if err == nil {
			return u.Role, nil
		}
		if !errors.Is(err, utils.ErrNotFound) {
			return "", utils.E(utils.CodeInternal, op, "failed to look up user", err)
		}
	}

	u := &models.User{
		Name:  "Unknown",
		Email: email,
		Role:  models.RoleCandidate,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to provision user record", err)
	}
	return u.Role, nil
}

func (s *userService) SyncExternal(ctx context.Context, externalID, name, email, image string) (*models.User, error) {
	const op = "UserService.SyncExternal"

	if externalID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "external id is required", nil)
	}

	u, err := s.users.UpsertByExternalID(ctx, externalID, name, email, image)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to upsert user", err)
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, "role:"+u.ID.Hex())
	}
	return u, nil
}

func (s *userService) DeleteExternal(ctx context.Context, externalID string) error {
	const op = "UserService.DeleteExternal"

	if externalID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "external id is required", nil)
	}
	if err := s.users.DeleteByExternalID(ctx, externalID); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete user", err)
	}
	return nil
}
