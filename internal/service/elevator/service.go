// Package elevator promotes user accounts to the admin role.
package elevator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pollwise/admin-tools/internal/domain"
)

// userRepo defines the user repository interface needed by the elevator service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	SetRole(ctx context.Context, email string, role domain.Role) (int64, error)
}

// Service implements the role elevation operation.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new elevator service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "elevator"),
		users: users,
	}
}

// Elevate promotes the user with the given email to the admin role.
//
// The email is normalized (trimmed, lowercased) before lookup. A user whose
// role is already admin is reported as OutcomeAlreadyAdmin without issuing a
// write. Any other role value, including none, is elevated; the tool never
// insists the prior role was specifically instructor.
//
// Errors: domain.ErrNotFound when no user matches; *UpdateFailedError
// (unwrapping to domain.ErrUpdateFailed, carrying the matched user) when the
// update matched earlier but modified nothing (the document changed between
// read and write — the operation is not retried).
func (s *Service) Elevate(ctx context.Context, email string) (*Result, error) {
	email = domain.NormalizeEmail(email)

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("elevator.Elevate: %w", err)
	}

	s.log.InfoContext(ctx, "user found",
		slog.String("email", u.Email),
		slog.String("role", u.Role.OrDefault().String()),
	)

	if u.Role.IsAdmin() {
		s.log.InfoContext(ctx, "user is already an admin", slog.String("email", u.Email))
		return &Result{Outcome: OutcomeAlreadyAdmin, User: *u}, nil
	}

	modified, err := s.users.SetRole(ctx, email, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("elevator.Elevate: %w", err)
	}
	if modified == 0 {
		// Matched during the read but modified nothing: the document was
		// deleted or updated concurrently.
		return nil, fmt.Errorf("elevator.Elevate: %w", &UpdateFailedError{User: *u})
	}

	s.log.InfoContext(ctx, "user promoted to admin",
		slog.String("email", u.Email),
		slog.String("previous_role", u.Role.OrDefault().String()),
	)

	return &Result{Outcome: OutcomeUpdated, User: *u}, nil
}
