package elevator

import "github.com/pollwise/admin-tools/internal/domain"

// Outcome describes what a successful Elevate call did.
type Outcome string

const (
	// OutcomeUpdated means the role field was set to admin.
	OutcomeUpdated Outcome = "updated"
	// OutcomeAlreadyAdmin means the user already had the admin role
	// and no write was issued.
	OutcomeAlreadyAdmin Outcome = "already_admin"
)

// Result is the successful outcome of an Elevate call. User carries the
// document as it was read, so Role is the role before any update.
type Result struct {
	Outcome Outcome
	User    domain.User
}
