package elevator

import (
	"fmt"

	"github.com/pollwise/admin-tools/internal/domain"
)

// UpdateFailedError reports that the update matched a user during the read
// but modified no documents: the document was deleted or changed concurrently.
// It carries the user as read so callers can still report who was matched.
// Unwraps to domain.ErrUpdateFailed.
type UpdateFailedError struct {
	User domain.User
}

func (e *UpdateFailedError) Error() string {
	return fmt.Sprintf("update for %s modified no documents", e.User.Email)
}

func (e *UpdateFailedError) Unwrap() error { return domain.ErrUpdateFailed }
