package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateInvitationCode produces an 8-character uppercase alphanumeric code
// derived from a random UUID. Uniqueness is only guaranteed by the database
// constraint, so callers must treat an insert conflict as retryable.
func GenerateInvitationCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:8])
}
