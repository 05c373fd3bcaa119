package entity

import "github.com/google/uuid"

// Session identifies the authenticated caller of a request.
type Session struct {
	UserID         uuid.UUID `json:"user_id"`         // The authenticated user.
	OrganizationID uuid.UUID `json:"organization_id"` // The organization the user belongs to.
	Role           string    `json:"role"`            // The user's role, e.g. "user" or "admin".
}
