package entity

type Role string

const (
	RoleParticipant Role = "participant"
	RoleOrganizer   Role = "organizer"
	RoleAdmin       Role = "admin"
)

// ParseRole maps a raw string onto the closed role set.
// Unknown values fall back to participant, matching the registration default.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleOrganizer:
		return RoleOrganizer
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleParticipant
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleParticipant, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}
