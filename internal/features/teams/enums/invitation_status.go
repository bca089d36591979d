package teams_enums

// InvitationStatus is the stored lifecycle state of a team invitation.
// Expiry is evaluated lazily against expires_at; StatusExpired is only
// ever reported, never written back to the row.
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusDeclined InvitationStatus = "declined"
	InvitationStatusExpired  InvitationStatus = "expired"
)

func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationStatusPending, InvitationStatusAccepted, InvitationStatusDeclined, InvitationStatusExpired:
		return true
	}
	return false
}
