package entity

// Salon is a pre-established 1:1 conversation scope. This core never creates
// salons; it only reads them to resolve the other participant of a send.
type Salon struct {
	ID           string
	Participants []string
}

// OtherParticipant returns the participant that is not the given sender, or
// an empty string when the sender is not part of the salon.
func (s *Salon) OtherParticipant(senderID string) string {
	found := false
	other := ""
	for _, p := range s.Participants {
		if p == senderID {
			found = true

			continue
		}
		other = p
	}

	if !found {
		return ""
	}

	return other
}
