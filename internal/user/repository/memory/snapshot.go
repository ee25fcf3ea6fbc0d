package memory

import (
	"time"

	"property-listings/internal/user"
)

type snapshotDoc struct {
	Users []userDoc `json:"users"`
}

type userDoc struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

func newSnapshotDoc(us []user.User) snapshotDoc {
	docs := make([]userDoc, len(us))
	for i, u := range us {
		docs[i] = userDoc{
			ID:           u.ID,
			Username:     u.Username,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			CreatedAt:    u.CreatedAt,
		}
	}
	return snapshotDoc{Users: docs}
}

// toUsers drops records without an id and repeated ids or emails.
func (d snapshotDoc) toUsers() []user.User {
	seenID := make(map[string]bool, len(d.Users))
	seenEmail := make(map[string]bool, len(d.Users))
	out := make([]user.User, 0, len(d.Users))
	for _, doc := range d.Users {
		if doc.ID == "" || seenID[doc.ID] || seenEmail[doc.Email] {
			continue
		}
		seenID[doc.ID] = true
		seenEmail[doc.Email] = true
		out = append(out, user.User{
			ID:           doc.ID,
			Username:     doc.Username,
			Email:        doc.Email,
			PasswordHash: doc.PasswordHash,
			CreatedAt:    doc.CreatedAt,
		})
	}
	return out
}
