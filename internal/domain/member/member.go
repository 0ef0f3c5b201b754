// Package member binds a registered user to the identity under which it
// owns tasks, is assigned tasks and authors comments.
package member

import (
	"context"
	"errors"
	"time"

	"task-collab.com/task-collab/internal/domain/events"
	"task-collab.com/task-collab/internal/domain/identity"
	"task-collab.com/task-collab/internal/domain/result"
)

type Member struct {
	events.Recorder

	id        identity.MemberID
	userID    identity.UserID
	createdAt time.Time
}

type registeredPayload struct {
	UserID string `json:"user_id"`
}

// Register creates the member of a freshly registered user.
func Register(userID identity.UserID) *Member {
	m := &Member{
		id:        identity.NewMemberID(),
		userID:    userID,
		createdAt: time.Now().UTC(),
	}
	m.Record(events.New(events.MemberRegistered, m.id.String(), m.createdAt, registeredPayload{
		UserID: userID.String(),
	}))
	return m
}

func (m *Member) ID() identity.MemberID           { return m.id }
func (m *Member) UserID() identity.UserID         { return m.userID }
func (m *Member) CreatedAt() time.Time            { return m.createdAt }
func (m *Member) OwnerID() identity.OwnerID       { return identity.OwnerOf(m.id) }
func (m *Member) AssigneeID() identity.AssigneeID { return identity.AssigneeOf(m.id) }
func (m *Member) AuthorID() identity.AuthorID     { return identity.AuthorOf(m.id) }

type Snapshot struct {
	ID        string
	UserID    string
	CreatedAt time.Time
}

func (m *Member) Snapshot() Snapshot {
	return Snapshot{
		ID:        m.id.String(),
		UserID:    m.userID.String(),
		CreatedAt: m.createdAt,
	}
}

func Restore(s Snapshot) result.Result[*Member] {
	id := identity.ParseMemberID(s.ID)
	userID := identity.ParseUserID(s.UserID)
	if combined := result.Combine(id, userID); combined.IsFailure() {
		return result.Fail[*Member](combined.Error())
	}
	return result.Ok(&Member{
		id:        id.Value(),
		userID:    userID.Value(),
		createdAt: s.CreatedAt,
	})
}

// Repository is the persistence port for members.
// ErrAlreadyRegistered is returned by Save when the user already has a member.
var ErrAlreadyRegistered = errors.New("user already has a member")

type Repository interface {
	Exists(ctx context.Context, id identity.MemberID) (bool, error)
	GetMemberByID(ctx context.Context, id identity.MemberID) (m *Member, found bool, err error)
	GetMemberByUserID(ctx context.Context, userID identity.UserID) (m *Member, found bool, err error)
	Save(ctx context.Context, m *Member) error
}
