// Package identity provides typed wrappers around opaque UUID identifiers.
// Two identifiers of the same kind are equal iff their values match; the
// kind parameter keeps a TaskID from being passed where an OwnerID is due.
package identity

import (
	"github.com/google/uuid"

	"task-collab.com/task-collab/internal/domain/result"
	apperr "task-collab.com/task-collab/internal/errors"
)

type (
	taskKind     struct{}
	memberKind   struct{}
	ownerKind    struct{}
	assigneeKind struct{}
	authorKind   struct{}
	commentKind  struct{}
	userKind     struct{}
)

type ID[K any] struct {
	value uuid.UUID
}

type (
	TaskID     = ID[taskKind]
	MemberID   = ID[memberKind]
	OwnerID    = ID[ownerKind]
	AssigneeID = ID[assigneeKind]
	AuthorID   = ID[authorKind]
	CommentID  = ID[commentKind]
	UserID     = ID[userKind]
)

func newID[K any]() ID[K] {
	return ID[K]{value: uuid.New()}
}

func parse[K any](field, raw string) result.Result[ID[K]] {
	if raw == "" {
		return result.Fail[ID[K]](apperr.Validation("%s is required", field))
	}
	v, err := uuid.Parse(raw)
	if err != nil {
		return result.Fail[ID[K]](apperr.Validation("%s must be a valid UUID", field))
	}
	return result.Ok(ID[K]{value: v})
}

func (id ID[K]) String() string {
	return id.value.String()
}

func (id ID[K]) IsZero() bool {
	return id.value == uuid.Nil
}

func (id ID[K]) Equals(other ID[K]) bool {
	return id.value == other.value
}

func (id ID[K]) MarshalText() ([]byte, error) {
	return []byte(id.value.String()), nil
}

func (id *ID[K]) UnmarshalText(text []byte) error {
	v, err := uuid.ParseBytes(text)
	if err != nil {
		return err
	}
	id.value = v
	return nil
}

func NewTaskID() TaskID       { return newID[taskKind]() }
func NewMemberID() MemberID   { return newID[memberKind]() }
func NewCommentID() CommentID { return newID[commentKind]() }
func NewUserID() UserID       { return newID[userKind]() }

func ParseTaskID(raw string) result.Result[TaskID]         { return parse[taskKind]("task id", raw) }
func ParseMemberID(raw string) result.Result[MemberID]     { return parse[memberKind]("member id", raw) }
func ParseOwnerID(raw string) result.Result[OwnerID]       { return parse[ownerKind]("owner id", raw) }
func ParseAssigneeID(raw string) result.Result[AssigneeID] { return parse[assigneeKind]("assignee id", raw) }
func ParseAuthorID(raw string) result.Result[AuthorID]     { return parse[authorKind]("author id", raw) }
func ParseCommentID(raw string) result.Result[CommentID]   { return parse[commentKind]("comment id", raw) }
func ParseUserID(raw string) result.Result[UserID]         { return parse[userKind]("user id", raw) }

// Member capabilities share the member's underlying value: a member owns,
// is assigned and authors under the same identifier.

func OwnerOf(m MemberID) OwnerID       { return OwnerID{value: m.value} }
func AssigneeOf(m MemberID) AssigneeID { return AssigneeID{value: m.value} }
func AuthorOf(m MemberID) AuthorID     { return AuthorID{value: m.value} }
