package services

import (
	"context"
	"errors"
	"fmt"

	"task-collab.com/task-collab/internal/domain/events"
	"task-collab.com/task-collab/internal/domain/identity"
	"task-collab.com/task-collab/internal/domain/member"
	apperr "task-collab.com/task-collab/internal/errors"
)

type RegisterMemberRequest struct {
	UserID string
}

// RegisterMember creates the one member of a user.
type RegisterMember struct {
	members   member.Repository
	publisher events.Publisher
}

func NewRegisterMember(members member.Repository, publisher events.Publisher) *RegisterMember {
	return &RegisterMember{members: members, publisher: publisher}
}

func (uc *RegisterMember) Execute(ctx context.Context, req RegisterMemberRequest) (resp Response[*member.Member]) {
	const op = "register member"
	defer guard(op, &resp)

	userID := identity.ParseUserID(req.UserID)
	if userID.IsFailure() {
		return failWith[*member.Member](op, userID.Error())
	}

	_, found, err := uc.members.GetMemberByUserID(ctx, userID.Value())
	if err != nil {
		return unexpected[*member.Member](op, fmt.Errorf("get member of user %s: %w", userID.Value(), err))
	}
	if found {
		return fail[*member.Member](apperr.Conflict("a member already exists for user %s", userID.Value()))
	}

	m := member.Register(userID.Value())
	if err := uc.members.Save(ctx, m); err != nil {
		if errors.Is(err, member.ErrAlreadyRegistered) {
			return fail[*member.Member](apperr.Conflict("a member already exists for user %s", userID.Value()))
		}
		return unexpected[*member.Member](op, fmt.Errorf("save member %s: %w", m.ID(), err))
	}

	publish(ctx, uc.publisher, op, m)
	return succeed(m)
}
