package task

import (
	"task-collab.com/task-collab/internal/domain/identity"
	"task-collab.com/task-collab/internal/domain/specification"
)

// MemberMustBeTaskOwner is satisfied by the task's owner only.
func MemberMustBeTaskOwner(t *Task) specification.Specification[identity.OwnerID] {
	return specification.Func[identity.OwnerID](func(owner identity.OwnerID) bool {
		return t.ownerID.Equals(owner)
	})
}

// MemberMustBeTaskAssignee is satisfied by the task's current assignee only.
func MemberMustBeTaskAssignee(t *Task) specification.Specification[identity.AssigneeID] {
	return specification.Func[identity.AssigneeID](func(assignee identity.AssigneeID) bool {
		return t.assigneeID.Equals(assignee)
	})
}

func MemberIsNotAssignedToTask(t *Task) specification.Specification[identity.AssigneeID] {
	return specification.Not(MemberMustBeTaskAssignee(t))
}

// MemberHasNotYetBeenAssigned gates assignment: assigning the current
// assignee again is a no-op.
func MemberHasNotYetBeenAssigned(t *Task) specification.Specification[identity.AssigneeID] {
	return MemberIsNotAssignedToTask(t)
}

func OnlyOwnerCanAssignTask(t *Task) specification.Specification[identity.OwnerID] {
	return MemberMustBeTaskOwner(t)
}

func OnlyAssigneeCanTickOffTask(t *Task) specification.Specification[identity.AssigneeID] {
	return MemberMustBeTaskAssignee(t)
}

func OnlyAssigneeCanResumeTask(t *Task) specification.Specification[identity.AssigneeID] {
	return MemberMustBeTaskAssignee(t)
}

// MemberIsOwnerOrAssignee evaluates the owner and assignee rules against a
// single member identity.
func MemberIsOwnerOrAssignee(t *Task) specification.Specification[identity.MemberID] {
	return specification.Or(
		specification.Adapt(MemberMustBeTaskOwner(t), identity.OwnerOf),
		specification.Adapt(MemberMustBeTaskAssignee(t), identity.AssigneeOf),
	)
}
