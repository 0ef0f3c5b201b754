package task

type notedPayload struct {
	Description string `json:"description"`
	OwnerID     string `json:"owner_id"`
	AssigneeID  string `json:"assignee_id"`
}

type actorPayload struct {
	MemberID string `json:"member_id"`
}

type editedPayload struct {
	MemberID    string `json:"member_id"`
	Description string `json:"description"`
}

type assignedPayload struct {
	OwnerID            string `json:"owner_id"`
	PreviousAssigneeID string `json:"previous_assignee_id"`
	AssigneeID         string `json:"assignee_id"`
}
