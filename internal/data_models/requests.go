package dto

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type NoteTaskRequest struct {
	Description string `json:"description"`
}

type EditTaskRequest struct {
	Description string `json:"description"`
}

type AssignTaskRequest struct {
	AssigneeID string `json:"assignee_id"`
}

type WriteCommentRequest struct {
	Text string `json:"text"`
}
