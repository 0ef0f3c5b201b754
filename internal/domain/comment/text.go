package comment

import (
	"strings"

	"task-collab.com/task-collab/internal/domain/result"
	apperr "task-collab.com/task-collab/internal/errors"
)

// Text is the immutable, non-empty body of a comment.
type Text struct {
	value string
}

func NewText(text string) result.Result[Text] {
	if strings.TrimSpace(text) == "" {
		return result.Fail[Text](apperr.Validation("comment text is required"))
	}
	return result.Ok(Text{value: text})
}

func (t Text) String() string {
	return t.value
}
