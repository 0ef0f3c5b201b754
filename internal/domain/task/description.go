package task

import (
	"unicode/utf8"

	"task-collab.com/task-collab/internal/domain/result"
	apperr "task-collab.com/task-collab/internal/errors"
)

const (
	MinDescriptionLength = 2
	MaxDescriptionLength = 250
)

// Description is the immutable text of a task, bounded in characters.
type Description struct {
	value string
}

func NewDescription(text string) result.Result[Description] {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return result.Fail[Description](apperr.Validation("description is required"))
	}
	if n < MinDescriptionLength {
		return result.Fail[Description](apperr.Validation(
			"description must be at least %d characters", MinDescriptionLength))
	}
	if n > MaxDescriptionLength {
		return result.Fail[Description](apperr.Validation(
			"description must be at most %d characters", MaxDescriptionLength))
	}
	return result.Ok(Description{value: text})
}

func (d Description) String() string {
	return d.value
}

func (d Description) Equals(other Description) bool {
	return d.value == other.value
}
