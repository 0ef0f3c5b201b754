package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"task-collab.com/task-collab/internal/domain/comment"
	"task-collab.com/task-collab/internal/domain/identity"
	model "task-collab.com/task-collab/internal/models"
)

type CommentRepository struct {
	db *gorm.DB
}

var _ comment.Repository = (*CommentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Exists(ctx context.Context, id identity.CommentID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id.String()).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save inserts the comment. Comments are immutable, so an existing id is an error.
func (r *CommentRepository) Save(ctx context.Context, c *comment.Comment) error {
	s := c.Snapshot()
	record := model.Comment{
		ID:        s.ID,
		TaskID:    s.TaskID,
		AuthorID:  s.AuthorID,
		Text:      s.Text,
		CreatedAt: s.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&record).Error
}

func (r *CommentRepository) GetCommentsOfTask(ctx context.Context, taskID identity.TaskID) ([]*comment.Comment, error) {
	var records []model.Comment
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID.String()).
		Order("created_at asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*comment.Comment, 0, len(records))
	for _, record := range records {
		restored := comment.Restore(comment.Snapshot{
			ID:        record.ID,
			AuthorID:  record.AuthorID,
			Text:      record.Text,
			TaskID:    record.TaskID,
			CreatedAt: record.CreatedAt,
		})
		if restored.IsFailure() {
			return nil, fmt.Errorf("restore comment %s: %w", record.ID, restored.Error())
		}
		comments = append(comments, restored.Value())
	}
	return comments, nil
}
