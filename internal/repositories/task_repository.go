package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"task-collab.com/task-collab/internal/domain/identity"
	"task-collab.com/task-collab/internal/domain/task"
	model "task-collab.com/task-collab/internal/models"
)

// TaskRepository stores tasks with gorm. Save overwrites the whole row, so
// concurrent writers to the same task resolve as last write wins.
type TaskRepository struct {
	db *gorm.DB
}

var _ task.Repository = (*TaskRepository)(nil)

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Exists(ctx context.Context, id identity.TaskID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id.String()).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *TaskRepository) Save(ctx context.Context, t *task.Task) error {
	record := toTaskRecord(t.Snapshot())
	return r.db.WithContext(ctx).Save(&record).Error
}

func (r *TaskRepository) GetTaskByID(ctx context.Context, id identity.TaskID) (*task.Task, bool, error) {
	var record model.Task
	err := r.db.WithContext(ctx).First(&record, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	t, err := fromTaskRecord(record)
	if err != nil {
		return nil, false, err
	}
	return t, true, nil
}

func (r *TaskRepository) GetAllActiveTasksOfMember(ctx context.Context, id identity.MemberID) ([]*task.Task, error) {
	var records []model.Task
	query := r.db.WithContext(ctx).
		Where("(owner_id = ? OR assignee_id = ?) AND archived = ? AND discarded = ?",
			id.String(), id.String(), false, false).
		Order("created_at desc")

	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return fromTaskRecords(records)
}

func (r *TaskRepository) GetAllArchivedTasksOfMember(ctx context.Context, id identity.MemberID) ([]*task.Task, error) {
	var records []model.Task
	query := r.db.WithContext(ctx).
		Where("owner_id = ? AND archived = ? AND discarded = ?", id.String(), true, false).
		Order("archived_at desc")

	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return fromTaskRecords(records)
}

func toTaskRecord(s task.Snapshot) model.Task {
	return model.Task{
		ID:          s.ID,
		Description: s.Description,
		OwnerID:     s.OwnerID,
		AssigneeID:  s.AssigneeID,
		TickedOff:   s.TickedOff,
		TickedOffAt: s.TickedOffAt,
		ResumedAt:   s.ResumedAt,
		Archived:    s.Archived,
		ArchivedAt:  s.ArchivedAt,
		Discarded:   s.Discarded,
		DiscardedAt: s.DiscardedAt,
		EditedAt:    s.EditedAt,
		CreatedAt:   s.CreatedAt,
	}
}

func fromTaskRecord(record model.Task) (*task.Task, error) {
	restored := task.Restore(task.Snapshot{
		ID:          record.ID,
		Description: record.Description,
		OwnerID:     record.OwnerID,
		AssigneeID:  record.AssigneeID,
		TickedOff:   record.TickedOff,
		TickedOffAt: record.TickedOffAt,
		ResumedAt:   record.ResumedAt,
		Archived:    record.Archived,
		ArchivedAt:  record.ArchivedAt,
		Discarded:   record.Discarded,
		DiscardedAt: record.DiscardedAt,
		EditedAt:    record.EditedAt,
		CreatedAt:   record.CreatedAt,
	})
	if restored.IsFailure() {
		return nil, fmt.Errorf("restore task %s: %w", record.ID, restored.Error())
	}
	return restored.Value(), nil
}

func fromTaskRecords(records []model.Task) ([]*task.Task, error) {
	tasks := make([]*task.Task, 0, len(records))
	for _, record := range records {
		t, err := fromTaskRecord(record)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
