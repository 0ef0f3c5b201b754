package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"task-collab.com/task-collab/internal/domain/identity"
	"task-collab.com/task-collab/internal/domain/member"
	model "task-collab.com/task-collab/internal/models"
)

type MemberRepository struct {
	db *gorm.DB
}

var _ member.Repository = (*MemberRepository)(nil)

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Exists(ctx context.Context, id identity.MemberID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Member{}).Where("id = ?", id.String()).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MemberRepository) GetMemberByID(ctx context.Context, id identity.MemberID) (*member.Member, bool, error) {
	return r.findOne(ctx, "id = ?", id.String())
}

func (r *MemberRepository) GetMemberByUserID(ctx context.Context, userID identity.UserID) (*member.Member, bool, error) {
	return r.findOne(ctx, "user_id = ?", userID.String())
}

func (r *MemberRepository) Save(ctx context.Context, m *member.Member) error {
	s := m.Snapshot()
	record := model.Member{
		ID:        s.ID,
		UserID:    s.UserID,
		CreatedAt: s.CreatedAt,
	}
	err := r.db.WithContext(ctx).Create(&record).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return member.ErrAlreadyRegistered
	}
	return err
}

func (r *MemberRepository) findOne(ctx context.Context, query string, arg string) (*member.Member, bool, error) {
	var record model.Member
	err := r.db.WithContext(ctx).First(&record, query, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	restored := member.Restore(member.Snapshot{
		ID:        record.ID,
		UserID:    record.UserID,
		CreatedAt: record.CreatedAt,
	})
	if restored.IsFailure() {
		return nil, false, fmt.Errorf("restore member %s: %w", record.ID, restored.Error())
	}
	return restored.Value(), true, nil
}
