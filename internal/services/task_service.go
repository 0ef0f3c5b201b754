package services

import (
	"task-collab.com/task-collab/internal/domain/comment"
	"task-collab.com/task-collab/internal/domain/events"
	"task-collab.com/task-collab/internal/domain/member"
	"task-collab.com/task-collab/internal/domain/task"
)

// TaskService groups every use case behind one value for the transport layer.
type TaskService struct {
	RegisterMember   *RegisterMember
	NoteTask         *NoteTask
	TickOffTask      *TickOffTask
	ResumeTask       *ResumeTask
	EditTask         *EditTask
	ArchiveTask      *ArchiveTask
	DiscardTask      *DiscardTask
	AssignTask       *AssignTask
	WriteComment     *WriteComment
	GetTask          *GetTask
	GetActiveTasks   *GetActiveTasks
	GetArchivedTasks *GetArchivedTasks
	GetTaskComments  *GetTaskComments
}

func NewTaskService(
	tasks task.Repository,
	members member.Repository,
	comments comment.Repository,
	publisher events.Publisher,
) *TaskService {
	return &TaskService{
		RegisterMember:   NewRegisterMember(members, publisher),
		NoteTask:         NewNoteTask(tasks, members, publisher),
		TickOffTask:      NewTickOffTask(tasks, members, publisher),
		ResumeTask:       NewResumeTask(tasks, members, publisher),
		EditTask:         NewEditTask(tasks, members, publisher),
		ArchiveTask:      NewArchiveTask(tasks, members, publisher),
		DiscardTask:      NewDiscardTask(tasks, members, publisher),
		AssignTask:       NewAssignTask(tasks, members, publisher),
		WriteComment:     NewWriteComment(tasks, members, comments, publisher),
		GetTask:          NewGetTask(tasks, members),
		GetActiveTasks:   NewGetActiveTasks(tasks, members),
		GetArchivedTasks: NewGetArchivedTasks(tasks, members),
		GetTaskComments:  NewGetTaskComments(tasks, members, comments),
	}
}
