package services

import (
	"context"
	"sort"
	"sync"

	"task-collab.com/task-collab/internal/domain/comment"
	"task-collab.com/task-collab/internal/domain/events"
	"task-collab.com/task-collab/internal/domain/identity"
	"task-collab.com/task-collab/internal/domain/member"
	"task-collab.com/task-collab/internal/domain/task"
)

// memoryTasks keeps snapshots rather than pointers so every fetch returns a
// fresh aggregate, the way a real store would.
type memoryTasks struct {
	mu       sync.Mutex
	rows     map[identity.TaskID]task.Snapshot
	saves    int
	gets     int
	saveErr  error
	getErr   error
	getPanic bool
}

func newMemoryTasks() *memoryTasks {
	return &memoryTasks{rows: make(map[identity.TaskID]task.Snapshot)}
}

func (m *memoryTasks) Exists(_ context.Context, id identity.TaskID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.rows[id]
	return ok, nil
}

func (m *memoryTasks) Save(_ context.Context, t *task.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.rows[t.ID()] = t.Snapshot()
	return nil
}

func (m *memoryTasks) GetTaskByID(_ context.Context, id identity.TaskID) (*task.Task, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if m.getPanic {
		panic("connection reset")
	}
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	s, ok := m.rows[id]
	if !ok {
		return nil, false, nil
	}
	return task.Restore(s).Value(), true, nil
}

func (m *memoryTasks) GetAllActiveTasksOfMember(_ context.Context, id identity.MemberID) ([]*task.Task, error) {
	return m.filter(func(s task.Snapshot) bool {
		involved := s.OwnerID == id.String() || s.AssigneeID == id.String()
		return involved && !s.Archived && !s.Discarded
	}), nil
}

func (m *memoryTasks) GetAllArchivedTasksOfMember(_ context.Context, id identity.MemberID) ([]*task.Task, error) {
	return m.filter(func(s task.Snapshot) bool {
		return s.OwnerID == id.String() && s.Archived && !s.Discarded
	}), nil
}

func (m *memoryTasks) filter(keep func(task.Snapshot) bool) []*task.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*task.Task
	for _, s := range m.rows {
		if keep(s) {
			out = append(out, task.Restore(s).Value())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out
}

func (m *memoryTasks) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *memoryTasks) stored(id identity.TaskID) task.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[id]
}

type memoryMembers struct {
	mu      sync.Mutex
	rows    map[identity.MemberID]member.Snapshot
	saves   int
	getErr  error
	saveErr error
}

func newMemoryMembers() *memoryMembers {
	return &memoryMembers{rows: make(map[identity.MemberID]member.Snapshot)}
}

func (m *memoryMembers) Exists(_ context.Context, id identity.MemberID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.rows[id]
	return ok, nil
}

func (m *memoryMembers) GetMemberByID(_ context.Context, id identity.MemberID) (*member.Member, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[id]
	if !ok {
		return nil, false, nil
	}
	return member.Restore(s).Value(), true, nil
}

func (m *memoryMembers) GetMemberByUserID(_ context.Context, userID identity.UserID) (*member.Member, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	for _, s := range m.rows {
		if s.UserID == userID.String() {
			return member.Restore(s).Value(), true, nil
		}
	}
	return nil, false, nil
}

func (m *memoryMembers) Save(_ context.Context, mem *member.Member) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.rows[mem.ID()] = mem.Snapshot()
	return nil
}

type memoryComments struct {
	mu    sync.Mutex
	rows  []comment.Snapshot
	saves int
}

func (m *memoryComments) Exists(_ context.Context, id identity.CommentID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.rows {
		if s.ID == id.String() {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryComments) Save(_ context.Context, c *comment.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	m.rows = append(m.rows, c.Snapshot())
	return nil
}

func (m *memoryComments) GetCommentsOfTask(_ context.Context, taskID identity.TaskID) ([]*comment.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*comment.Comment
	for _, s := range m.rows {
		if s.TaskID == taskID.String() {
			out = append(out, comment.Restore(s).Value())
		}
	}
	return out, nil
}

type recordingPublisher struct {
	mu        sync.Mutex
	published []events.Event
	err       error
}

func (p *recordingPublisher) Publish(_ context.Context, batch []events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, batch...)
	return nil
}

func (p *recordingPublisher) names() []events.Name {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]events.Name, 0, len(p.published))
	for _, e := range p.published {
		names = append(names, e.Name)
	}
	return names
}
