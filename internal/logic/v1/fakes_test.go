package v1

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/duynhne/exam-service/internal/core/domain"
)

type memUsers struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]domain.User
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[int64]domain.User{}}
}

func (m *memUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.byID {
		if existing.Username == u.Username || existing.Email == u.Email {
			return nil, domain.ErrDuplicate
		}
	}
	m.nextID++
	u.ID = m.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.byID[u.ID] = *u
	return u, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.byID {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

type memExams struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Exam
	calls  int
}

func newMemExams() *memExams {
	return &memExams{rows: map[int64]domain.Exam{}}
}

func (m *memExams) Create(_ context.Context, e *domain.Exam) (*domain.Exam, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	m.nextID++
	e.ID = m.nextID
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	m.rows[e.ID] = *e
	return e, nil
}

func (m *memExams) List(context.Context) ([]domain.Exam, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	out := make([]domain.Exam, 0, len(m.rows))
	for _, e := range m.rows {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memExams) GetByID(_ context.Context, id int64) (*domain.Exam, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	e, ok := m.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (m *memExams) Update(_ context.Context, e *domain.Exam) (*domain.Exam, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	old, ok := m.rows[e.ID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	e.CreatedAt = old.CreatedAt
	e.UpdatedAt = time.Now()
	m.rows[e.ID] = *e
	return e, nil
}

func (m *memExams) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	if _, ok := m.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memExams) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type memSaved struct {
	mu     sync.Mutex
	exams  *memExams
	nextID int64
	rows   []domain.SavedExam
}

func (m *memSaved) Create(_ context.Context, s *domain.SavedExam) (*domain.SavedExam, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.exams.mu.Lock()
	_, ok := m.exams.rows[s.ExamID]
	m.exams.mu.Unlock()
	if !ok {
		return nil, domain.ErrReferenceMissing
	}

	m.nextID++
	s.ID = m.nextID
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	m.rows = append(m.rows, *s)
	return s, nil
}

func (m *memSaved) ListByUser(_ context.Context, userID int64) ([]domain.SavedExam, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.SavedExam, 0)
	for _, s := range m.rows {
		if s.UserID != userID {
			continue
		}
		m.exams.mu.Lock()
		e := m.exams.rows[s.ExamID]
		m.exams.mu.Unlock()
		s.Exam = &e
		out = append(out, s)
	}
	return out, nil
}
