package v1

import (
	"context"
	"sync"
	"time"

	"github.com/duynhne/exam-service/internal/core/domain"
)

// store is an in-memory stand-in for the three PostgreSQL repositories.
type store struct {
	mu     sync.Mutex
	nextID int64
	users  []domain.User
	exams  map[int64]domain.Exam
	saved  []domain.SavedExam
	writes int
}

func newStore() *store {
	return &store{exams: map[int64]domain.Exam{}}
}

func (s *store) id() int64 {
	s.nextID++
	return s.nextID
}

type userRepo struct{ *store }

func (r userRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.Username == u.Username || e.Email == u.Email {
			return nil, domain.ErrDuplicate
		}
	}
	u.ID = r.id()
	u.CreatedAt, u.UpdatedAt = time.Now(), time.Now()
	r.users = append(r.users, *u)
	return u, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

type examRepo struct{ *store }

func (r examRepo) Create(_ context.Context, e *domain.Exam) (*domain.Exam, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	e.ID = r.id()
	e.CreatedAt, e.UpdatedAt = time.Now(), time.Now()
	r.exams[e.ID] = *e
	return e, nil
}

func (r examRepo) List(context.Context) ([]domain.Exam, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Exam, 0, len(r.exams))
	for id := int64(1); id <= r.nextID; id++ {
		if e, ok := r.exams[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r examRepo) GetByID(_ context.Context, id int64) (*domain.Exam, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.exams[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (r examRepo) Update(_ context.Context, e *domain.Exam) (*domain.Exam, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	old, ok := r.exams[e.ID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	e.CreatedAt, e.UpdatedAt = old.CreatedAt, time.Now()
	r.exams[e.ID] = *e
	return e, nil
}

func (r examRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	if _, ok := r.exams[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.exams, id)
	return nil
}

type savedRepo struct{ *store }

func (r savedRepo) Create(_ context.Context, s *domain.SavedExam) (*domain.SavedExam, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.exams[s.ExamID]; !ok {
		return nil, domain.ErrReferenceMissing
	}
	s.ID = r.id()
	s.CreatedAt, s.UpdatedAt = time.Now(), time.Now()
	r.saved = append(r.saved, *s)
	return s, nil
}

func (r savedRepo) ListByUser(_ context.Context, userID int64) ([]domain.SavedExam, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.SavedExam, 0)
	for _, s := range r.saved {
		if s.UserID == userID {
			e := r.exams[s.ExamID]
			s.Exam = &e
			out = append(out, s)
		}
	}
	return out, nil
}
