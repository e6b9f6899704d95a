package domain

import "time"

// Exam is an exam definition managed by admins.
type Exam struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ExamInput holds the mutable fields of an Exam.
type ExamInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// SavedExam links a user to an exam they saved. Exam is populated on reads.
type SavedExam struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ExamID    int64     `json:"exam_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Exam      *Exam     `json:"Exam,omitempty"`
}

// SaveExamRequest is the body of POST /api/save-exam. It deliberately has no
// user field: the owner always comes from the verified Identity.
type SaveExamRequest struct {
	ExamID int64 `json:"examId" validate:"required,gt=0"`
}
