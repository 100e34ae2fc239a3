package result

import (
	"time"

	"github.com/google/uuid"
)

type SubmitResultDTO struct {
	TestID string `json:"testId"`
	Score  int    `json:"score"`
}

type SubmitResultResponse struct {
	Message string `json:"message"`
}

// ResultRow is one line of the teacher listing, joined with the test title
// and the student's email.
type ResultRow struct {
	ID           uuid.UUID `json:"id"`
	TestID       uuid.UUID `json:"test_id"`
	TestTitle    string    `json:"test_title"`
	UserID       uuid.UUID `json:"user_id"`
	StudentEmail string    `json:"student_email"`
	Score        int       `json:"score"`
	CreatedAt    time.Time `json:"created_at"`
}

type ListResultsResponse struct {
	Results []ResultRow `json:"results"`
}
