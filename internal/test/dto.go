package test

import (
	"github.com/google/uuid"
	"github.com/prova-app/prova-api/internal/question"
)

type CreateTestDTO struct {
	Title   string `json:"title"`
	File    string `json:"file"` // base64-encoded record file
	MaxTime *int   `json:"maxTime,omitempty"`
}

type CreateTestResponse struct {
	Title     string    `json:"title"`
	CreatedBy uuid.UUID `json:"created_by"`
	Path      string    `json:"path"`
	MaxScore  int       `json:"max_score"`
}

type DashboardResponse struct {
	Email     string  `json:"email"`
	IsTeacher bool    `json:"isTeacher"`
	Tests     []*Test `json:"tests"`
}

type TestDetailResponse struct {
	MaxTime   *int                `json:"maxTime"`
	Questions []question.Question `json:"questions"`
}
