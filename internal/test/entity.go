package test

import (
	"time"

	"github.com/google/uuid"
	"github.com/prova-app/prova-api/internal/user"
)

// Test is a named assessment backed by a record file in the file store. It
// is read-only after creation; max_score is derived from the file, never
// taken from user input.
type Test struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title     string    `gorm:"type:text;not null" json:"title"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by"`
	Author    user.User `gorm:"foreignKey:CreatedBy;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Path      string    `gorm:"type:text;not null" json:"path"`
	MaxScore  int       `gorm:"not null" json:"max_score"`
	MaxTime   *int      `json:"max_time,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
