package result

import (
	"time"

	"github.com/google/uuid"
	"github.com/prova-app/prova-api/internal/test"
	"github.com/prova-app/prova-api/internal/user"
)

// Result records one score for a (principal, test) pair. Retakes are
// allowed: each submission inserts a new row, nothing is ever mutated.
type Result struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User      user.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	TestID    uuid.UUID `gorm:"type:uuid;not null;index" json:"test_id"`
	Test      test.Test `gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE" json:"-"`
	Score     int       `gorm:"not null" json:"score"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
