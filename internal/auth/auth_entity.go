package auth

import (
	"time"

	"github.com/google/uuid"
)

// Admin is the single shared credential gating every branch and
// employee operation. Password holds a bcrypt hash.
type Admin struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"size:255;not null;uniqueIndex"`
	Password  string    `gorm:"size:255;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
