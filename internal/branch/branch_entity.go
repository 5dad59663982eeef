package branch

import (
	"time"

	"github.com/google/uuid"
)

// Branch name uniqueness is deliberately not declared at the schema
// level: creation tolerates duplicates, only rename rejects them.
type Branch struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
