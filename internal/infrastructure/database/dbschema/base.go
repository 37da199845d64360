package dbschema

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel carries the common persistence columns shared by all schemas.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
