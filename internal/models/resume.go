package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Resume struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FileName    string         `gorm:"type:varchar(255);not null" json:"file_name"`
	FilePath    string         `gorm:"type:varchar(500);not null" json:"file_path"`
	RawText     string         `gorm:"type:text" json:"raw_text"`
	ParsedData  datatypes.JSON `gorm:"type:jsonb" json:"parsed_data"`
	ProcessedAt time.Time      `gorm:"type:timestamp;default:now()" json:"processed_at"`
	CreatedAt   time.Time      `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (r *Resume) TableName() string {
	return "resumes"
}
