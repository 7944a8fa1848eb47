package models

import "time"

// Collection is one named record set stored wholesale as a JSON array.
type Collection struct {
	Name      string    `json:"name" gorm:"primaryKey;size:64"`
	Payload   string    `json:"payload" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}
