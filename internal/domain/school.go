package domain

import "time"

// School is the sole entity: one row per directory entry. Image holds the
// generated blob filename, nil when the submission carried no file. Rows are
// never updated after insert; the only transitions are create and delete.
type School struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Address   string    `json:"address" gorm:"not null"`
	City      string    `json:"city" gorm:"not null"`
	State     string    `json:"state" gorm:"not null"`
	Contact   string    `json:"contact" gorm:"size:15;not null"`
	Image     *string   `json:"image"`
	Email     string    `json:"email" gorm:"column:email_id;size:255;not null"`
	CreatedAt time.Time `json:"created_at"`
}
