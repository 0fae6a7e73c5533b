package model

import "time"

// Feedback is a write-once message from the contact form. There is no
// update or delete path for feedback records.
type Feedback struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Phone     string    `json:"phone" gorm:"type:varchar(20);not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Contact holds static company contact information
type Contact struct {
	ID      uint   `json:"id" gorm:"primarykey"`
	Country string `json:"country" gorm:"type:varchar(100)"`
	TaxID   string `json:"tax_id" gorm:"type:varchar(20)"`
	Address string `json:"address" gorm:"type:text"`
}
