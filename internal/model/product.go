package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceholderImage is used when a product is created without an image
const PlaceholderImage = "products/placeholder.svg"

// Category groups products. Deleting a category cascades to its products.
type Category struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Product represents a catalog item. A product starts unpublished and
// belongs to the user who created it; the owner reference is cleared if
// that user is deleted.
type Product struct {
	ID          uint            `json:"id" gorm:"primarykey"`
	Name        string          `json:"name" gorm:"type:varchar(100);not null"`
	Description string          `json:"description" gorm:"type:text"`
	Image       string          `json:"image" gorm:"type:varchar(255);default:'products/placeholder.svg'"`
	CategoryID  uint            `json:"category_id" gorm:"not null"`
	Category    *Category       `json:"category,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null"`
	IsPublished bool            `json:"is_published" gorm:"default:false"`
	OwnerID     *uint           `json:"owner_id,omitempty" gorm:"index"`
	Owner       *User           `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
