package model

import (
	"time"

	"gorm.io/gorm"
)

// Permission codes known to the application. Permissions are provisioned
// by the seed command and referenced by the authorization policy.
const (
	PermUnpublishProduct = "catalog.can_unpublish_product"
	PermDeleteProduct    = "catalog.delete_product"
	PermAddBlog          = "blog.add_blog"
	PermChangeBlog       = "blog.change_blog"
	PermDeleteBlog       = "blog.delete_blog"
)

// Group names provisioned at seed time
const (
	GroupProductModerator = "Product Moderator"
	GroupContentManager   = "Content Manager"
)

// Permission represents a named capability grantable to users directly
// or via group membership
type Permission struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Code string `json:"code" gorm:"type:varchar(100);uniqueIndex;not null"`
	Name string `json:"name" gorm:"type:varchar(255);not null"`
}

// Group bundles permissions; a user's effective permission set is the
// union of all group permissions plus direct grants
type Group struct {
	ID          uint         `json:"id" gorm:"primarykey"`
	Name        string       `json:"name" gorm:"type:varchar(150);uniqueIndex;not null"`
	Permissions []Permission `json:"permissions,omitempty" gorm:"many2many:group_permissions"`
}

// User represents an account. Email is the login identifier, there is
// no separate username.
type User struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Email       string         `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	Password    string         `json:"-" gorm:"type:varchar(255);not null"`
	FirstName   string         `json:"first_name" gorm:"type:varchar(150)"`
	LastName    string         `json:"last_name" gorm:"type:varchar(150)"`
	Avatar      string         `json:"avatar,omitempty" gorm:"type:varchar(255)"`
	PhoneNumber string         `json:"phone_number,omitempty" gorm:"type:varchar(35)"`
	Country     string         `json:"country,omitempty" gorm:"type:varchar(100)"`
	IsStaff     bool           `json:"is_staff" gorm:"default:false"`
	IsSuperuser bool           `json:"is_superuser" gorm:"default:false"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	Groups      []Group        `json:"groups,omitempty" gorm:"many2many:user_groups"`
	Permissions []Permission   `json:"permissions,omitempty" gorm:"many2many:user_permissions"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// HasPerm reports whether the user holds the permission code, either
// directly or through any group. Superusers hold every permission.
// Groups and Permissions must be preloaded by the caller.
func (u *User) HasPerm(code string) bool {
	if u == nil || !u.IsActive {
		return false
	}
	if u.IsSuperuser {
		return true
	}
	for _, p := range u.Permissions {
		if p.Code == code {
			return true
		}
	}
	for _, g := range u.Groups {
		for _, p := range g.Permissions {
			if p.Code == code {
				return true
			}
		}
	}
	return false
}
