package policy

import (
	"testing"

	"github.com/An2rei-84/skystore/internal/model"

	"github.com/stretchr/testify/assert"
)

func userWithPerms(id uint, codes ...string) *model.User {
	perms := make([]model.Permission, 0, len(codes))
	for i, code := range codes {
		perms = append(perms, model.Permission{ID: uint(i + 1), Code: code})
	}
	return &model.User{ID: id, Email: "user@example.com", IsActive: true, Permissions: perms}
}

func productOwnedBy(ownerID uint) *model.Product {
	return &model.Product{ID: 1, Name: "Chair", OwnerID: &ownerID}
}

func TestProductUpdateDeleteAsymmetry(t *testing.T) {
	owner := userWithPerms(1)
	nonOwner := userWithPerms(2)
	nonOwnerWithDelete := userWithPerms(3, model.PermDeleteProduct)
	product := productOwnedBy(1)

	assert.True(t, Can(owner, ActionUpdate, product))
	assert.False(t, Can(nonOwner, ActionUpdate, product))
	assert.True(t, Can(nonOwnerWithDelete, ActionDelete, product))
	// The delete permission must not leak into update
	assert.False(t, Can(nonOwnerWithDelete, ActionUpdate, product))
}

func TestProductOwnerCanDelete(t *testing.T) {
	owner := userWithPerms(1)
	product := productOwnedBy(1)

	assert.True(t, Can(owner, ActionDelete, product))
}

func TestProductUnpublishIgnoresOwnership(t *testing.T) {
	moderator := userWithPerms(5, model.PermUnpublishProduct)
	owner := userWithPerms(1)
	product := productOwnedBy(1)

	assert.True(t, Can(moderator, ActionUnpublish, product))
	// Ownership alone does not grant unpublish
	assert.False(t, Can(owner, ActionUnpublish, product))
}

func TestProductModeratorGroupScenario(t *testing.T) {
	// A Product Moderator holds unpublish and delete via the group,
	// on products owned by someone else
	moderator := &model.User{
		ID:       9,
		IsActive: true,
		Groups: []model.Group{{
			Name: model.GroupProductModerator,
			Permissions: []model.Permission{
				{Code: model.PermUnpublishProduct},
				{Code: model.PermDeleteProduct},
			},
		}},
	}
	product := productOwnedBy(1)

	assert.True(t, Can(moderator, ActionUnpublish, product))
	assert.True(t, Can(moderator, ActionDelete, product))
	assert.False(t, Can(moderator, ActionUpdate, product))
}

func TestPermissionUnionAcrossGroupsAndDirectGrants(t *testing.T) {
	user := &model.User{
		ID:       4,
		IsActive: true,
		Groups: []model.Group{
			{Name: "a", Permissions: []model.Permission{{Code: model.PermAddBlog}}},
			{Name: "b", Permissions: []model.Permission{{Code: model.PermChangeBlog}}},
		},
		Permissions: []model.Permission{{Code: model.PermDeleteBlog}},
	}

	assert.True(t, user.HasPerm(model.PermAddBlog))
	assert.True(t, user.HasPerm(model.PermChangeBlog))
	assert.True(t, user.HasPerm(model.PermDeleteBlog))
	assert.False(t, user.HasPerm(model.PermDeleteProduct))
}

func TestAnonymousActor(t *testing.T) {
	product := productOwnedBy(1)

	assert.False(t, Can(nil, ActionCreate, product))
	assert.False(t, Can(nil, ActionView, product))
	assert.False(t, Can(nil, ActionUpdate, product))
	assert.False(t, Can(nil, ActionDelete, product))
	assert.False(t, Can(nil, ActionUnpublish, product))

	// Blog reads stay public
	assert.True(t, Can(nil, ActionView, &model.BlogPost{}))
	assert.False(t, Can(nil, ActionCreate, &model.BlogPost{}))
}

func TestInactiveUserIsDenied(t *testing.T) {
	user := userWithPerms(1, model.PermDeleteProduct)
	user.IsActive = false
	product := productOwnedBy(1)

	assert.False(t, Can(user, ActionUpdate, product))
	assert.False(t, Can(user, ActionDelete, product))
	assert.False(t, user.HasPerm(model.PermDeleteProduct))
}

func TestBlogPermissions(t *testing.T) {
	contentManager := &model.User{
		ID:       7,
		IsActive: true,
		Groups: []model.Group{{
			Name: model.GroupContentManager,
			Permissions: []model.Permission{
				{Code: model.PermAddBlog},
				{Code: model.PermChangeBlog},
				{Code: model.PermDeleteBlog},
			},
		}},
	}
	plainUser := userWithPerms(8)
	post := &model.BlogPost{ID: 1, Title: "Post"}

	assert.True(t, Can(contentManager, ActionCreate, post))
	assert.True(t, Can(contentManager, ActionUpdate, post))
	assert.True(t, Can(contentManager, ActionDelete, post))

	// Authentication alone is not enough for blog writes
	assert.False(t, Can(plainUser, ActionCreate, post))
	assert.False(t, Can(plainUser, ActionUpdate, post))
	assert.False(t, Can(plainUser, ActionDelete, post))
}

func TestSuperuserHoldsEveryPermission(t *testing.T) {
	su := &model.User{ID: 1, IsActive: true, IsSuperuser: true}
	product := productOwnedBy(2)

	assert.True(t, Can(su, ActionDelete, product))
	assert.True(t, Can(su, ActionUnpublish, product))
	assert.True(t, Can(su, ActionCreate, &model.BlogPost{}))
	// Product update stays owner-only even for superusers
	assert.False(t, Can(su, ActionUpdate, product))
}

func TestProductWithoutOwner(t *testing.T) {
	// Owner was deleted, the reference is null; nobody passes the owner check
	product := &model.Product{ID: 1, Name: "Orphan"}
	user := userWithPerms(1)

	assert.False(t, Can(user, ActionUpdate, product))
	assert.False(t, Can(user, ActionDelete, product))

	withDeletePerm := userWithPerms(2, model.PermDeleteProduct)
	assert.True(t, Can(withDeletePerm, ActionDelete, product))
}

func TestUnknownEntityDenied(t *testing.T) {
	user := userWithPerms(1)
	assert.False(t, Can(user, ActionView, &model.Feedback{}))
	assert.False(t, Can(user, ActionView, "not an entity"))
}
