package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/An2rei-84/skystore/internal/middleware"
	"github.com/An2rei-84/skystore/internal/model"
	"github.com/An2rei-84/skystore/internal/policy"
	"github.com/An2rei-84/skystore/internal/slug"
	"github.com/An2rei-84/skystore/internal/validate"
	"github.com/An2rei-84/skystore/pkg/database"
	"github.com/An2rei-84/skystore/pkg/logger"
	"github.com/An2rei-84/skystore/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlogPostRequest defines the structure for blog post creation/update requests
type BlogPostRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Preview     string `json:"preview"`
	Slug        string `json:"slug"`
	IsPublished *bool  `json:"is_published,omitempty"`
}

// ListBlogPosts returns published posts, newest first. Publicly accessible.
func ListBlogPosts(c echo.Context) error {
	log := logger.FromContext(c)

	var posts []model.BlogPost
	result := database.GetDB().
		Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&posts)
	if result.Error != nil {
		log.Error("Failed to list blog posts", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve blog posts"})
	}

	prometheus.RecordBlogOperation("list")
	log.Info("Blog posts retrieved successfully", zap.Int("count", len(posts)))
	return c.JSON(http.StatusOK, posts)
}

// GetBlogPost returns a post by slug, counting the view. The increment is
// a single atomic UPDATE with RETURNING, so concurrent readers never lose
// an increment, and the milestone notification fires on the exact value
// the database reports back.
func GetBlogPost(c echo.Context) error {
	log := logger.FromContext(c)
	postSlug := c.Param("slug")

	var post model.BlogPost
	if result := database.GetDB().Where("slug = ?", postSlug).First(&post); result.Error != nil {
		log.Warn("Blog post not found", zap.String("slug", postSlug))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Blog post not found"})
	}

	// views_count = views_count + 1, returning the new value into post
	result := database.GetDB().
		Model(&post).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "views_count"}}}).
		Where("id = ?", post.ID).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1))
	if result.Error != nil {
		log.Error("Failed to increment views count",
			zap.String("slug", postSlug),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve blog post"})
	}

	prometheus.RecordBlogView(post.Slug)

	// Milestone notification is best effort and never affects the response
	attempted, delivered := notifier.PostReachedMilestone(&post, post.ViewsCount)
	if attempted {
		if delivered {
			prometheus.NotificationsSentCounter.Inc()
		} else {
			prometheus.NotificationErrorsCounter.Inc()
		}
	}

	log.Info("Blog post retrieved successfully",
		zap.String("slug", post.Slug),
		zap.Int("views_count", post.ViewsCount))
	return c.JSON(http.StatusOK, post)
}

// CreateBlogPost creates a post. Requires the add permission. The slug is
// derived from the title unless the caller supplied one; either way it is
// transliterated to ASCII and disambiguated against existing slugs.
func CreateBlogPost(c echo.Context) error {
	log := logger.FromContext(c)
	actor := middleware.CurrentUser(c)

	if !policy.Can(actor, policy.ActionCreate, &model.BlogPost{}) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not allowed to create blog posts"})
	}

	var req BlogPostRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if err := validate.BlogInput(req.Title, req.Content); err != nil {
		log.Warn("Blog post validation failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	var post model.BlogPost
	txErr := database.GetDB().Transaction(func(tx *gorm.DB) error {
		postSlug, err := resolveSlug(tx, req.Slug, req.Title, 0)
		if err != nil {
			return err
		}

		post = model.BlogPost{
			Title:       req.Title,
			Slug:        postSlug,
			Content:     req.Content,
			Preview:     req.Preview,
			IsPublished: isPublished,
		}
		return tx.Create(&post).Error
	})

	if txErr != nil {
		if verr := (*validate.Error)(nil); errors.As(txErr, &verr) {
			log.Warn("Blog post slug invalid", zap.Error(txErr))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": txErr.Error()})
		}
		log.Error("Failed to create blog post", zap.String("title", req.Title), zap.Error(txErr))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create blog post"})
	}

	prometheus.RecordBlogOperation("create")
	log.Info("Blog post created successfully",
		zap.Uint("post_id", post.ID),
		zap.String("slug", post.Slug))
	return c.JSON(http.StatusCreated, post)
}

// UpdateBlogPost edits a post. Requires the change permission.
func UpdateBlogPost(c echo.Context) error {
	log := logger.FromContext(c)
	postSlug := c.Param("slug")
	actor := middleware.CurrentUser(c)

	if !policy.Can(actor, policy.ActionUpdate, &model.BlogPost{}) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not allowed to update blog posts"})
	}

	var req BlogPostRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("slug", postSlug), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if err := validate.BlogInput(req.Title, req.Content); err != nil {
		log.Warn("Blog post validation failed", zap.String("slug", postSlug), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	var post model.BlogPost
	txErr := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("slug = ?", postSlug).First(&post); result.Error != nil {
			return result.Error
		}

		newSlug, err := resolveSlug(tx, req.Slug, req.Title, post.ID)
		if err != nil {
			return err
		}

		post.Title = req.Title
		post.Content = req.Content
		post.Preview = req.Preview
		post.Slug = newSlug
		if req.IsPublished != nil {
			post.IsPublished = *req.IsPublished
		}
		return tx.Save(&post).Error
	})

	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			log.Warn("Blog post not found for update", zap.String("slug", postSlug))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Blog post not found"})
		}
		if verr := (*validate.Error)(nil); errors.As(txErr, &verr) {
			log.Warn("Blog post slug invalid", zap.Error(txErr))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": txErr.Error()})
		}
		log.Error("Failed to update blog post", zap.String("slug", postSlug), zap.Error(txErr))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update blog post"})
	}

	prometheus.RecordBlogOperation("update")
	log.Info("Blog post updated successfully",
		zap.String("old_slug", postSlug),
		zap.String("new_slug", post.Slug))
	return c.JSON(http.StatusOK, post)
}

// DeleteBlogPost removes a post. Requires the delete permission.
func DeleteBlogPost(c echo.Context) error {
	log := logger.FromContext(c)
	postSlug := c.Param("slug")
	actor := middleware.CurrentUser(c)

	if !policy.Can(actor, policy.ActionDelete, &model.BlogPost{}) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not allowed to delete blog posts"})
	}

	result := database.GetDB().Where("slug = ?", postSlug).Delete(&model.BlogPost{})
	if result.Error != nil {
		log.Error("Failed to delete blog post", zap.String("slug", postSlug), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete blog post"})
	}
	if result.RowsAffected == 0 {
		log.Warn("Blog post not found for deletion", zap.String("slug", postSlug))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Blog post not found"})
	}

	prometheus.RecordBlogOperation("delete")
	log.Info("Blog post deleted successfully", zap.String("slug", postSlug))
	return c.JSON(http.StatusOK, echo.Map{"message": "Blog post deleted successfully"})
}

// resolveSlug derives the post slug: explicit input wins over the title,
// both are transliterated, and the result gets a numeric suffix if an
// existing post (other than excludeID) already uses it.
func resolveSlug(tx *gorm.DB, explicit, title string, excludeID uint) (string, error) {
	source := explicit
	if strings.TrimSpace(source) == "" {
		source = title
	}

	base := slug.Make(source)
	if base == "" {
		return "", &validate.Error{Field: "slug", Message: "cannot derive a slug from the given input"}
	}

	taken := func(candidate string) bool {
		var count int64
		query := tx.Model(&model.BlogPost{}).Where("slug = ?", candidate)
		if excludeID != 0 {
			query = query.Where("id != ?", excludeID)
		}
		query.Count(&count)
		return count > 0
	}

	return slug.Unique(base, taken), nil
}
