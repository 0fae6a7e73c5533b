package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/An2rei-84/skystore/internal/middleware"
	"github.com/An2rei-84/skystore/internal/model"
	"github.com/An2rei-84/skystore/internal/policy"
	"github.com/An2rei-84/skystore/internal/validate"
	"github.com/An2rei-84/skystore/pkg/database"
	"github.com/An2rei-84/skystore/pkg/logger"
	"github.com/An2rei-84/skystore/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductRequest defines the structure for product creation/update requests
type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	CategoryID  uint            `json:"category_id"`
	Price       decimal.Decimal `json:"price"`
	IsPublished *bool           `json:"is_published,omitempty"`
}

// ListProducts returns published products, newest first, paginated.
// Publicly accessible.
func ListProducts(c echo.Context) error {
	log := logger.FromContext(c)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
	if pageSize < 1 {
		pageSize = appConfig.Catalog.PageSize
	}

	db := database.GetDB()
	query := db.Model(&model.Product{}).Where("is_published = ?", true)

	// Optional category filter
	if categoryID := c.QueryParam("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var total int64
	if result := query.Count(&total); result.Error != nil {
		log.Error("Failed to count products", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve products"})
	}

	var products []model.Product
	result := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&products)
	if result.Error != nil {
		log.Error("Failed to list products", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve products"})
	}

	prometheus.RecordProductOperation("list")
	log.Info("Products retrieved successfully",
		zap.Int("count", len(products)),
		zap.Int("page", page))
	return c.JSON(http.StatusOK, echo.Map{
		"items":     products,
		"page":      page,
		"page_size": pageSize,
		"total":     total,
	})
}

// GetProduct returns a single product by ID. Requires authentication.
func GetProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	actor := middleware.CurrentUser(c)

	var product model.Product
	result := database.GetDB().Preload("Category").First(&product, id)
	if result.Error != nil {
		log.Warn("Product not found", zap.String("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}

	if !policy.Can(actor, policy.ActionView, &product) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not allowed to view this product"})
	}

	prometheus.RecordProductOperation("get")
	log.Info("Product retrieved successfully",
		zap.String("product_id", id),
		zap.String("product_name", product.Name))
	return c.JSON(http.StatusOK, product)
}

// CreateProduct creates a product owned by the current user. Products
// always start unpublished.
func CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	actor := middleware.CurrentUser(c)

	if !policy.Can(actor, policy.ActionCreate, &model.Product{}) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not allowed to create products"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if err := validate.ProductInput(req.Name, req.Description, req.CategoryID, req.Price, appConfig.Catalog.ForbiddenWords); err != nil {
		log.Warn("Product validation failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	// Referenced category must exist
	var category model.Category
	if result := database.GetDB().First(&category, req.CategoryID); result.Error != nil {
		log.Warn("Category not found for product", zap.Uint("category_id", req.CategoryID))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "category does not exist"})
	}

	image := req.Image
	if image == "" {
		image = model.PlaceholderImage
	}

	ownerID := actor.ID
	product := model.Product{
		Name:        req.Name,
		Description: req.Description,
		Image:       image,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		IsPublished: false,
		OwnerID:     &ownerID,
	}

	if result := database.GetDB().Create(&product); result.Error != nil {
		log.Error("Failed to create product",
			zap.String("name", req.Name),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create product"})
	}

	prometheus.RecordProductOperation("create")
	log.Info("Product created successfully",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Uint("owner_id", ownerID))
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct edits a product. Only the owner may update; the ownership
// check and the write happen inside one transaction.
func UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	actor := middleware.CurrentUser(c)

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("product_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if err := validate.ProductInput(req.Name, req.Description, req.CategoryID, req.Price, appConfig.Catalog.ForbiddenWords); err != nil {
		log.Warn("Product validation failed", zap.String("product_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	var product model.Product
	txErr := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if result := tx.First(&product, id); result.Error != nil {
			return result.Error
		}

		if !policy.Can(actor, policy.ActionUpdate, &product) {
			return errForbidden
		}

		product.Name = req.Name
		product.Description = req.Description
		if req.Image != "" {
			product.Image = req.Image
		}
		product.CategoryID = req.CategoryID
		product.Price = req.Price
		if req.IsPublished != nil {
			product.IsPublished = *req.IsPublished
		}

		return tx.Save(&product).Error
	})

	if txErr != nil {
		return productTxError(c, log, "update", id, txErr)
	}

	prometheus.RecordProductOperation("update")
	log.Info("Product updated successfully",
		zap.String("product_id", id),
		zap.String("name", product.Name))
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product. Allowed for the owner or a holder of
// the delete permission; the check and the delete share a transaction.
func DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	actor := middleware.CurrentUser(c)

	txErr := database.GetDB().Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if result := tx.First(&product, id); result.Error != nil {
			return result.Error
		}

		if !policy.Can(actor, policy.ActionDelete, &product) {
			return errForbidden
		}

		return tx.Delete(&product).Error
	})

	if txErr != nil {
		return productTxError(c, log, "delete", id, txErr)
	}

	prometheus.RecordProductOperation("delete")
	log.Info("Product deleted successfully", zap.String("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted successfully"})
}

// UnpublishProduct flips is_published off. Requires the unpublish
// permission; ownership is deliberately not checked.
func UnpublishProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	actor := middleware.CurrentUser(c)

	var product model.Product
	txErr := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if result := tx.First(&product, id); result.Error != nil {
			return result.Error
		}

		if !policy.Can(actor, policy.ActionUnpublish, &product) {
			return errForbidden
		}

		product.IsPublished = false
		return tx.Model(&product).Update("is_published", false).Error
	})

	if txErr != nil {
		return productTxError(c, log, "unpublish", id, txErr)
	}

	prometheus.RecordProductOperation("unpublish")
	log.Info("Product unpublished", zap.String("product_id", id))
	return c.JSON(http.StatusOK, product)
}

// errForbidden marks a policy denial inside a transaction so the handler
// can map it to 403 after rollback
var errForbidden = errors.New("forbidden")

func productTxError(c echo.Context, log *zap.Logger, op, id string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("Product not found", zap.String("operation", op), zap.String("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	case errors.Is(err, errForbidden):
		log.Warn("Product operation denied", zap.String("operation", op), zap.String("product_id", id))
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not allowed"})
	default:
		log.Error("Product operation failed",
			zap.String("operation", op),
			zap.String("product_id", id),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "operation failed"})
	}
}
