// Command seed bootstraps the database: the permission catalog, the two
// stock permission groups, the superuser account, company contact info,
// and demo catalog data. Every step is idempotent, rerunning the command
// never duplicates records.
package main

import (
	"github.com/An2rei-84/skystore/internal/model"
	"github.com/An2rei-84/skystore/pkg/config"
	"github.com/An2rei-84/skystore/pkg/database"
	"github.com/An2rei-84/skystore/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	appConfig, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	db := database.GetDB()

	if err := seedGroups(db, log); err != nil {
		log.Fatal("Failed to seed permission groups", zap.Error(err))
	}
	if err := seedSuperuser(db, log, &appConfig.Admin); err != nil {
		log.Fatal("Failed to seed superuser", zap.Error(err))
	}
	if err := seedContact(db, log); err != nil {
		log.Fatal("Failed to seed contact info", zap.Error(err))
	}
	if err := seedCatalog(db, log); err != nil {
		log.Fatal("Failed to seed catalog data", zap.Error(err))
	}

	log.Info("Seeding complete")
}

// seedGroups provisions the permission catalog and the two stock groups:
// Product Moderator (unpublish + delete products) and Content Manager
// (add/change/delete blog posts).
func seedGroups(db *gorm.DB, log *zap.Logger) error {
	permissions := map[string]string{
		model.PermUnpublishProduct: "Can unpublish product",
		model.PermDeleteProduct:    "Can delete product",
		model.PermAddBlog:          "Can add blog post",
		model.PermChangeBlog:       "Can change blog post",
		model.PermDeleteBlog:       "Can delete blog post",
	}

	byCode := make(map[string]model.Permission, len(permissions))
	for code, name := range permissions {
		var perm model.Permission
		if err := db.Where(model.Permission{Code: code}).
			Attrs(model.Permission{Name: name}).
			FirstOrCreate(&perm).Error; err != nil {
			return err
		}
		byCode[code] = perm
	}

	groups := map[string][]string{
		model.GroupProductModerator: {model.PermUnpublishProduct, model.PermDeleteProduct},
		model.GroupContentManager:   {model.PermAddBlog, model.PermChangeBlog, model.PermDeleteBlog},
	}

	for name, codes := range groups {
		var group model.Group
		if err := db.Where(model.Group{Name: name}).FirstOrCreate(&group).Error; err != nil {
			return err
		}

		perms := make([]model.Permission, 0, len(codes))
		for _, code := range codes {
			perms = append(perms, byCode[code])
		}
		if err := db.Model(&group).Association("Permissions").Replace(perms); err != nil {
			return err
		}
		log.Info("Group provisioned", zap.String("group", name), zap.Int("permissions", len(perms)))
	}
	return nil
}

// seedSuperuser creates the admin account from SU_EMAIL/SU_PASSWORD if it
// does not exist yet
func seedSuperuser(db *gorm.DB, log *zap.Logger, admin *config.AdminConfig) error {
	var existing model.User
	result := db.Where("email = ?", admin.Email).First(&existing)
	if result.Error == nil {
		log.Info("Superuser already exists", zap.String("email", admin.Email))
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := model.User{
		Email:       admin.Email,
		Password:    string(hashed),
		IsStaff:     true,
		IsSuperuser: true,
		IsActive:    true,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}
	log.Info("Superuser created", zap.String("email", admin.Email))
	return nil
}

func seedContact(db *gorm.DB, log *zap.Logger) error {
	var contact model.Contact
	return db.Where(model.Contact{Country: "Russia"}).
		Attrs(model.Contact{
			TaxID:   "1234567890",
			Address: "Moscow, Primernaya st. 1",
		}).
		FirstOrCreate(&contact).Error
}

// seedCatalog loads a small demo category/product set
func seedCatalog(db *gorm.DB, log *zap.Logger) error {
	type demoProduct struct {
		name        string
		description string
		price       string
		published   bool
	}

	demo := map[string][]demoProduct{
		"Laptops": {
			{"Skybook Air", "Light 13-inch laptop", "999.00", true},
			{"Skybook Pro", "16-inch workstation laptop", "2499.00", true},
		},
		"Accessories": {
			{"Wireless Mouse", "Two-button wireless mouse", "19.99", true},
			{"USB-C Hub", "7-port hub with HDMI", "49.90", false},
		},
	}

	for categoryName, products := range demo {
		var category model.Category
		if err := db.Where(model.Category{Name: categoryName}).FirstOrCreate(&category).Error; err != nil {
			return err
		}

		for _, p := range products {
			price, err := decimal.NewFromString(p.price)
			if err != nil {
				return err
			}
			var product model.Product
			if err := db.Where(model.Product{Name: p.name, CategoryID: category.ID}).
				Attrs(model.Product{
					Description: p.description,
					Image:       model.PlaceholderImage,
					Price:       price,
					IsPublished: p.published,
				}).
				FirstOrCreate(&product).Error; err != nil {
				return err
			}
		}
		log.Info("Category seeded",
			zap.String("category", categoryName),
			zap.Int("products", len(products)))
	}
	return nil
}
