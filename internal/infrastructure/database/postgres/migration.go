// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"errors"
	"fmt"

	"github.com/coupledelight/shop-api/internal/domain/order"
	"github.com/coupledelight/shop-api/internal/domain/product"
	"github.com/coupledelight/shop-api/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Migration handles database migrations and development seed data
type Migration struct {
	db     *gorm.DB
	logger logrus.FieldLogger
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB, logger logrus.FieldLogger) *Migration {
	return &Migration{
		db:     db,
		logger: logger.WithField("component", "migration"),
	}
}

// Models lists every persisted model in dependency order
func Models() []any {
	return []any{
		&user.User{},
		&product.Product{},
		&order.Order{},
		&order.OrderItem{},
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	m.logger.Info("🔄 Running database auto-migrations...")

	for _, model := range Models() {
		m.logger.Debugf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	m.logger.Info("✅ Database auto-migrations completed successfully")
	return nil
}

// indexes complements the gorm tag indexes with composite and expression indexes
var indexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_users_created_at ON users(created_at DESC)",

	"CREATE INDEX IF NOT EXISTS idx_products_status_category ON products(status, category)",
	"CREATE INDEX IF NOT EXISTS idx_products_status_featured ON products(status, featured)",
	"CREATE INDEX IF NOT EXISTS idx_products_selling_price ON products(selling_price)",
	"CREATE INDEX IF NOT EXISTS idx_products_name_lower ON products(lower(name))",

	"CREATE INDEX IF NOT EXISTS idx_orders_owner_created ON orders(owner_id, created_at DESC)",
	"CREATE INDEX IF NOT EXISTS idx_orders_email_created ON orders(shipping_email, created_at DESC)",
}

// CreateIndexes creates additional indexes. Failures are logged and counted.
func (m *Migration) CreateIndexes() error {
	m.logger.Info("🔄 Creating additional database indexes...")

	successCount := 0
	failCount := 0
	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			m.logger.WithError(err).Warn("⚠️ Failed to create index")
			failCount++
			continue
		}
		successCount++
	}

	m.logger.Infof("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	if failCount > 0 {
		return fmt.Errorf("%d of %d indexes failed", failCount, len(indexes))
	}
	return nil
}

// SeedInitialData creates a development admin and a small catalog
func (m *Migration) SeedInitialData() error {
	m.logger.Info("🌱 Seeding initial data...")

	if err := m.seedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	if err := m.seedProducts(); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	m.logger.Info("✅ Initial data seeded successfully")
	return nil
}

const (
	seedAdminEmail    = "admin@coupledelight.in"
	seedAdminPassword = "delight-admin-dev"
)

func (m *Migration) seedAdminUser() error {
	var existing user.User
	err := m.db.Where("email = ?", seedAdminEmail).First(&existing).Error
	if err == nil {
		m.logger.WithField("user_id", existing.ID).Info("⏭️ Admin user already exists")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := user.User{
		Email:         seedAdminEmail,
		Password:      string(hash),
		EmailVerified: true,
		Provider:      user.ProviderEmail,
		Role:          user.RoleAdmin,
		Profile:       user.Profile{CoupleName: "CoupleDelight Team"},
	}
	if err := m.db.Create(&admin).Error; err != nil {
		return err
	}

	m.logger.Infof("✅ Created admin user: %s (password: %s)", seedAdminEmail, seedAdminPassword)
	return nil
}

// SeedProducts returns the development catalog. It covers every listing state
// the storefront distinguishes: featured, plain, low stock, sold out and hidden.
func SeedProducts() []product.Product {
	price := decimal.RequireFromString
	return []product.Product{
		{
			SKU:               "cd-vib-001",
			Name:              "Velvet Pulse Rechargeable Vibrator",
			Description:       "Whisper-quiet body-safe silicone vibrator with ten patterns and USB charging.",
			ShortDescription:  "Ten patterns, whisper-quiet",
			MRP:               price("2999"),
			SellingPrice:      price("2499"),
			Discount:          17,
			Category:          product.CategoryVibrators,
			Brand:             "Velvet",
			Stock:             40,
			LowStockThreshold: 5,
			Images:            datatypes.JSONSlice[string]{"/images/velvet-pulse-1.jpg", "/images/velvet-pulse-2.jpg"},
			Status:            product.StatusActive,
			Featured:          true,
			Tags:              datatypes.JSONSlice[string]{"rechargeable", "silicone", "waterproof"},
			ShippingRequired:  true,
			Taxable:           true,
			TaxRate:           price("18"),
		},
		{
			SKU:               "cd-lub-001",
			Name:              "Silk Glide Water-Based Lubricant",
			Description:       "Long-lasting water-based lubricant, toy-safe and easy to clean.",
			MRP:               price("450"),
			SellingPrice:      price("399"),
			Discount:          11,
			Category:          product.CategoryLubricants,
			Brand:             "Silk",
			Stock:             200,
			LowStockThreshold: 20,
			Images:            datatypes.JSONSlice[string]{"/images/silk-glide.jpg"},
			Status:            product.StatusActive,
			Tags:              datatypes.JSONSlice[string]{"water-based", "toy-safe"},
			ShippingRequired:  true,
			Taxable:           true,
			TaxRate:           price("18"),
		},
		{
			SKU:               "cd-cpl-001",
			Name:              "Duet Remote Couples Ring",
			Description:       "App and remote controlled couples ring designed for shared play.",
			MRP:               price("3499"),
			SellingPrice:      price("3199"),
			Discount:          9,
			Category:          product.CategoryCouplesToys,
			Brand:             "Duet",
			Stock:             3,
			LowStockThreshold: 5,
			Images:            datatypes.JSONSlice[string]{"/images/duet-ring.jpg"},
			Status:            product.StatusActive,
			Featured:          true,
			Tags:              datatypes.JSONSlice[string]{"remote", "couples", "app"},
			ShippingRequired:  true,
			Taxable:           true,
			TaxRate:           price("18"),
		},
		{
			SKU:               "cd-bdsm-001",
			Name:              "Satin Blindfold and Restraint Set",
			Description:       "Beginner-friendly satin blindfold with soft wrist restraints.",
			MRP:               price("1299"),
			SellingPrice:      price("999"),
			Discount:          23,
			Category:          product.CategoryBDSM,
			Brand:             "Satin",
			Stock:             25,
			LowStockThreshold: 5,
			Images:            datatypes.JSONSlice[string]{"/images/satin-set.jpg"},
			Status:            product.StatusActive,
			Tags:              datatypes.JSONSlice[string]{"beginner", "restraints"},
			ShippingRequired:  true,
			Taxable:           true,
			TaxRate:           price("18"),
		},
		{
			SKU:               "cd-lin-001",
			Name:              "Midnight Lace Bodysuit",
			Description:       "Stretch lace bodysuit with adjustable straps.",
			MRP:               price("1899"),
			SellingPrice:      price("1599"),
			Discount:          16,
			Category:          product.CategoryLingerie,
			Brand:             "Midnight",
			Stock:             0,
			LowStockThreshold: 5,
			Images:            datatypes.JSONSlice[string]{"/images/midnight-lace.jpg"},
			Status:            product.StatusOutOfStock,
			Tags:              datatypes.JSONSlice[string]{"lace", "bodysuit"},
			ShippingRequired:  true,
			Taxable:           true,
			TaxRate:           price("5"),
		},
		{
			SKU:               "cd-men-001",
			Name:              "Endure Stroker Sleeve",
			Description:       "Textured stroker sleeve, discontinued and hidden from the storefront.",
			MRP:               price("1499"),
			SellingPrice:      price("1299"),
			Discount:          13,
			Category:          product.CategoryMensToys,
			Stock:             12,
			LowStockThreshold: 5,
			Status:            product.StatusInactive,
			ShippingRequired:  true,
			Taxable:           true,
			TaxRate:           price("18"),
		},
	}
}

func (m *Migration) seedProducts() error {
	for _, prod := range SeedProducts() {
		var count int64
		if err := m.db.Model(&product.Product{}).Where("sku = ?", prod.SKU).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			m.logger.Debugf("⏭️ Product already exists: %s", prod.Name)
			continue
		}
		if err := m.db.Create(&prod).Error; err != nil {
			m.logger.WithError(err).Warnf("⚠️ Failed to create product %s", prod.SKU)
			continue
		}
		m.logger.Infof("✅ Created product: %s", prod.Name)
	}
	return nil
}

// GetTableInfo logs the row count of every managed table
func (m *Migration) GetTableInfo() {
	var total int64
	for _, model := range Models() {
		stmt := &gorm.Statement{DB: m.db}
		if err := stmt.Parse(model); err != nil {
			m.logger.WithError(err).Warnf("Failed to parse model %T", model)
			continue
		}
		var count int64
		m.db.Model(model).Count(&count)
		total += count
		m.logger.Infof("📊 %-12s | %d records", stmt.Schema.Table, count)
	}
	m.logger.Infof("📈 Total records across all tables: %d", total)
}
