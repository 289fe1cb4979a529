// internal/domain/product/entity.go
package product

import (
	"strings"
	"time"

	"github.com/coupledelight/shop-api/internal/domain/cart"
	"github.com/coupledelight/shop-api/internal/pkg/validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Category is the fixed set of storefront categories
type Category string

const (
	CategoryLadiesToys  Category = "ladies_toys"
	CategoryMensToys    Category = "mens_toys"
	CategoryCouplesToys Category = "couples_toys"
	CategoryVibrators   Category = "vibrators"
	CategoryDildos      Category = "dildos"
	CategoryLingerie    Category = "lingerie"
	CategoryLubricants  Category = "lubricants"
	CategoryBDSM        Category = "bdsm"
	CategoryOther       Category = "other"
)

// Categories lists every valid category in display order
var Categories = []Category{
	CategoryLadiesToys, CategoryMensToys, CategoryCouplesToys, CategoryVibrators,
	CategoryDildos, CategoryLingerie, CategoryLubricants, CategoryBDSM, CategoryOther,
}

// IsValid reports whether c is a known category
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Status of a product listing
type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusOutOfStock Status = "out_of_stock"
)

// MaxImages is the maximum number of images per product
const MaxImages = 10

// Dimensions in centimetres
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Product represents a catalog entry
type Product struct {
	ID                uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string                      `gorm:"not null;size:255" json:"name" validate:"notblank,max=255"`
	Description       string                      `gorm:"type:text;not null" json:"description" validate:"notblank"`
	ShortDescription  string                      `gorm:"size:500" json:"short_description" validate:"max=500"`
	SKU               string                      `gorm:"uniqueIndex;not null;size:100" json:"sku" validate:"notblank"`
	MRP               decimal.Decimal             `gorm:"type:numeric(12,2);not null" json:"mrp"`
	SellingPrice      decimal.Decimal             `gorm:"type:numeric(12,2);not null" json:"selling_price"`
	Discount          int                         `gorm:"default:0" json:"discount" validate:"gte=0,lte=100"`
	Category          Category                    `gorm:"not null;size:50;index" json:"category" validate:"oneof=ladies_toys mens_toys couples_toys vibrators dildos lingerie lubricants bdsm other"`
	SubCategory       string                      `gorm:"size:100" json:"sub_category,omitempty"`
	Brand             string                      `gorm:"size:100" json:"brand,omitempty"`
	Stock             int                         `gorm:"not null;default:0" json:"stock" validate:"gte=0"`
	LowStockThreshold int                         `gorm:"default:10" json:"low_stock_threshold"`
	Images            datatypes.JSONSlice[string] `json:"images" validate:"max=10"`
	Status            Status                      `gorm:"not null;size:20;default:active;index" json:"status" validate:"oneof=active inactive out_of_stock"`
	Featured          bool                        `gorm:"default:false;index" json:"featured"`
	Tags              datatypes.JSONSlice[string] `json:"tags"`
	Weight            float64                     `json:"weight,omitempty"`
	Dimensions        Dimensions                  `gorm:"embedded;embeddedPrefix:dim_" json:"dimensions"`
	ShippingRequired  bool                        `gorm:"default:true" json:"shipping_required"`
	Taxable           bool                        `gorm:"default:true" json:"taxable"`
	TaxRate           decimal.Decimal             `gorm:"type:numeric(5,2);default:18" json:"tax_rate"`
	MetaTitle         string                      `gorm:"size:255" json:"meta_title,omitempty"`
	MetaDescription   string                      `gorm:"size:500" json:"meta_description,omitempty"`
	CreatedAt         time.Time                   `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time                   `json:"updated_at"`
}

// BeforeCreate assigns an id when missing
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// BeforeSave normalizes the SKU and validates the record
func (p *Product) BeforeSave(tx *gorm.DB) error {
	p.SKU = strings.ToUpper(strings.TrimSpace(p.SKU))
	return p.Validate()
}

// Validate checks field constraints
func (p *Product) Validate() error {
	return validation.Struct(p)
}

// IsActive reports whether the product is visible to shoppers
func (p *Product) IsActive() bool {
	return p.Status == StatusActive
}

// IsInStock reports whether at least one unit is available
func (p *Product) IsInStock() bool {
	return p.Stock > 0
}

// IsLowStock reports whether stock is at or below the warning threshold
func (p *Product) IsLowStock() bool {
	return p.Stock > 0 && p.Stock <= p.LowStockThreshold
}

// PrimaryImage returns the first image or an empty string
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// CartCandidate builds the cart line data for this product
func (p *Product) CartCandidate() cart.Candidate {
	return cart.Candidate{
		ProductID:  p.ID.String(),
		Name:       p.Name,
		UnitPrice:  p.SellingPrice,
		Image:      p.PrimaryImage(),
		StockLimit: p.Stock,
	}
}
