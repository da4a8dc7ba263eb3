package listing

import (
	"cmp"
	"math"
	"slices"

	"github.com/Aquilabot/KreaPC-Market/internal/models"
	"github.com/shopspring/decimal"
)

const (
	// DeepDiscountPosition is the roster position whose listings report an
	// inflated original price.
	DeepDiscountPosition = 2

	ShippingFree          = "Free shipping"
	ShippingBundled       = "Bundled shipping"
	ShippingFreeOverLimit = "Free shipping on orders over 99"

	WarrantyManufacturer = "Manufacturer warranty"
	WarrantySeller       = "Seller warranty"

	maxVariation   = 0.1 // total width of the price band, centred on the base price
	stockSpan      = 500
	minStock       = 10
	salesSpan      = 10000
	minSales       = 100
	minUserRating  = 4.0
	maxUserRating  = 5.0
	reviewSpan     = 5000
	minReviewCount = 50
)

var originalPriceMarkup = decimal.RequireFromString("1.15")

// Catalog is the read side of the catalog store used by the generator.
type Catalog interface {
	FindHardware(id string) (models.Hardware, bool)
	ListHardware(t models.HardwareType) []models.Hardware
	ListMerchants() []models.Merchant
}

type Generator struct {
	catalog Catalog
	source  Source
}

// NewGenerator returns a Generator reading from catalog. A nil source
// falls back to DefaultSource.
func NewGenerator(catalog Catalog, source Source) *Generator {
	if source == nil {
		source = DefaultSource()
	}
	return &Generator{catalog: catalog, source: source}
}

// ListingID is stable for a hardware/merchant pair.
func ListingID(hardwareID, merchantID string) string {
	return "listing-" + hardwareID + "-" + merchantID
}

// GenerateListings derives one offer per merchant for the given hardware
// and returns them cheapest first, merchants with equal prices keeping
// roster order. Unknown ids yield an empty slice.
//
// Per merchant the source is drawn in this order: price variation, stock,
// sales, user rating, review count.
func (g *Generator) GenerateListings(hardwareID string) []models.ProductListing {
	hardware, ok := g.catalog.FindHardware(hardwareID)
	if !ok {
		return []models.ProductListing{}
	}

	merchants := g.catalog.ListMerchants()
	listings := make([]models.ProductListing, 0, len(merchants))
	for pos, merchant := range merchants {
		listings = append(listings, g.derive(hardware, merchant, pos))
	}

	slices.SortStableFunc(listings, func(a, b models.ProductListing) int {
		return cmp.Compare(a.Price, b.Price)
	})
	return listings
}

func (g *Generator) derive(hardware models.Hardware, merchant models.Merchant, pos int) models.ProductListing {
	variation := (g.source.Float64() - 0.5) * maxVariation
	price := models.JitterPrice(hardware.Price, variation)

	listing := models.ProductListing{
		ID:          ListingID(hardware.ID, merchant.ID),
		Hardware:    hardware,
		Merchant:    merchant,
		Price:       price,
		Stock:       g.source.IntN(stockSpan) + minStock,
		Sales:       g.source.IntN(salesSpan) + minSales,
		Shipping:    shippingLabel(pos),
		Warranty:    warrantyLabel(pos),
		UserRating:  userRating(g.source.Float64()),
		ReviewCount: g.source.IntN(reviewSpan) + minReviewCount,
	}

	if pos == DeepDiscountPosition {
		original := models.ScalePrice(price, originalPriceMarkup)
		listing.OriginalPrice = &original
	}
	return listing
}

// userRating keeps the rating below maxUserRating; draws close to 1 would
// otherwise round up to it.
func userRating(draw float64) float64 {
	return min(minUserRating+draw, math.Nextafter(maxUserRating, 0))
}

func shippingLabel(pos int) string {
	switch pos {
	case 0:
		return ShippingFree
	case DeepDiscountPosition:
		return ShippingBundled
	default:
		return ShippingFreeOverLimit
	}
}

func warrantyLabel(pos int) string {
	if pos < 3 {
		return WarrantyManufacturer
	}
	return WarrantySeller
}

// PopularComparisons returns, for CPUs and GPUs, the first products items
// of the category each paired with its cheapest listings offers.
func (g *Generator) PopularComparisons(products, listings int) []models.CategoryComparison {
	categories := []struct {
		label string
		typ   models.HardwareType
	}{
		{"CPU", models.TypeCPU},
		{"GPU", models.TypeGPU},
	}

	out := make([]models.CategoryComparison, 0, len(categories))
	for _, c := range categories {
		items := g.catalog.ListHardware(c.typ)
		items = items[:clamp(products, len(items))]

		comparison := models.CategoryComparison{
			Category: c.label,
			Products: make([]models.ProductComparison, 0, len(items)),
		}
		for _, h := range items {
			offers := g.GenerateListings(h.ID)
			comparison.Products = append(comparison.Products, models.ProductComparison{
				Hardware: h,
				Listings: offers[:clamp(listings, len(offers))],
			})
		}
		out = append(out, comparison)
	}
	return out
}

func clamp(n, limit int) int {
	return max(0, min(n, limit))
}
