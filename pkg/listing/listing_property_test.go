package listing

import (
	"slices"
	"testing"

	"github.com/Aquilabot/KreaPC-Market/internal/models"
	"github.com/Aquilabot/KreaPC-Market/pkg/catalog"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
)

func catalogIDs(store *catalog.Store) []interface{} {
	var ids []interface{}
	for _, h := range store.AllHardware() {
		ids = append(ids, h.ID)
	}
	return ids
}

func TestListingProperties(t *testing.T) {
	store := catalog.Default()
	merchants := store.ListMerchants()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	known := gen.OneConstOf(catalogIDs(store)...)

	properties.Property("one listing per merchant", prop.ForAll(
		func(seed uint64, id string) bool {
			g := NewGenerator(store, NewSeededSource(seed))
			listings := g.GenerateListings(id)
			if len(listings) != len(merchants) {
				return false
			}
			seen := make(map[string]bool)
			for _, l := range listings {
				seen[l.Merchant.ID] = true
			}
			return len(seen) == len(merchants)
		},
		gen.UInt64(), known,
	))

	properties.Property("sorted by price", prop.ForAll(
		func(seed uint64, id string) bool {
			listings := NewGenerator(store, NewSeededSource(seed)).GenerateListings(id)
			return slices.IsSortedFunc(listings, func(a, b models.ProductListing) int {
				return int(a.Price - b.Price)
			})
		},
		gen.UInt64(), known,
	))

	properties.Property("price stays within five percent of base", prop.ForAll(
		func(seed uint64, id string) bool {
			h, _ := store.FindHardware(id)
			low := models.ScalePrice(h.Price, decimal.RequireFromString("0.95"))
			high := models.ScalePrice(h.Price, decimal.RequireFromString("1.05"))
			for _, l := range NewGenerator(store, NewSeededSource(seed)).GenerateListings(id) {
				if l.Price < low || l.Price > high {
					return false
				}
			}
			return true
		},
		gen.UInt64(), known,
	))

	properties.Property("only the deep-discount merchant reports an original price", prop.ForAll(
		func(seed uint64, id string) bool {
			discountID := merchants[DeepDiscountPosition].ID
			withOriginal := 0
			for _, l := range NewGenerator(store, NewSeededSource(seed)).GenerateListings(id) {
				if l.OriginalPrice == nil {
					continue
				}
				withOriginal++
				if l.Merchant.ID != discountID {
					return false
				}
				if *l.OriginalPrice != models.ScalePrice(l.Price, decimal.RequireFromString("1.15")) {
					return false
				}
			}
			return withOriginal == 1
		},
		gen.UInt64(), known,
	))

	properties.Property("randomised fields stay in range", prop.ForAll(
		func(seed uint64, id string) bool {
			for _, l := range NewGenerator(store, NewSeededSource(seed)).GenerateListings(id) {
				if l.Stock < 10 || l.Stock > 509 ||
					l.Sales < 100 || l.Sales > 10099 ||
					l.ReviewCount < 50 || l.ReviewCount > 5049 ||
					l.UserRating < 4.0 || l.UserRating >= 5.0 {
					return false
				}
			}
			return true
		},
		gen.UInt64(), known,
	))

	properties.Property("listing ids are stable across calls", prop.ForAll(
		func(seedA, seedB uint64, id string) bool {
			idsOf := func(seed uint64) map[string]string {
				out := make(map[string]string)
				for _, l := range NewGenerator(store, NewSeededSource(seed)).GenerateListings(id) {
					out[l.Merchant.ID] = l.ID
				}
				return out
			}
			a, b := idsOf(seedA), idsOf(seedB)
			for merchantID, listingID := range a {
				if b[merchantID] != listingID || listingID != ListingID(id, merchantID) {
					return false
				}
			}
			return len(a) == len(b)
		},
		gen.UInt64(), gen.UInt64(), known,
	))

	properties.Property("unknown ids yield no listings", prop.ForAll(
		func(id string) bool {
			return len(NewGenerator(store, nil).GenerateListings(id)) == 0
		},
		gen.AnyString().SuchThat(func(id string) bool {
			_, ok := store.FindHardware(id)
			return !ok
		}),
	))

	properties.TestingRun(t)
}
