package models

type Merchant struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Logo     string  `json:"logo" yaml:"logo"`
	Rating   float64 `json:"rating" yaml:"rating"`
	Reviews  int     `json:"reviews" yaml:"reviews"`
	Sales    int     `json:"sales" yaml:"sales"`
	Verified bool    `json:"verified" yaml:"verified"`
	Location string  `json:"location" yaml:"location"`
}

// ProductListing is one merchant's offer for a hardware item. Listings are
// derived on request and never stored.
type ProductListing struct {
	ID            string   `json:"id"`
	Hardware      Hardware `json:"hardware"`
	Merchant      Merchant `json:"merchant"`
	Price         int64    `json:"price"`
	OriginalPrice *int64   `json:"originalPrice,omitempty"`
	Stock         int      `json:"stock"`
	Sales         int      `json:"sales"`
	Shipping      string   `json:"shipping"`
	Warranty      string   `json:"warranty"`
	UserRating    float64  `json:"userRating"`
	ReviewCount   int      `json:"reviewCount"`
}

type ProductComparison struct {
	Hardware
	Listings []ProductListing `json:"listings"`
}

type CategoryComparison struct {
	Category string              `json:"category"`
	Products []ProductComparison `json:"products"`
}
