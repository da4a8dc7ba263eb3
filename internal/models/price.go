package models

import (
	"github.com/shopspring/decimal"
)

// ScalePrice multiplies price by factor and rounds to the nearest whole
// currency unit, halves away from zero.
func ScalePrice(price int64, factor decimal.Decimal) int64 {
	return decimal.NewFromInt(price).Mul(factor).Round(0).IntPart()
}

// JitterPrice applies a relative adjustment such as -0.031 (-3.1%) to price.
func JitterPrice(price int64, variation float64) int64 {
	return ScalePrice(price, decimal.NewFromInt(1).Add(decimal.NewFromFloat(variation)))
}
