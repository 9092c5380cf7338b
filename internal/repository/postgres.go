// Package repository contains the PostgreSQL implementations of the domain
// repository interfaces.
package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func decimalFromNumeric(numeric pgtype.Numeric) decimal.Decimal {
	if !numeric.Valid {
		return decimal.Zero
	}

	float64Value, err := numeric.Float64Value()
	if err != nil {
		return decimal.Zero
	}

	return decimal.NewFromFloat(float64Value.Float64)
}

func numericFromDecimal(d decimal.Decimal) pgtype.Numeric {
	var numeric pgtype.Numeric

	if err := numeric.Scan(d.String()); err != nil {
		return pgtype.Numeric{}
	}

	return numeric
}
