package repository

import (
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// decimalFromString tolerates empty and malformed stored values by falling
// back to zero; money attributes are written by this package and are expected
// to parse.
func decimalFromString(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func int64ToString(v int64) string {
	return strconv.FormatInt(v, 10)
}
