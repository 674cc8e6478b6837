package domain

import "time"

type AssetClose struct {
	Symbol string
	Date   time.Time
	Price  float64
}
