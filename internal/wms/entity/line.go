package entity

import "github.com/shopspring/decimal"

// InternalOrderLine is a product line of an internal order. Orders that are
// not completed carry Requested lines; completed orders carry Fulfilled lines.
type InternalOrderLine interface {
	SKU() uint
	internalOrderLine()
}

// Requested asks for qty units of a SKU.
type Requested struct {
	SKUID       uint            `json:"SKUId"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Qty         int             `json:"qty"`
}

func (r Requested) SKU() uint        { return r.SKUID }
func (Requested) internalOrderLine() {}

// Fulfilled records the physical unit handed out for a SKU.
type Fulfilled struct {
	SKUID       uint            `json:"SKUId"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	RFID        string          `json:"RFID"`
}

func (f Fulfilled) SKU() uint        { return f.SKUID }
func (Fulfilled) internalOrderLine() {}
