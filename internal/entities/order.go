package entities

import (
	"errors"
	"fmt"
	"time"
)

type Delivery struct {
	Name    string
	Phone   string
	ZIP     string
	City    string
	Address string
	Region  string
	Email   string
}

type Item struct {
	ChrtID     int
	Name       string
	Brand      string
	Price      int
	Sale       int
	TotalPrice int
}

type Payment struct {
	Transaction  string
	Currency     string
	Provider     string
	Amount       int
	Bank         string
	DeliveryCost int
	GoodsTotal   int
}

// Order is immutable once fetched; a new lookup replaces it entirely.
type Order struct {
	OrderUID    string
	TrackNumber string
	DateCreated time.Time

	Delivery Delivery
	Payment  Payment
	Items    []Item
}

var (
	ErrEmptyOrderUID    = errors.New("order uid is empty")
	ErrMalformedOrder   = errors.New("malformed order document")
	ErrLookupSuperseded = errors.New("lookup superseded by a newer request")
)

// StatusError is returned when the order service responded, but with
// a non-success status. The response body is not inspected in that case.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server responded with status %d", e.Code)
}
