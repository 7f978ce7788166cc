// Package present projects a retrieved order into its render-ready
// form: dates localized, monetary values suffixed with the order's
// currency.
package present

import (
	"strconv"

	"order-viewer/internal/entities"
)

const dateLayout = "02.01.2006, 15:04:05"

type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ItemRow keeps ChrtID as the stable row identity across re-renders.
type ItemRow struct {
	ChrtID int    `json:"chrt_id"`
	Name   string `json:"name"`
	Brand  string `json:"brand"`
	Price  string `json:"price"`
	Sale   string `json:"sale"`
	Total  string `json:"total"`
}

type DisplayModel struct {
	Summary  []Row     `json:"summary"`
	Delivery []Row     `json:"delivery"`
	Payment  []Row     `json:"payment"`
	Items    []ItemRow `json:"items"`
}

// Present is pure and total: it reads the order as a snapshot, never
// mutates it, and has no failure mode. Empty fields render as empty
// values; an empty item list renders as an empty table.
func Present(order entities.Order) DisplayModel {
	currency := order.Payment.Currency

	items := make([]ItemRow, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, ItemRow{
			ChrtID: it.ChrtID,
			Name:   it.Name,
			Brand:  it.Brand,
			Price:  money(it.Price, currency),
			Sale:   strconv.Itoa(it.Sale),
			Total:  money(it.TotalPrice, currency),
		})
	}

	return DisplayModel{
		Summary: []Row{
			{Label: "Order UID", Value: order.OrderUID},
			{Label: "Track number", Value: order.TrackNumber},
			{Label: "Date created", Value: order.DateCreated.Local().Format(dateLayout)},
		},
		Delivery: []Row{
			{Label: "Recipient", Value: order.Delivery.Name},
			{Label: "Phone", Value: order.Delivery.Phone},
			{Label: "City", Value: order.Delivery.City},
			{Label: "Address", Value: order.Delivery.Address},
			{Label: "Region", Value: order.Delivery.Region},
			{Label: "Postal code", Value: order.Delivery.ZIP},
			{Label: "Email", Value: order.Delivery.Email},
		},
		Payment: []Row{
			{Label: "Transaction", Value: order.Payment.Transaction},
			{Label: "Amount", Value: money(order.Payment.Amount, currency)},
			{Label: "Provider", Value: order.Payment.Provider},
			{Label: "Delivery cost", Value: money(order.Payment.DeliveryCost, currency)},
			{Label: "Goods total", Value: money(order.Payment.GoodsTotal, currency)},
			{Label: "Bank", Value: order.Payment.Bank},
		},
		Items: items,
	}
}

// The currency code is stored once per order and appended at render
// time only.
func money(v int, currency string) string {
	return strconv.Itoa(v) + " " + currency
}
