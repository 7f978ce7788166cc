package present_test

import (
	"testing"
	"time"

	"order-viewer/internal/entities"
	"order-viewer/internal/present"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() entities.Order {
	return entities.Order{
		OrderUID:    "b563feb7b2b84b6test",
		TrackNumber: "WBILMTESTTRACK",
		DateCreated: time.Date(2021, 11, 26, 6, 22, 19, 0, time.UTC),
		Delivery: entities.Delivery{
			Name:    "Test Testov",
			Phone:   "+9720000000",
			ZIP:     "2639809",
			City:    "Kiryat Mozkin",
			Address: "Ploshad Mira 15",
			Region:  "Kraiot",
			Email:   "test@gmail.com",
		},
		Payment: entities.Payment{
			Transaction:  "b563feb7b2b84b6test",
			Currency:     "USD",
			Provider:     "wbpay",
			Amount:       1817,
			Bank:         "alpha",
			DeliveryCost: 1500,
			GoodsTotal:   317,
		},
		Items: []entities.Item{
			{ChrtID: 1, Name: "Mask", Brand: "Vivienne Sabo", Price: 453, Sale: 30, TotalPrice: 317},
		},
	}
}

func rowValue(t *testing.T, rows []present.Row, label string) string {
	t.Helper()
	for _, row := range rows {
		if row.Label == label {
			return row.Value
		}
	}
	t.Fatalf("row %q not found", label)
	return ""
}

func TestPresent(t *testing.T) {
	order := sampleOrder()
	model := present.Present(order)

	require.Len(t, model.Items, 1)
	assert.Equal(t, present.ItemRow{
		ChrtID: 1,
		Name:   "Mask",
		Brand:  "Vivienne Sabo",
		Price:  "453 USD",
		Sale:   "30",
		Total:  "317 USD",
	}, model.Items[0])

	assert.Equal(t, "b563feb7b2b84b6test", rowValue(t, model.Summary, "Order UID"))
	assert.Equal(t, "WBILMTESTTRACK", rowValue(t, model.Summary, "Track number"))
	assert.Equal(t, order.DateCreated.Local().Format("02.01.2006, 15:04:05"),
		rowValue(t, model.Summary, "Date created"))

	assert.Equal(t, "Test Testov", rowValue(t, model.Delivery, "Recipient"))
	assert.Equal(t, "2639809", rowValue(t, model.Delivery, "Postal code"))

	assert.Equal(t, "1817 USD", rowValue(t, model.Payment, "Amount"))
	assert.Equal(t, "1500 USD", rowValue(t, model.Payment, "Delivery cost"))
	assert.Equal(t, "317 USD", rowValue(t, model.Payment, "Goods total"))
	assert.Equal(t, "alpha", rowValue(t, model.Payment, "Bank"))
}

func TestPresent_ItemsKeepInputOrder(t *testing.T) {
	order := sampleOrder()
	order.Items = []entities.Item{
		{ChrtID: 30, Name: "Third"},
		{ChrtID: 10, Name: "First"},
		{ChrtID: 20, Name: "Second"},
	}

	model := present.Present(order)

	require.Len(t, model.Items, 3)
	assert.Equal(t, []int{30, 10, 20}, []int{
		model.Items[0].ChrtID,
		model.Items[1].ChrtID,
		model.Items[2].ChrtID,
	})
}

func TestPresent_Idempotent(t *testing.T) {
	order := sampleOrder()
	assert.Equal(t, present.Present(order), present.Present(order))
}

func TestPresent_DoesNotMutateOrder(t *testing.T) {
	order := sampleOrder()
	before := sampleOrder()

	present.Present(order)

	assert.Equal(t, before, order)
}

func TestPresent_EmptyItems(t *testing.T) {
	order := sampleOrder()
	order.Items = nil

	model := present.Present(order)

	assert.NotNil(t, model.Items)
	assert.Empty(t, model.Items)
}

func TestPresent_ZeroValuesStillRender(t *testing.T) {
	order := sampleOrder()
	order.Items[0].Sale = 0
	order.Payment.DeliveryCost = 0
	order.Delivery.Email = ""

	model := present.Present(order)

	assert.Equal(t, "0", model.Items[0].Sale, "zero sale renders as 0, not blank")
	assert.Equal(t, "0 USD", rowValue(t, model.Payment, "Delivery cost"))
	assert.Equal(t, "", rowValue(t, model.Delivery, "Email"), "field is kept even when empty")
}
