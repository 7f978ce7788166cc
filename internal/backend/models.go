package backend

import (
	"time"

	"order-viewer/internal/entities"
)

// Wire shape of the order service response. Validation tags make the
// decode fail closed: a document missing required fields is rejected
// instead of being rendered with blank values.

type Order struct {
	OrderUID    string    `json:"order_uid" validate:"required"`
	TrackNumber string    `json:"track_number" validate:"required"`
	DateCreated time.Time `json:"date_created" validate:"required"`
	Delivery    Delivery  `json:"delivery" validate:"required"`
	Payment     Payment   `json:"payment" validate:"required"`
	Items       []Item    `json:"items" validate:"omitempty,dive"`
}

type Delivery struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	ZIP     string `json:"zip"`
	City    string `json:"city"`
	Address string `json:"address"`
	Region  string `json:"region"`
	Email   string `json:"email" validate:"omitempty,email"`
}

type Payment struct {
	Transaction  string `json:"transaction" validate:"required"`
	Currency     string `json:"currency" validate:"required"`
	Provider     string `json:"provider"`
	Amount       int    `json:"amount" validate:"gte=0"`
	Bank         string `json:"bank"`
	DeliveryCost int    `json:"delivery_cost" validate:"gte=0"`
	GoodsTotal   int    `json:"goods_total" validate:"gte=0"`
}

type Item struct {
	ChrtID     int    `json:"chrt_id" validate:"gte=0"`
	Name       string `json:"name" validate:"required"`
	Brand      string `json:"brand"`
	Price      int    `json:"price" validate:"gte=0"`
	Sale       int    `json:"sale" validate:"gte=0,lte=100"`
	TotalPrice int    `json:"total_price" validate:"gte=0"`
}

func DeliveryToEntity(d Delivery) entities.Delivery {
	return entities.Delivery{
		Name:    d.Name,
		Phone:   d.Phone,
		ZIP:     d.ZIP,
		City:    d.City,
		Address: d.Address,
		Region:  d.Region,
		Email:   d.Email,
	}
}

func PaymentToEntity(p Payment) entities.Payment {
	return entities.Payment{
		Transaction:  p.Transaction,
		Currency:     p.Currency,
		Provider:     p.Provider,
		Amount:       p.Amount,
		Bank:         p.Bank,
		DeliveryCost: p.DeliveryCost,
		GoodsTotal:   p.GoodsTotal,
	}
}

func ItemToEntity(i Item) entities.Item {
	return entities.Item{
		ChrtID:     i.ChrtID,
		Name:       i.Name,
		Brand:      i.Brand,
		Price:      i.Price,
		Sale:       i.Sale,
		TotalPrice: i.TotalPrice,
	}
}

func OrderToEntity(o Order) entities.Order {
	items := make([]entities.Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemToEntity(it))
	}

	return entities.Order{
		OrderUID:    o.OrderUID,
		TrackNumber: o.TrackNumber,
		DateCreated: o.DateCreated,
		Delivery:    DeliveryToEntity(o.Delivery),
		Payment:     PaymentToEntity(o.Payment),
		Items:       items,
	}
}
