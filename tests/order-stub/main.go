// Stand-in for the order service read API. Serves GET /order/{order_uid}
// with a generated order so the viewer can be exercised without the real
// backend. Identifiers ending in "404" return not found, identifiers
// ending in "bad" return a truncated body.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

type Delivery struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Zip     string `json:"zip"`
	City    string `json:"city"`
	Address string `json:"address"`
	Region  string `json:"region"`
	Email   string `json:"email"`
}

type Payment struct {
	Transaction  string `json:"transaction"`
	Currency     string `json:"currency"`
	Provider     string `json:"provider"`
	Amount       int    `json:"amount"`
	Bank         string `json:"bank"`
	DeliveryCost int    `json:"delivery_cost"`
	GoodsTotal   int    `json:"goods_total"`
}

type Item struct {
	ChrtID     int    `json:"chrt_id"`
	Name       string `json:"name"`
	Brand      string `json:"brand"`
	Price      int    `json:"price"`
	Sale       int    `json:"sale"`
	TotalPrice int    `json:"total_price"`
}

type Order struct {
	OrderUID    string   `json:"order_uid"`
	TrackNumber string   `json:"track_number"`
	DateCreated string   `json:"date_created"`
	Delivery    Delivery `json:"delivery"`
	Payment     Payment  `json:"payment"`
	Items       []Item   `json:"items"`
}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateOrder(orderUID string) Order {
	itemCount := rand.Intn(3) + 1
	items := make([]Item, 0, itemCount)
	goodsTotal := 0
	for i := 0; i < itemCount; i++ {
		price := rand.Intn(1000) + 100
		sale := rand.Intn(50)
		total := price * (100 - sale) / 100
		goodsTotal += total
		items = append(items, Item{
			ChrtID:     rand.Intn(9999999),
			Name:       "Item " + randomString(5),
			Brand:      "Brand" + randomString(3),
			Price:      price,
			Sale:       sale,
			TotalPrice: total,
		})
	}

	deliveryCost := rand.Intn(1000)
	return Order{
		OrderUID:    orderUID,
		TrackNumber: "TRACK" + randomString(6),
		DateCreated: time.Now().Format(time.RFC3339),
		Delivery: Delivery{
			Name:    "John Doe",
			Phone:   fmt.Sprintf("+%d", rand.Intn(9999999999)),
			Zip:     fmt.Sprintf("%06d", rand.Intn(999999)),
			City:    "City" + randomString(4),
			Address: fmt.Sprintf("Street %d", rand.Intn(100)),
			Region:  "Region" + randomString(3),
			Email:   fmt.Sprintf("user%d@example.com", rand.Intn(1000)),
		},
		Payment: Payment{
			Transaction:  randomString(16),
			Currency:     "USD",
			Provider:     "wbpay",
			Amount:       goodsTotal + deliveryCost,
			Bank:         "bank" + randomString(4),
			DeliveryCost: deliveryCost,
			GoodsTotal:   goodsTotal,
		},
		Items: items,
	}
}

func main() {
	addr := flag.String("addr", "localhost:8080", "listen address")
	flag.Parse()

	r := chi.NewRouter()
	r.Get("/order/{order_uid}", func(w http.ResponseWriter, req *http.Request) {
		orderUID := chi.URLParam(req, "order_uid")

		switch {
		case strings.HasSuffix(orderUID, "404"):
			http.Error(w, "order not found", http.StatusNotFound)
		case strings.HasSuffix(orderUID, "bad"):
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"order_uid": "`+orderUID)
		default:
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(generateOrder(orderUID))
		}

		log.Println("served order", orderUID)
	})

	log.Println("order stub listening on", *addr)
	if err := http.ListenAndServe(*addr, r); err != nil {
		log.Fatal(err)
	}
}
