package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

// Нагрузка на отслеживание заказа: в основном существующий заказ, иногда
// случайный id, который должен получить 404.
var (
	baseURL    = flag.String("url", "http://localhost:8080/api/customer/orders/", "адрес отслеживания заказа")
	orderID    = flag.String("order", "ORD-1A2B3C4D", "существующий заказ")
	customerID = flag.String("customer", "c1", "владелец заказа")
)

func main() {
	flag.Parse()

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomID() string {
	const chars = "0123456789ABCDEF"
	id := make([]byte, 8)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return "ORD-" + string(id)
}

func doRequest() {
	id := *orderID
	if rand.Intn(5) == 0 {
		id = randomID()
	}

	req, err := http.NewRequest(http.MethodGet, *baseURL+id, nil)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	req.Header.Set("X-Actor-ID", *customerID)
	req.Header.Set("X-Actor-Role", "CUSTOMER")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("GET", req.URL, "->", resp.Status)
	resp.Body.Close()
}
