package networking_test

import (
	"context"
	"fmt"
	"net/http"

	networking "github.com/djb950/modern-networking"
	"github.com/djb950/modern-networking/networkingtest"
)

func ExampleRequest() {
	server := networkingtest.NewMockServer()
	defer server.Close()
	server.ResponseFunc = func(r *http.Request) (int, any) {
		return http.StatusOK, CatFact{Fact: "Cats purr at 25 hertz.", Length: 22}
	}

	client, err := networking.New()
	if err != nil {
		fmt.Println(err)
		return
	}

	fact, err := networking.Request[CatFact](context.Background(), client,
		server.Endpoint("/fact"), networking.Get())
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(fact.Fact)
	// Output: Cats purr at 25 hertz.
}

func ExampleStatusHandlers() {
	server := networkingtest.NewMockServer()
	defer server.Close()
	server.ResponseFunc = func(r *http.Request) (int, any) {
		return http.StatusNotFound, CatFact{Fact: "No fact here.", Length: 13}
	}

	client, err := networking.New()
	if err != nil {
		fmt.Println(err)
		return
	}

	// The API returns a decodable body even on 404.
	fact, err := networking.Request[CatFact](context.Background(), client,
		server.Endpoint("/fact"), networking.Get(),
		networking.WithRequestHandlers(networking.StatusHandlers{
			networking.StatusClientError: networking.ActionDecode,
		}),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(fact.Fact)
	// Output: No fact here.
}
