// Package networking wraps HTTP request construction, issuance, and typed
// response decoding behind a single generic call.
//
// Given an endpoint, a method, and a target type, Request produces a
// populated value of that type or a classified *RequestError. There is no
// retry policy, no caching, and no connection management of its own; the
// transport (TCP/TLS, pooling, redirects) is delegated entirely to the
// configured Transport, by default a net/http client.
//
// # Quick Start
//
//	type CatFact struct {
//	    Fact   string `json:"fact"`
//	    Length int    `json:"length"`
//	}
//
//	client, err := networking.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fact, err := networking.Request[CatFact](ctx, client,
//	    networking.URLEndpoint("https://catfact.ninja/fact"),
//	    networking.Get(),
//	)
//
// # Status Dispatch
//
// Responses are dispatched by status class. With no handlers configured, 2xx
// decodes the body, 4xx fails with ErrBadRequest, 5xx with ErrServerError,
// and everything else with ErrUnknown. A StatusHandlers table overrides this
// per class:
//
//	fact, err := networking.Request[CatFact](ctx, client, endpoint, networking.Get(),
//	    networking.WithRequestHandlers(networking.StatusHandlers{
//	        networking.StatusClientError: networking.ActionDecode, // 4xx bodies carry data too
//	    }),
//	)
//
// # Configuration
//
// The client is configured with functional options:
//
//	client, err := networking.New(
//	    networking.WithTimeout(10*time.Second),
//	    networking.WithHeader("Authorization", "Bearer "+token),
//	    networking.WithDecoder(networking.JSONDecoder{DisallowUnknownFields: true}),
//	    networking.WithLogger(networking.NewSlogAdapter(slog.Default())),
//	)
//
// # Thread Safety
//
// A Client holds no mutable state. Concurrent calls to Request are
// independent; each builds a fresh request and shares nothing but the
// transport's connection pool.
package networking
