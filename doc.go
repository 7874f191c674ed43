// Package client provides a typed Go client for the extension marketplace
// HTTP API: catalog listing and search, extension detail, categories, signed
// download URLs, version history, reviews, and the service health check.
//
// The public API centres around the Client type. Construction is entirely
// optional-field based:
//
//	c, err := client.New(
//		client.WithPlatform("linux"),
//		client.WithAppVersion("2.0.0"),
//	)
//
// Every operation is a plain context-aware call returning plain data. Non-2xx
// responses surface as *APIError carrying the server message and status code;
// transport and JSON decode failures propagate unchanged. The network round
// trip is delegated to an injected Doer, so tests substitute stubs without
// touching the network.
package client
