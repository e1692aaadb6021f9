// Package networkingtest provides helpers for testing code that uses the
// networking client: a recording mock server and a preconfigured test client.
package networkingtest
