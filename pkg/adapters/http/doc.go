// Package http exposes a single screen controller over HTTP.
//
// The adapter is meant for inspecting and driving a flow from outside the host
// process: reading the graph, finishing scripted screens, streaming screen
// changes and scraping metrics. Every request that touches the controller is
// serialized through one mutex.
package http
