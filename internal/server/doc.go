// Package server wires and runs the transport servers of the credential
// service.
//
// It starts the HTTP and gRPC servers that have an address configured,
// runs the background workers next to them and shuts everything down
// gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
