package server

// Server is the lifecycle contract of a transport server. RunServer
// blocks until a shutdown signal arrives or the listener fails;
// Shutdown drains in-flight requests before returning.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
