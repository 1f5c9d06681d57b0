package server

// Server is the process-level lifecycle of the vault server.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT and then shuts down
	// gracefully.
	RunServer()

	// Shutdown stops the server, waiting for in-flight requests up to the
	// configured shutdown timeout.
	Shutdown()
}
