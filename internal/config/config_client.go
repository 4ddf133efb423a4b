package config

import "time"

// ClientConfig is the client-side view of the merged configuration.
// Only the fields the terminal client actually consumes are exposed.
type ClientConfig struct {
	// ServerURL is the base URL of the tracker API server.
	ServerURL string

	// EmailGatewayURL is the endpoint of the external email dispatch
	// service; empty disables dispatch.
	EmailGatewayURL string

	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration

	// RefreshInterval drives the background collection refresh job.
	// Zero disables the job.
	RefreshInterval time.Duration

	// Version is the build version shown in the UI.
	Version string
}
