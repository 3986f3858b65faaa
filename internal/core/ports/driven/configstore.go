package driven

// ConfigStore provides access to application configuration.
type ConfigStore interface {
	// ServerAddr returns the default HTTP listen address for the MCP
	// server, or empty when unset.
	ServerAddr() string

	// DisabledBackends lists backend names the user switched off,
	// regardless of whether they could be probed.
	DisabledBackends() []string

	// PdftotextPath returns an explicit pdftotext binary path, or
	// empty to search PATH.
	PdftotextPath() string

	// BrowserPath returns an explicit Chrome/Chromium binary path, or
	// empty to use the launcher's own lookup.
	BrowserPath() string
}
