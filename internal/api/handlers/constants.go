package handlers

const (
	// Commands generated when a request leaves count unset
	defaultCommandCount = 1

	contentTypeYAML = "application/x-yaml"
	contentTypePNG  = "image/png"
)
