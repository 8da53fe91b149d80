package alphabet

import "fmt"

// ConfigurationError reports an alphabet or pipeline setting that cannot be used,
// or characters seen in a corpus that the alphabet does not cover.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}
