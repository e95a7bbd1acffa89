package decode

import (
	"fmt"
)

// DecodeError reports a record of a dataset that could not be read.
type DecodeError struct {
	File    string
	Line    int
	Field   string
	Message string
}

func (e DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s:%d: %s: %s", e.File, e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
}
