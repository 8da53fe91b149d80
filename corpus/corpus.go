package corpus

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/teatak/charstat/util"
)

// InputFormatError reports a corpus file that cannot be used: missing,
// unreadable, or not valid UTF-8.
type InputFormatError struct {
	Path string
	Err  error
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("corpus %s: %v", e.Path, e.Err)
}

func (e *InputFormatError) Cause() error  { return e.Err }
func (e *InputFormatError) Unwrap() error { return e.Err }

// Load reads the whole corpus file at path into memory.
func Load(path string) (string, error) {
	expanded, err := util.ExpandPath(path)
	if err != nil {
		return "", &InputFormatError{Path: path, Err: errors.Wrap(err, "expand path")}
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return "", &InputFormatError{Path: path, Err: errors.Wrap(err, "read")}
	}
	if !utf8.Valid(data) {
		return "", &InputFormatError{Path: path, Err: errors.New("not valid UTF-8")}
	}
	return string(data), nil
}
