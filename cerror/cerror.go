package cerror

import "fmt"

type CricketError struct {
	Err string
}

// New returns a formatted CricketError.
func New(format string, args ...interface{}) *CricketError {
	return &CricketError{Err: fmt.Sprintf(format, args...)}
}

func (e *CricketError) Error() string {
	return e.Err
}
