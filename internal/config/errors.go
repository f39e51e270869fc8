package config

// Error is a configuration failure: a file whose content does not match
// the schema, or a failed write.
type Error struct {
	Msg string
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "config: " + e.Msg + ": " + e.Err.Error()
	}
	return "config: " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
