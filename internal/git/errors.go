package git

// Error is a failed git invocation whose result the caller needed.
type Error struct {
	Msg string
	Err error // typically carries the command's stderr
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "git: " + e.Msg + ": " + e.Err.Error()
	}
	return "git: " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
