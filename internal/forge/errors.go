package forge

// Error is a hosting CLI failure: binary unavailable, non-zero exit, or
// output that fails to parse as the expected structure. Forge names the
// provider ("github" or "gitlab").
type Error struct {
	Forge string
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Forge + ": " + e.Msg + ": " + e.Err.Error()
	}
	return e.Forge + ": " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
