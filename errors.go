package shortopt

// Bad input on the command line. Recoverable by the caller.
type userError struct {
	msg string
}

func (ue userError) Error() string {
	return ue.msg
}

// A contract violation by the embedding program, such as describing an
// option that was never registered. Panicked, not returned.
type logicError struct {
	msg string
}

func (le logicError) Error() string {
	return le.msg
}
