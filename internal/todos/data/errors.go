package data

// ValidationError reports a malformed argument (bad date or index shape),
// caught before any file I/O is attempted.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NotFoundError reports a referenced note file or todo line that does not
// exist.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

// ConsistencyError reports a line that no longer matches the todo marker
// pattern at mutation time. The file is left untouched.
type ConsistencyError struct {
	Msg string
}

func (e *ConsistencyError) Error() string {
	return e.Msg
}
