package picker

// Picker presents candidate lines and returns the selected ones. An empty
// result means the user cancelled; that is a no-op for the caller, never an
// error.
type Picker interface {
	Pick(candidates []string) ([]string, error)
}

// ForConfig picks an implementation by configured name: "builtin" forces the
// in-process fuzzy picker, anything else uses fzf when it is installed.
func ForConfig(name string) Picker {
	if name == "builtin" {
		return &Builtin{}
	}
	fzf := NewFzf()
	if fzf.Available() {
		return fzf
	}
	return &Builtin{}
}
