package core

// Args carries the caller-supplied values for one invocation, keyed by the
// descriptor's argument names. A fresh Args is built per call and discarded
// when the call returns; entries are never shared across calls.
//
// Absence is the only representable "don't send this" state: the typed
// setters skip nil pointers entirely, so a key present in the map always
// holds a concrete value. Falsy values (0, false, "") are stored and sent
// like any other.
type Args map[string]any

// Set stores a required value under name.
func (a Args) Set(name string, v any) { a[name] = v }

// SetString stores *v when v is non-nil.
func (a Args) SetString(name string, v *string) {
	if v != nil {
		a[name] = *v
	}
}

// SetInt stores *v when v is non-nil.
func (a Args) SetInt(name string, v *int) {
	if v != nil {
		a[name] = *v
	}
}

// SetFloat stores *v when v is non-nil.
func (a Args) SetFloat(name string, v *float64) {
	if v != nil {
		a[name] = *v
	}
}

// SetBool stores *v when v is non-nil.
func (a Args) SetBool(name string, v *bool) {
	if v != nil {
		a[name] = *v
	}
}

// SetInts stores v when the slice is non-nil. An empty non-nil slice is
// stored and serialized as an empty list value.
func (a Args) SetInts(name string, v []int) {
	if v != nil {
		a[name] = v
	}
}

// SetStrings stores v when the slice is non-nil.
func (a Args) SetStrings(name string, v []string) {
	if v != nil {
		a[name] = v
	}
}

// SetAny stores v when it is non-nil. Used for free-form JSON values such as
// custom field maps.
func (a Args) SetAny(name string, v any) {
	if v != nil {
		a[name] = v
	}
}

// SetFile stores the file payload when f is non-nil.
func (a Args) SetFile(name string, f *File) {
	if f != nil {
		a[name] = f
	}
}

// File is a multipart file payload: the filename sent in the part header and
// the raw content bytes.
type File struct {
	Name    string
	Content []byte
}
