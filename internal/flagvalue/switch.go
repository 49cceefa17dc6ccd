package flagvalue

import (
	"flag"
	"io"
	"os"
)

// Switch is a flag that accepts both "-x" and "-x=value":
// a boolean flag with an optional string payload.
type Switch string

var _ flag.Getter = (*Switch)(nil)

// Get returns the value stored in the switch,
// or '-' if the switch was set without a value.
func (s *Switch) Get() any { return string(*s) }

// String returns the value stored in the switch.
func (s *Switch) String() string { return string(*s) }

// IsBoolFlag marks this as a flag
// that doesn't require a value.
func (*Switch) IsBoolFlag() bool { return true }

// Set receives the value for this flag.
func (s *Switch) Set(v string) error {
	if v == "true" {
		v = "-"
	}
	*s = Switch(v)
	return nil
}

// Bool reports whether this flag was set with any value.
func (s *Switch) Bool() bool { return len(*s) > 0 }

// Value returns the payload of the switch,
// or an empty string if it was set without one.
func (s *Switch) Value() string {
	if *s == "-" {
		return ""
	}
	return string(*s)
}

// FileSwitch is a [Switch] whose payload names a file to write to.
type FileSwitch Switch

var _ flag.Getter = (*FileSwitch)(nil)

// Get returns the path stored in the flag,
// or '-' if no value was specified.
func (fs *FileSwitch) Get() any { return string(*fs) }

// String returns the path stored in the flag.
func (fs *FileSwitch) String() string { return string(*fs) }

// IsBoolFlag marks this as a flag
// that doesn't require a value.
func (*FileSwitch) IsBoolFlag() bool { return true }

// Set receives the value for this flag.
func (fs *FileSwitch) Set(v string) error {
	return (*Switch)(fs).Set(v)
}

// Bool reports whether this flag was set with any value.
func (fs *FileSwitch) Bool() bool { return len(*fs) > 0 }

// Create creates the file specified for this flag,
// and returns an io.Writer to it and a function to close it.
//
// This has three possible behaviors:
//
//   - the flag wasn't passed in: returns an [io.Discard]
//   - the flag was passed without a value: returns the provided fallback
//   - the flag was passed with a value: opens the file and returns it
func (fs *FileSwitch) Create(fallback io.Writer) (w io.Writer, close func() error, err error) {
	switch *fs {
	case "":
		return io.Discard, nopClose, nil
	case "-":
		return fallback, nopClose, nil
	default:
		f, err := os.Create(string(*fs))
		if err != nil {
			return nil, nil, err
		}
		return f, f.Close, nil
	}
}

func nopClose() error { return nil }
