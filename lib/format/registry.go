package format

import (
	"errors"
	"fmt"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
	"slices"
	"strings"
)

// Logger is the logger of the format package
var Logger = logger.GetLogger("format")

var (
	// ErrUnknownFormat is returned by Get for names that are not registered
	ErrUnknownFormat = errors.New("unknown format")
	// ErrDuplicateFormat is returned by Register if the name is already taken
	ErrDuplicateFormat = errors.New("format already registered")
)

// formats maps the format name to the format
var formats = xsync.NewMapOf[string, IFormat]()

func init() {
	for _, f := range []IFormat{NewJSONFormat(), NewYAMLFormat(), NewCBORFormat()} {
		formats.Store(f.Name(), f)
	}
}

// Register adds a format under its name
func Register(f IFormat) error {
	if _, loaded := formats.LoadOrStore(f.Name(), f); loaded {
		return fmt.Errorf("%w: %s", ErrDuplicateFormat, f.Name())
	}
	Logger.Infof("registered format %s", f.Name())
	return nil
}

// Get returns the format registered under name (case-insensitive)
func Get(name string) (IFormat, error) {
	f, ok := formats.Load(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return nil, fmt.Errorf("%w %q: must be one of %s", ErrUnknownFormat, name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Names returns the sorted names of all registered formats
func Names() []string {
	names := make([]string, 0, formats.Size())
	formats.Range(func(name string, _ IFormat) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)
	return names
}
