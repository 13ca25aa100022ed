package sizemap

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/s2"
)

// EnvName is the environment variable read by the default EnvSource.
const EnvName = "SIZEMAP_SIZE_CLASSES"

// TableSource supplies a candidate class table for a model. A nil table with
// a nil error means there is nothing to override. Returned tables are
// validated by the caller.
type TableSource interface {
	Table(cfg Config) (Table, error)
}

// TableSourceFunc adapts a function to TableSource.
type TableSourceFunc func(cfg Config) (Table, error)

func (f TableSourceFunc) Table(cfg Config) (Table, error) {
	return f(cfg)
}

// TextSource is override text in the ParseSizeClasses form.
type TextSource string

func (s TextSource) Table(cfg Config) (Table, error) {
	return ParseSizeClasses(string(s), cfg.NumClasses)
}

// EnvSource reads override text from the named environment variable.
// An empty name means EnvName.
type EnvSource string

func (s EnvSource) Table(cfg Config) (Table, error) {
	name := string(s)
	if name == "" {
		name = EnvName
	}
	text, ok := os.LookupEnv(name)
	if !ok {
		return nil, nil
	}
	return ParseSizeClasses(text, cfg.NumClasses)
}

// JSONSource is a JSON array of SizeClassInfo rows, sentinel included.
type JSONSource []byte

func (s JSONSource) Table(cfg Config) (Table, error) {
	if len(s) == 0 {
		return nil, nil
	}
	var t Table
	if err := sonic.Unmarshal(s, &t); err != nil {
		return nil, fmt.Errorf("sizemap: decode json table: %w", err)
	}
	if len(t) != cfg.NumClasses {
		return nil, &ParseError{Class: len(t), Err: ErrClassCount}
	}
	return t, nil
}

// SnapshotSource is the output of Snapshot.
type SnapshotSource []byte

func (s SnapshotSource) Table(cfg Config) (Table, error) {
	if len(s) == 0 {
		return nil, nil
	}
	src, err := s2.Decode(nil, s)
	if err != nil {
		return nil, fmt.Errorf("sizemap: decode snapshot: %w", err)
	}
	return JSONSource(src).Table(cfg)
}

// Snapshot encodes t as Snappy-compressed JSON, readable by SnapshotSource.
func Snapshot(t Table) ([]byte, error) {
	src, err := sonic.Marshal(t)
	if err != nil {
		return nil, err
	}
	return s2.EncodeSnappy(nil, src), nil
}
