package content

import (
	"fmt"
	"math"
	"strings"

	"github.com/louisbranch/pursuit/internal/world"
)

// table is a script table as the engine hands it to host functions.
type table map[string]any

var jobNames = map[string]world.Job{
	"vend":   world.JobVend,
	"bank":   world.JobBank,
	"train":  world.JobTrain,
	"repair": world.JobRepair,
	"post":   world.JobPost,
}

func asTable(v any) (table, error) {
	switch v := v.(type) {
	case map[string]any:
		return table(v), nil
	case []any:
		if len(v) == 0 {
			return table{}, nil
		}
	}
	return nil, fmt.Errorf("want a table with named fields, got %T", v)
}

func (t table) string(key string) string {
	s, _ := t[key].(string)
	return s
}

func (t table) requiredString(key string) (string, error) {
	s := strings.TrimSpace(t.string(key))
	if s == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return s, nil
}

func (t table) bool(key string) bool {
	b, _ := t[key].(bool)
	return b
}

func (t table) int(key string) (int, error) {
	switch v := t[key].(type) {
	case nil:
		return 0, nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("%s must be an integer, got %v", key, v)
	}
}

func (t table) uint16(key string) (uint16, error) {
	n, err := t.int(key)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > math.MaxUint16 {
		return 0, fmt.Errorf("%s out of range: %d", key, n)
	}
	return uint16(n), nil
}

func (t table) uint32(key string) (uint32, error) {
	n, err := t.int(key)
	if err != nil {
		return 0, err
	}
	if n <= 0 || int64(n) > math.MaxUint32 {
		return 0, fmt.Errorf("%s out of range: %d", key, n)
	}
	return uint32(n), nil
}

// list returns the array at key. A missing key or an empty table is an empty
// list.
func (t table) list(key string) ([]any, error) {
	switch v := t[key].(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	case map[string]any:
		if len(v) == 0 {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("%s must be a list", key)
}

func (t table) jobs() (world.Job, error) {
	items, err := t.list("jobs")
	if err != nil {
		return 0, err
	}
	var jobs world.Job
	for _, item := range items {
		name, _ := item.(string)
		job, ok := jobNames[strings.ToLower(name)]
		if !ok {
			return 0, fmt.Errorf("unknown merchant job %v", item)
		}
		jobs |= job
	}
	return jobs, nil
}
