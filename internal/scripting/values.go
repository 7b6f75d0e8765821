package scripting

import (
	"fmt"
	"math"
	"sort"

	"github.com/Shopify/go-lua"

	"github.com/louisbranch/pursuit/internal/dialog"
)

// convertible reports whether v can be pushed onto a Lua stack.
func convertible(v any) (bool, error) {
	switch v := v.(type) {
	case nil, bool, string, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return true, nil
	case []any:
		for _, item := range v {
			if _, err := convertible(item); err != nil {
				return false, err
			}
		}
		return true, nil
	case map[string]any:
		for _, item := range v {
			if _, err := convertible(item); err != nil {
				return false, err
			}
		}
		return true, nil
	default:
		return false, fmt.Errorf("unsupported script value type %T", v)
	}
}

func push(l *lua.State, v any) error {
	switch v := v.(type) {
	case nil:
		l.PushNil()
	case bool:
		l.PushBoolean(v)
	case string:
		l.PushString(v)
	case int:
		l.PushInteger(v)
	case int8:
		l.PushInteger(int(v))
	case int16:
		l.PushInteger(int(v))
	case int32:
		l.PushInteger(int(v))
	case int64:
		l.PushNumber(float64(v))
	case uint:
		l.PushNumber(float64(v))
	case uint8:
		l.PushInteger(int(v))
	case uint16:
		l.PushInteger(int(v))
	case uint32:
		l.PushNumber(float64(v))
	case uint64:
		l.PushNumber(float64(v))
	case float32:
		l.PushNumber(float64(v))
	case float64:
		l.PushNumber(v)
	case []any:
		l.CreateTable(len(v), 0)
		for i, item := range v {
			if err := push(l, item); err != nil {
				l.Pop(1)
				return err
			}
			l.RawSetInt(-2, i+1)
		}
	case map[string]any:
		l.CreateTable(0, len(v))
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := push(l, v[k]); err != nil {
				l.Pop(1)
				return err
			}
			l.SetField(-2, k)
		}
	default:
		return fmt.Errorf("unsupported script value type %T", v)
	}
	return nil
}

// pushEntity pushes a read-only view of ent: id, name, and a get(key)
// function over its ephemeral store. A nil entity pushes nil.
func pushEntity(l *lua.State, ent dialog.Entity) {
	if ent == nil {
		l.PushNil()
		return
	}
	l.NewTable()
	l.PushNumber(float64(ent.ID()))
	l.SetField(-2, "id")
	l.PushString(ent.Name())
	l.SetField(-2, "name")
	if loc, ok := ent.(dialog.Located); ok {
		l.PushInteger(int(loc.MapID()))
		l.SetField(-2, "map")
	}
	l.PushGoFunction(func(l *lua.State) int {
		key := lua.CheckString(l, 1)
		v, ok := ent.TryGetEphemeral(key)
		if !ok {
			l.PushNil()
			return 1
		}
		if err := push(l, v); err != nil {
			l.PushString(fmt.Sprint(v))
		}
		return 1
	})
	l.SetField(-2, "get")
}

// maxDepth bounds table conversion. Deeper tables become nil, which also
// stops self-referencing tables.
const maxDepth = 8

func toGo(l *lua.State, index int) any {
	return toGoDepth(l, index, 0)
}

func toGoDepth(l *lua.State, index, depth int) any {
	switch l.TypeOf(index) {
	case lua.TypeString:
		v, _ := l.ToString(index)
		return v
	case lua.TypeNumber:
		v, _ := l.ToNumber(index)
		return normalizeNumber(v)
	case lua.TypeBoolean:
		return l.ToBoolean(index)
	case lua.TypeTable:
		if depth >= maxDepth {
			return nil
		}
		return tableToGo(l, index, depth+1)
	default:
		return nil
	}
}

func tableToGo(l *lua.State, index, depth int) any {
	index = l.AbsIndex(index)
	isArray := true
	maxIndex, count := 0, 0
	l.PushNil()
	for l.Next(index) {
		if isArray {
			if idx, ok := l.ToInteger(-2); ok && l.TypeOf(-2) == lua.TypeNumber && idx > 0 {
				count++
				maxIndex = max(maxIndex, idx)
			} else {
				isArray = false
			}
		}
		l.Pop(1)
	}
	if isArray && count > 0 && maxIndex == count {
		out := make([]any, 0, maxIndex)
		for i := 1; i <= maxIndex; i++ {
			l.RawGetInt(index, i)
			out = append(out, toGoDepth(l, -1, depth))
			l.Pop(1)
		}
		return out
	}

	out := map[string]any{}
	l.PushNil()
	for l.Next(index) {
		if l.TypeOf(-2) == lua.TypeString {
			k, _ := l.ToString(-2)
			// Functions and other host values have no Go form.
			if l.TypeOf(-1) != lua.TypeFunction {
				out[k] = toGoDepth(l, -1, depth)
			}
		}
		l.Pop(1)
	}
	return out
}

func normalizeNumber(v float64) any {
	if math.Mod(v, 1) == 0 && math.Abs(v) < 1<<53 {
		return int(v)
	}
	return v
}
