package deck

import (
	"fmt"

	"go.starlark.net/starlark"
)

// FromScript runs a Starlark deck script. The script must bind a global
// named slides to a list of dicts with title, body, color and optional id
// keys. The builtin rgb(r, g, b) formats a color string.
func FromScript(name, script string) ([]Slide, error) {
	globals, err := execute(name, script)
	if err != nil {
		return nil, err
	}
	raw, ok := globals["slides"]
	if !ok {
		return nil, fmt.Errorf("%s: script does not define slides", name)
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s: slides must be a list, got %T", name, raw)
	}
	if len(list) == 0 {
		return nil, ErrEmpty
	}

	slides := make([]Slide, 0, len(list))
	for i, item := range list {
		fields, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: slide %d must be a dict, got %T", name, i, item)
		}
		s := Slide{
			ID:    stringField(fields, "id"),
			Title: stringField(fields, "title"),
			Body:  stringField(fields, "body"),
			Color: stringField(fields, "color"),
		}
		if s.Color != "" {
			if _, err := ParseColor(s.Color); err != nil {
				return nil, fmt.Errorf("%s: slide %d: %w", name, i, err)
			}
		}
		slides = append(slides, s)
	}
	return normalize(slides), nil
}

func stringField(m map[string]interface{}, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// execute runs script and returns its globals as native Go values.
func execute(name, script string) (map[string]interface{}, error) {
	thread := &starlark.Thread{Name: name, Print: func(_ *starlark.Thread, msg string) { fmt.Println(msg) }}

	predeclared := starlark.StringDict{
		"rgb": starlark.NewBuiltin("rgb", rgb),
	}

	resultGlobals, err := starlark.ExecFile(thread, name, script, predeclared)
	if err != nil {
		return nil, fmt.Errorf("running deck script %s: %w", name, err)
	}

	out := make(map[string]interface{})
	for k, v := range resultGlobals {
		out[k] = fromStarlarkValue(v)
	}
	return out, nil
}

func rgb(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var r, g, bl int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 3, &r, &g, &bl); err != nil {
		return nil, err
	}
	for _, c := range []int{r, g, bl} {
		if c < 0 || c > 255 {
			return nil, fmt.Errorf("%s: component %d out of range", b.Name(), c)
		}
	}
	return starlark.String(fmt.Sprintf("#%02x%02x%02x", r, g, bl)), nil
}

func fromStarlarkValue(v starlark.Value) interface{} {
	switch val := v.(type) {
	case starlark.String:
		return string(val)
	case starlark.Int:
		i, _ := val.Int64()
		return int(i)
	case starlark.Float:
		return float64(val)
	case starlark.Bool:
		return bool(val)
	case *starlark.List:
		out := make([]interface{}, 0, val.Len())
		for i := 0; i < val.Len(); i++ {
			out = append(out, fromStarlarkValue(val.Index(i)))
		}
		return out
	case starlark.Tuple:
		out := make([]interface{}, 0, len(val))
		for _, item := range val {
			out = append(out, fromStarlarkValue(item))
		}
		return out
	case *starlark.Dict:
		out := make(map[string]interface{}, val.Len())
		for _, item := range val.Items() {
			key, ok := item[0].(starlark.String)
			if !ok {
				continue
			}
			out[string(key)] = fromStarlarkValue(item[1])
		}
		return out
	}
	return nil
}
