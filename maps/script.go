package maps

import (
	"context"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/isowalk/tilemap"
)

// RunScript runs a tengo generation script against g. The script sees
// these globals:
//
//	set_tile(x, y, v)  remove_tile(x, y)  get_tile(x, y)
//	fill_area(x, y, w, h, [v...])  fill_checkerboard(x, y, w, h)  clear()
//
// get_tile yields undefined for an empty cell.
func RunScript(ctx context.Context, name string, src []byte, g *tilemap.Grid) error {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	for fnName, fn := range gridFuncs(g) {
		if err := script.Add(fnName, fn); err != nil {
			return fmt.Errorf("maps: script %s: add %s: %w", name, fnName, err)
		}
	}
	if _, err := script.RunContext(ctx); err != nil {
		return fmt.Errorf("maps: script %s: %w", name, err)
	}
	return nil
}

func gridFuncs(g *tilemap.Grid) map[string]*tengo.UserFunction {
	return map[string]*tengo.UserFunction{
		"set_tile": {Name: "set_tile", Value: func(args ...tengo.Object) (tengo.Object, error) {
			n, err := intArgs(args, 3, "x", "y", "v")
			if err != nil {
				return nil, err
			}
			if n[2] < 0 {
				return nil, fmt.Errorf("set_tile: negative variant %d", n[2])
			}
			g.Set(n[0], n[1], tilemap.Variant(n[2]))
			return tengo.UndefinedValue, nil
		}},
		"remove_tile": {Name: "remove_tile", Value: func(args ...tengo.Object) (tengo.Object, error) {
			n, err := intArgs(args, 2, "x", "y")
			if err != nil {
				return nil, err
			}
			g.Remove(n[0], n[1])
			return tengo.UndefinedValue, nil
		}},
		"get_tile": {Name: "get_tile", Value: func(args ...tengo.Object) (tengo.Object, error) {
			n, err := intArgs(args, 2, "x", "y")
			if err != nil {
				return nil, err
			}
			v, ok := g.Get(n[0], n[1])
			if !ok {
				return tengo.UndefinedValue, nil
			}
			return &tengo.Int{Value: int64(v)}, nil
		}},
		"fill_area": {Name: "fill_area", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 5 {
				return nil, tengo.ErrWrongNumArguments
			}
			n, err := intArgs(args[:4], 4, "x", "y", "w", "h")
			if err != nil {
				return nil, err
			}
			pattern, err := variantList(args[4])
			if err != nil {
				return nil, err
			}
			if err := g.FillArea(n[0], n[1], n[2], n[3], pattern); err != nil {
				return nil, err
			}
			return tengo.UndefinedValue, nil
		}},
		"fill_checkerboard": {Name: "fill_checkerboard", Value: func(args ...tengo.Object) (tengo.Object, error) {
			n, err := intArgs(args, 4, "x", "y", "w", "h")
			if err != nil {
				return nil, err
			}
			g.FillCheckerboard(n[0], n[1], n[2], n[3])
			return tengo.UndefinedValue, nil
		}},
		"clear": {Name: "clear", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 0 {
				return nil, tengo.ErrWrongNumArguments
			}
			g.Clear()
			return tengo.UndefinedValue, nil
		}},
	}
}

func intArgs(args []tengo.Object, want int, names ...string) ([]int, error) {
	if len(args) != want {
		return nil, tengo.ErrWrongNumArguments
	}
	out := make([]int, want)
	for i, a := range args {
		v, ok := tengo.ToInt(a)
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: names[i], Expected: "int", Found: a.TypeName()}
		}
		out[i] = v
	}
	return out, nil
}

func variantList(o tengo.Object) ([]tilemap.Variant, error) {
	var items []tengo.Object
	switch arr := o.(type) {
	case *tengo.Array:
		items = arr.Value
	case *tengo.ImmutableArray:
		items = arr.Value
	default:
		return nil, tengo.ErrInvalidArgumentType{Name: "pattern", Expected: "array", Found: o.TypeName()}
	}
	out := make([]tilemap.Variant, 0, len(items))
	for _, it := range items {
		v, ok := tengo.ToInt(it)
		if !ok || v < 0 {
			return nil, tengo.ErrInvalidArgumentType{Name: "pattern", Expected: "array of non-negative int", Found: it.TypeName()}
		}
		out = append(out, tilemap.Variant(v))
	}
	return out, nil
}
