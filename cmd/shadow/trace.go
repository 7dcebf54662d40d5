package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/deepnoodle-ai/shadow/errz"
	"github.com/deepnoodle-ai/shadow/handlers"
	"github.com/deepnoodle-ai/shadow/object"
	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/rs/zerolog"
)

func traceHandler(ctx *cli.Context) error {
	doc, err := getDocument(ctx)
	if err != nil {
		return err
	}

	var parsed interface{}
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return fmt.Errorf("invalid JSON document: %w", err)
	}
	value, err := object.FromGoValue(parsed)
	if err != nil {
		return err
	}
	target, ok := value.(*object.Ordinary)
	if !ok {
		return fmt.Errorf("the document must be a JSON object (%s given)", value.Type())
	}
	if ctx.Bool("freeze") {
		target.Freeze()
	}

	handler := object.NewObject()
	if !ctx.Bool("quiet") {
		logger := zerolog.New(zerolog.ConsoleWriter{
			Out:     os.Stderr,
			NoColor: ctx.Bool("no-color") || !isTerminalIO(),
		}).With().Timestamp().Logger()
		var err error
		handler, err = handlers.Tracing(logger)
		if err != nil {
			return err
		}
	}

	p, err := object.NewProxy(ctx.Context(), target, handler)
	if err != nil {
		return err
	}

	for _, spec := range ctx.Args() {
		result, err := applyOp(ctx.Context(), p, spec)
		if err != nil {
			if kind := errz.Kind(err); kind != errz.ErrUnknown {
				printError(fmt.Sprintf("%s: %s: %s", spec, kind, err))
			} else {
				printError(fmt.Sprintf("%s: %s", spec, err))
			}
			continue
		}
		output, err := formatResult(ctx, result)
		if err != nil {
			return err
		}
		fmt.Printf("%s => %s\n", formatOpLabel(ctx, spec), output)
	}

	// Print the final state of the object, as seen through the proxy
	final, err := object.ToGoValue(ctx.Context(), p)
	if err != nil {
		return err
	}
	output, err := formatResult(ctx, final)
	if err != nil {
		return err
	}
	fmt.Println(output)
	return nil
}

// getDocument reads the target object's JSON document from the --json flag,
// the --file flag, or stdin, in that order of preference.
func getDocument(ctx *cli.Context) ([]byte, error) {
	if inline := ctx.String("json"); inline != "" {
		return []byte(inline), nil
	}
	if file := ctx.String("file"); file != "" {
		return os.ReadFile(file)
	}
	if !isTerminalIO() {
		return io.ReadAll(os.Stdin)
	}
	return nil, fmt.Errorf("no JSON document provided (use --json, --file, or stdin)")
}

// applyOp parses and runs one operation spec against the proxy. Specs look
// like "get:x", "set:x=5", "delete:x", "keys", or "freeze"; values are JSON.
func applyOp(ctx context.Context, p *object.Proxy, spec string) (interface{}, error) {
	name, rest, _ := strings.Cut(spec, ":")
	key, rawValue, hasValue := strings.Cut(rest, "=")

	switch name {
	case "get":
		value, err := p.Get(ctx, key, nil)
		if err != nil {
			return nil, err
		}
		return object.ToGoValue(ctx, value)
	case "set":
		if !hasValue {
			return nil, fmt.Errorf("set requires a value, e.g. set:x=5")
		}
		value, err := parseValue(rawValue)
		if err != nil {
			return nil, err
		}
		return p.Set(ctx, key, value, nil)
	case "has":
		return p.Has(ctx, key)
	case "delete":
		return p.Delete(ctx, key)
	case "desc":
		desc, err := p.GetOwnProperty(ctx, key)
		if err != nil {
			return nil, err
		}
		if desc == nil {
			return nil, nil
		}
		return object.ToGoValue(ctx, desc.ToMap())
	case "define":
		if !hasValue {
			return nil, fmt.Errorf("define requires a descriptor, e.g. define:x={\"value\":1}")
		}
		value, err := parseValue(rawValue)
		if err != nil {
			return nil, err
		}
		desc, err := descriptorFromMapValue(value)
		if err != nil {
			return nil, err
		}
		return p.DefineOwnProperty(ctx, key, *desc)
	case "keys":
		return p.OwnKeys(ctx)
	case "extensible":
		return p.IsExtensible(ctx)
	case "freeze":
		return p.PreventExtensions(ctx)
	default:
		return nil, fmt.Errorf("unknown operation %q", name)
	}
}

func parseValue(raw string) (object.Value, error) {
	var parsed interface{}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON value %q: %w", raw, err)
	}
	return object.FromGoValue(parsed)
}

func descriptorFromMapValue(value object.Value) (*object.PropertyDescriptor, error) {
	obj, ok := value.(*object.Ordinary)
	if !ok {
		return nil, fmt.Errorf("descriptor must be a JSON object (%s given)", value.Type())
	}
	ctx := context.Background()
	keys, err := obj.OwnKeys(ctx)
	if err != nil {
		return nil, err
	}
	items := map[string]object.Value{}
	for _, key := range keys {
		v, err := obj.Get(ctx, key, obj)
		if err != nil {
			return nil, err
		}
		items[key] = v
	}
	return object.DescriptorFromValue(object.NewMap(items))
}
