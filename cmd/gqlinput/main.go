package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hanpama/gqlinput/internal/eventbus"
	"github.com/hanpama/gqlinput/internal/events"
	"github.com/hanpama/gqlinput/internal/language"
	"github.com/hanpama/gqlinput/internal/otel"
	"github.com/hanpama/gqlinput/internal/reqid"
	"github.com/hanpama/gqlinput/internal/schema"
	"github.com/hanpama/gqlinput/internal/values"
)

const rootUsage = `gqlinput: GraphQL input-value coercion tools

USAGE:
  gqlinput <command> [flags]

COMMANDS:
  coerce           Coerce a variables payload against an operation's variable definitions
  render           Parse & validate GraphQL SDL and print the normalized schema
  help             Show help for any command
`

const coerceUsage = `coerce FLAGS:
  -schema <file>       GraphQL SDL schema file (required)
  -query <file>        Query document file (required)
  -variables <file>    JSON variables payload (default: empty object)
  -operation <name>    Operation to coerce (default: the only operation)
  -pretty              Pretty-print JSON output
  -otel.endpoint <addr>  OTLP collector endpoint
  -otel.service <name>   OpenTelemetry service name (default: gqlinput)
  (Exits non-zero when any variable fails to coerce)
`

const renderUsage = `render FLAGS:
  -schema <file>   GraphQL SDL schema file (required)
  -out <file>      Write normalized SDL to file (default: stdout)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	cmd := args[0]
	cmdArgs := args[1:]
	switch cmd {
	case "coerce":
		return cmdCoerce(cmdArgs)
	case "render":
		return cmdRender(cmdArgs)
	case "help":
		return cmdHelp(cmdArgs)
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "coerce":
		fmt.Print(coerceUsage)
	case "render":
		fmt.Print(renderUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

// coerceResult is the JSON shape the coerce command prints.
type coerceResult struct {
	Variables map[string]any        `json:"variables,omitempty"`
	Errors    []values.GraphQLError `json:"errors,omitempty"`
}

func cmdCoerce(args []string) error {
	schemaFile := ""
	queryFile := ""
	variablesFile := ""
	operationName := ""
	pretty := false
	otelEndpoint := ""
	otelService := "gqlinput"

	fs := flag.NewFlagSet("coerce", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&schemaFile, "schema", schemaFile, "GraphQL SDL schema file")
	fs.StringVar(&queryFile, "query", queryFile, "Query document file")
	fs.StringVar(&variablesFile, "variables", variablesFile, "JSON variables payload")
	fs.StringVar(&operationName, "operation", operationName, "Operation to coerce")
	fs.BoolVar(&pretty, "pretty", pretty, "Pretty-print JSON output")
	fs.StringVar(&otelEndpoint, "otel.endpoint", otelEndpoint, "OTLP collector endpoint")
	fs.StringVar(&otelService, "otel.service", otelService, "OpenTelemetry service name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, coerceUsage)
		return err
	}
	if schemaFile == "" || queryFile == "" {
		fmt.Fprint(os.Stderr, coerceUsage)
		return fmt.Errorf("-schema and -query are required")
	}

	sch, err := loadSchema(schemaFile)
	if err != nil {
		return err
	}

	querySrc, err := os.ReadFile(queryFile)
	if err != nil {
		return err
	}
	doc, err := language.ParseQuery(string(querySrc))
	if err != nil {
		return fmt.Errorf("parse query: %w", err)
	}
	operation, err := getOperation(doc, operationName)
	if err != nil {
		return err
	}

	raw := map[string]any{}
	if variablesFile != "" {
		payload, err := os.ReadFile(variablesFile)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(payload, &raw); err != nil {
			return fmt.Errorf("decode variables: %w", err)
		}
	}

	eventbus.Use(eventbus.New())
	shutdown, err := otel.Setup(otelEndpoint, otelService)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	ctx, _ := reqid.NewContext(context.Background())
	start := time.Now()
	eventbus.Publish(ctx, events.CoercionStart{
		OperationName: operation.Name,
		Variables:     len(operation.VariableDefinitions),
	})
	coerced, coerceErrs := values.CoerceVariableValues(sch, operation, raw)
	eventbus.Publish(ctx, events.CoercionFinish{
		OperationName: operation.Name,
		Coerced:       len(coerced),
		Errors:        len(coerceErrs),
		Duration:      time.Since(start),
	})

	if err := printJSON(coerceResult{Variables: coerced, Errors: coerceErrs}, pretty); err != nil {
		return err
	}
	if len(coerceErrs) > 0 {
		return fmt.Errorf("%d variable(s) failed to coerce", len(coerceErrs))
	}
	return nil
}

func cmdRender(args []string) error {
	schemaFile := ""
	outFile := ""
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&schemaFile, "schema", schemaFile, "GraphQL SDL schema file")
	fs.StringVar(&outFile, "out", outFile, "Write normalized SDL to file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, renderUsage)
		return err
	}
	if schemaFile == "" {
		fmt.Fprint(os.Stderr, renderUsage)
		return fmt.Errorf("-schema is required")
	}

	sch, err := loadSchema(schemaFile)
	if err != nil {
		return err
	}
	sdl := schema.Render(sch)
	if outFile == "" {
		fmt.Print(sdl)
		return nil
	}
	return os.WriteFile(outFile, []byte(sdl), 0644)
}

func loadSchema(path string) (*schema.Schema, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sch, err := schema.BuildFromSDL(string(src))
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}
	return sch, nil
}

// getOperation selects the operation by name, or the only one when the
// document has exactly one and no name was given.
func getOperation(doc *language.QueryDocument, name string) (*language.OperationDefinition, error) {
	if name == "" {
		if len(doc.Operations) != 1 {
			return nil, fmt.Errorf("document has %d operations; -operation is required", len(doc.Operations))
		}
		return doc.Operations[0], nil
	}
	for _, op := range doc.Operations {
		if op.Name == name {
			return op, nil
		}
	}
	return nil, fmt.Errorf("operation %q not found", name)
}

func printJSON(v any, pretty bool) error {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
