package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"gopkg.in/yaml.v3"

	detailview "github.com/goliatone/go-detailview"
	pkgopenapi "github.com/goliatone/go-detailview/pkg/openapi"
	"github.com/goliatone/go-detailview/pkg/record"
)

func main() {
	recordPath := flag.String("record", "", "record file, JSON or YAML")
	attributes := flag.String("attributes", "", "comma-separated attribute specs (name or name:format)")
	rendererName := flag.String("renderer", "table", "renderer to use")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "pick attributes interactively")
	openapiPath := flag.String("openapi", "", "OpenAPI document to derive attribute specs from")
	schemaName := flag.String("schema", "", "component schema name inside the OpenAPI document")
	flag.Parse()

	if *recordPath == "" {
		log.Fatalf("missing -record: need a JSON or YAML record file")
	}

	rec, err := loadRecord(*recordPath)
	if err != nil {
		log.Fatalf("Failed to load record: %v", err)
	}

	ctx := context.Background()

	specs, err := resolveSpecs(ctx, rec, *attributes, *interactive, *openapiPath, *schemaName)
	if err != nil {
		log.Fatalf("Failed to resolve attribute specs: %v", err)
	}

	html, err := detailview.RenderHTML(ctx, rec, specs, detailview.WithRenderer(*rendererName))
	if err != nil {
		log.Fatalf("Failed to render detail view: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, html, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Detail view written to %s\n", *output)
	} else {
		fmt.Println(string(html))
	}
}

func loadRecord(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rec map[string]any
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rec) == 0 {
		return nil, fmt.Errorf("%s contains no fields", path)
	}
	return rec, nil
}

func resolveSpecs(ctx context.Context, rec map[string]any, attributes string, interactive bool, openapiPath, schemaName string) ([]any, error) {
	switch {
	case openapiPath != "":
		if schemaName == "" {
			return nil, fmt.Errorf("-openapi requires -schema")
		}
		payload, err := os.ReadFile(openapiPath)
		if err != nil {
			return nil, err
		}
		return pkgopenapi.SpecsFromDocument(ctx, payload, schemaName)

	case interactive:
		return pickAttributes(rec)

	case attributes != "":
		var specs []any
		for _, spec := range strings.Split(attributes, ",") {
			spec = strings.TrimSpace(spec)
			if spec == "" {
				continue
			}
			specs = append(specs, spec)
		}
		return specs, nil

	default:
		// nil derives the spec list from the record itself.
		return nil, nil
	}
}

func pickAttributes(rec map[string]any) ([]any, error) {
	names := record.Map(rec).FieldNames()

	var selected []string
	prompt := &survey.MultiSelect{
		Message: "Attributes to display:",
		Options: names,
		Default: names,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return nil, err
	}

	specs := make([]any, 0, len(selected))
	for _, name := range selected {
		specs = append(specs, name)
	}
	return specs, nil
}
