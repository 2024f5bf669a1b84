package main

import (
	"alpaca-lang/internal/diag"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ---- output helpers ----

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", strings.Repeat(" ", cfg.Output.Indent))
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}
	return nil
}

func printYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(cfg.Output.Indent)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("YAML encoding failed: %w", err)
	}
	return enc.Close()
}

func newRenderer(w io.Writer) *diag.Renderer {
	return diag.NewRenderer(w, cfg.Diagnostics.Color, cfg.Diagnostics.ContextLines)
}

func diagsToSlice(diags []diag.Diagnostic) []map[string]interface{} {
	result := make([]map[string]interface{}, len(diags))
	for i, d := range diags {
		result[i] = map[string]interface{}{
			"code":     d.Code,
			"stage":    d.Stage(),
			"message":  d.Message,
			"line":     d.Span.Start.Line,
			"column":   d.Span.Start.Column,
			"offset":   d.Span.Start.Offset,
			"end":      d.Span.End.Offset,
		}
		if d.Hint != "" {
			result[i]["hint"] = d.Hint
		}
	}
	return result
}
