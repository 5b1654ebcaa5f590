// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// outputFormat is the encoding used for structured command output.
type outputFormat string

const (
	formatYAML outputFormat = "yaml"
	formatJSON outputFormat = "json"
)

func parseFormat(value string) (outputFormat, error) {
	switch outputFormat(value) {
	case formatYAML, formatJSON:
		return outputFormat(value), nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected yaml or json)", value)
	}
}

/*
writeOutput encodes data to w.

Description: YAML output goes through the JSON encoding first, so both
formats share the same field names and ordering.
*/
func writeOutput(w io.Writer, format outputFormat, data any) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	if format == formatJSON {
		_, err = fmt.Fprintln(w, string(encoded))
		return err
	}

	// JSON is valid YAML; decoding into a node keeps the key order.
	var node yaml.Node
	if err := yaml.Unmarshal(encoded, &node); err != nil {
		return fmt.Errorf("convert output to yaml: %w", err)
	}
	clearStyle(&node)

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(&node)
}

// clearStyle drops the flow and quoting styles inherited from the JSON text.
func clearStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		clearStyle(child)
	}
}
