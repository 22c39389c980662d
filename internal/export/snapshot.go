package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteSnapshot prints a submitted form value. JSON output is the value
// itself; the other formats list its top-level fields in declaration order.
func WriteSnapshot(w io.Writer, v any, format Format) error {
	if format == FormatJSON {
		return WriteJSON(w, v)
	}

	fields, err := flatten(v)
	if err != nil {
		return err
	}

	switch format {
	case FormatCSV, FormatTSV:
		writer := csv.NewWriter(w)
		if format == FormatTSV {
			writer.Comma = '\t'
		}
		for _, f := range fields {
			if err := writer.Write([]string{f[0], f[1]}); err != nil {
				return err
			}
		}
		writer.Flush()
		return writer.Error()
	case FormatMarkdown:
		for _, f := range fields {
			if _, err := fmt.Fprintf(w, "- **%s**: %s\n", f[0], dash(f[1])); err != nil {
				return err
			}
		}
		return nil
	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, f := range fields {
			fmt.Fprintf(tw, "%s\t%s\n", f[0], dash(f[1]))
		}
		return tw.Flush()
	}
}

// flatten walks the JSON encoding of v and returns key/value pairs in order.
// Strings are unquoted and other values stay compact JSON.
func flatten(v any) ([][2]string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("snapshot must encode as an object")
	}

	var fields [][2]string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		fields = append(fields, [2]string{key, displayValue(raw)})
	}
	return fields, nil
}

func displayValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, ", ")
	}
	return string(raw)
}
