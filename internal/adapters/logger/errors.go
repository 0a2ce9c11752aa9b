package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/hdrgen/internal/ui/style"
)

// messager is implemented by zerr.Error: the message of one link without its cause.
type messager interface {
	Message() string
}

// metadater is implemented by zerr.Error.
type metadater interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the chain of err. Links without a message only
// carry metadata, which is attached to the preceding entry, or to the next
// one when there is none yet.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
			break
		}

		var md map[string]any
		if d, ok := current.(metadater); ok {
			md = d.Metadata()
		}

		switch {
		case m.Message() != "":
			if pending != nil {
				maps.Copy(pending, md)
				md = pending
				pending = nil
			}
			entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: md})
		case len(entries) > 0:
			last := &entries[len(entries)-1]
			if last.Metadata == nil {
				last.Metadata = make(map[string]any, len(md))
			}
			maps.Copy(last.Metadata, md)
		case len(md) > 0:
			if pending == nil {
				pending = make(map[string]any, len(md))
			}
			maps.Copy(pending, md)
		}

		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders the entries as a main error followed by its causes.
func formatErrorEntries(entries []ErrorEntry) string {
	lines := make([]string, 0, len(entries)*2)

	for i, e := range entries {
		msg := strings.Split(e.Message, "\n")

		head, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			head, indent = "    "+style.Arrow+" ", "      "
		}

		lines = append(lines, head+msg[0])
		for _, l := range msg[1:] {
			lines = append(lines, indent+l)
		}
		for _, k := range slices.Sorted(maps.Keys(e.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, e.Metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}
