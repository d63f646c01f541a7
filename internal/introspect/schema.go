package introspect

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Schema is the decoded introspection result. It is built once from the
// response and never mutated.
type Schema struct {
	QueryType        *NamedType `json:"queryType"`
	MutationType     *NamedType `json:"mutationType"`
	SubscriptionType *NamedType `json:"subscriptionType"`
	Types            []Type     `json:"types"`
}

// NamedType is a bare type name reference.
type NamedType struct {
	Name string `json:"name"`
}

// Type is one type in the schema's type graph.
type Type struct {
	Kind        string  `json:"kind"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Fields      []Field `json:"fields"`
}

// Field is a named field with its type reference.
type Field struct {
	Name string  `json:"name"`
	Type TypeRef `json:"type"`
}

// TypeRef is a possibly wrapped type reference (NON_NULL / LIST chains).
type TypeRef struct {
	Kind   string   `json:"kind"`
	Name   string   `json:"name"`
	OfType *TypeRef `json:"ofType"`
}

// String renders the reference in GraphQL notation: Name, Name!, [Name].
func (r TypeRef) String() string {
	switch r.Kind {
	case "NON_NULL":
		if r.OfType == nil {
			return "Unknown"
		}
		return r.OfType.String() + "!"
	case "LIST":
		if r.OfType == nil {
			return "Unknown"
		}
		return "[" + r.OfType.String() + "]"
	default:
		if r.Name == "" {
			return "Unknown"
		}
		return r.Name
	}
}

// summaryFieldLimit caps how many fields print per object type.
const summaryFieldLimit = 5

// WriteSummary renders a human-readable view of the schema: the query type,
// per-kind type counts, and every entity object type with a field preview.
// Internal __ types and the Query/Subscription roots are skipped in the
// entity listing.
func WriteSummary(w io.Writer, schema *Schema) {
	byKind := make(map[string][]Type)
	for _, t := range schema.Types {
		if strings.HasPrefix(t.Name, "__") {
			continue
		}
		byKind[t.Kind] = append(byKind[t.Kind], t)
	}

	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "SCHEMA SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", 60))

	if schema.QueryType != nil {
		fmt.Fprintf(w, "\nQuery Type: %s\n", schema.QueryType.Name)
	}

	kinds := make([]string, 0, len(byKind))
	for kind := range byKind {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	fmt.Fprintln(w, "\nType Counts:")
	for _, kind := range kinds {
		fmt.Fprintf(w, "  %s: %d\n", kind, len(byKind[kind]))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintln(w, "OBJECT TYPES (Entities)")
	fmt.Fprintln(w, strings.Repeat("-", 60))

	objects := byKind["OBJECT"]
	sort.Slice(objects, func(i, j int) bool { return objects[i].Name < objects[j].Name })

	for _, obj := range objects {
		if obj.Name == "Query" || obj.Name == "Subscription" {
			continue
		}

		fmt.Fprintf(w, "\n%s (%d fields)\n", obj.Name, len(obj.Fields))
		for i, field := range obj.Fields {
			if i == summaryFieldLimit {
				break
			}
			fmt.Fprintf(w, "  - %s: %s\n", field.Name, field.Type)
		}
		if len(obj.Fields) > summaryFieldLimit {
			fmt.Fprintf(w, "  ... and %d more fields\n", len(obj.Fields)-summaryFieldLimit)
		}
	}
}
