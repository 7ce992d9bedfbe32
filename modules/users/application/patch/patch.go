// Package patch implements a small interpreter for document-patch
// operations over the replace-shaped user value. The schema is closed:
// only the firstName and lastName fields are addressable, so there is
// no generic path-addressed document model.
package patch

import (
	"fmt"
	"strings"

	"github.com/mzukov/web-api/modules/shared/types"
)

// Operation kinds understood by the interpreter.
const (
	OpAdd     = "add"
	OpRemove  = "remove"
	OpReplace = "replace"
	OpMove    = "move"
	OpCopy    = "copy"
	OpTest    = "test"
)

// Operation is one step of a patch document.
type Operation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	From  string `json:"from,omitempty"`
	Value any    `json:"value,omitempty"`
}

// Addressable fields.
const (
	fieldFirstName = "firstName"
	fieldLastName  = "lastName"
)

// Document is a mutable, patchable projection of a replace request.
// A field may be absent, which is distinct from being empty.
type Document struct {
	fields map[string]string
}

// NewDocument builds a document with both fields present.
func NewDocument(firstName, lastName string) *Document {
	return &Document{fields: map[string]string{
		fieldFirstName: firstName,
		fieldLastName:  lastName,
	}}
}

// FirstName returns the field value and whether the field is present.
func (d *Document) FirstName() (string, bool) {
	v, ok := d.fields[fieldFirstName]
	return v, ok
}

// LastName returns the field value and whether the field is present.
func (d *Document) LastName() (string, bool) {
	v, ok := d.fields[fieldLastName]
	return v, ok
}

// Apply executes ops in order against doc. The first failing operation
// records a field error and halts further processing; operations
// already applied remain applied to doc. The caller must validate the
// final shape before committing anything, so a halted patch never
// becomes visible.
func Apply(ops []Operation, doc *Document, errs types.FieldErrors) {
	for _, op := range ops {
		if !applyOne(op, doc, errs) {
			return
		}
	}
}

func applyOne(op Operation, doc *Document, errs types.FieldErrors) bool {
	field, ok := fieldForPath(op.Path)
	if !ok {
		errs.Add(errorKey(op.Path), fmt.Sprintf("path %q is not patchable", op.Path))
		return false
	}

	switch op.Op {
	case OpAdd:
		value, ok := stringValue(op, field, errs)
		if !ok {
			return false
		}
		doc.fields[field] = value

	case OpReplace:
		if _, present := doc.fields[field]; !present {
			errs.Add(field, "cannot replace a field that is not set")
			return false
		}
		value, ok := stringValue(op, field, errs)
		if !ok {
			return false
		}
		doc.fields[field] = value

	case OpRemove:
		if _, present := doc.fields[field]; !present {
			errs.Add(field, "cannot remove a field that is not set")
			return false
		}
		delete(doc.fields, field)

	case OpMove, OpCopy:
		from, ok := fieldForPath(op.From)
		if !ok {
			errs.Add(errorKey(op.From), fmt.Sprintf("from path %q is not patchable", op.From))
			return false
		}
		value, present := doc.fields[from]
		if !present {
			errs.Add(from, fmt.Sprintf("cannot %s from a field that is not set", op.Op))
			return false
		}
		doc.fields[field] = value
		if op.Op == OpMove {
			delete(doc.fields, from)
		}

	case OpTest:
		want, ok := stringValue(op, field, errs)
		if !ok {
			return false
		}
		got, present := doc.fields[field]
		if !present || got != want {
			errs.Add(field, "test operation failed")
			return false
		}

	default:
		errs.Add(field, fmt.Sprintf("unsupported operation %q", op.Op))
		return false
	}

	return true
}

func fieldForPath(path string) (string, bool) {
	switch path {
	case "/" + fieldFirstName:
		return fieldFirstName, true
	case "/" + fieldLastName:
		return fieldLastName, true
	}
	return "", false
}

func stringValue(op Operation, field string, errs types.FieldErrors) (string, bool) {
	s, ok := op.Value.(string)
	if !ok {
		errs.Add(field, fmt.Sprintf("%q operation requires a string value", op.Op))
		return "", false
	}
	return s, true
}

func errorKey(path string) string {
	key := strings.TrimPrefix(path, "/")
	if key == "" {
		return "path"
	}
	return key
}
