// Package operation contains the concrete side-effecting operations a task
// can perform, the uniform outcome envelope they produce, and the registry
// the dispatcher resolves (category, type) pairs against.
package operation

import (
	"context"
	"fmt"
	"time"
)

// Status of an operation outcome.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Key identifies one operation: the (category, type) pair of a task.
type Key struct {
	Category string
	Type     string
}

func (k Key) String() string {
	return k.Category + "." + k.Type
}

// The closed set of known operations.
var (
	KeySendEmail   = Key{"email", "send_email"}
	KeyCheckInbox  = Key{"email", "check_inbox"}
	KeyExcelToCSV  = Key{"file", "convert_excel_to_csv"}
	KeyRenameFiles = Key{"file", "rename_files"}
	KeyOrganize    = Key{"file", "organize_files"}
	KeyMergePDFs   = Key{"pdf", "merge_pdfs"}
	KeyExtractText = Key{"pdf", "extract_text"}
	KeyCreatePDF   = Key{"pdf", "create_pdf"}
)

// Outcome is the uniform result envelope every handler returns. Handlers
// translate their own I/O failures into an error outcome; they never panic
// through the registry boundary.
type Outcome struct {
	Status    Status
	Message   string
	Timestamp string
	Fields    map[string]any
}

// Envelope flattens the outcome into the map persisted as the task result.
func (o Outcome) Envelope() map[string]any {
	env := map[string]any{
		"status":    string(o.Status),
		"message":   o.Message,
		"timestamp": o.Timestamp,
	}
	for k, v := range o.Fields {
		env[k] = v
	}
	return env
}

// Success builds a success outcome stamped with the current time. Extra
// operation-specific fields may be nil.
func Success(message string, fields map[string]any) Outcome {
	return Outcome{
		Status:    StatusSuccess,
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
		Fields:    fields,
	}
}

// Errorf builds an error outcome stamped with the current time.
func Errorf(format string, args ...any) Outcome {
	return Outcome{
		Status:    StatusError,
		Message:   fmt.Sprintf(format, args...),
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// HandlerFunc executes one operation with parameters drawn from the task.
type HandlerFunc func(ctx context.Context, p Params) Outcome

// Registry maps operation keys to handlers. Populated once at startup.
type Registry struct {
	handlers map[Key]HandlerFunc
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[Key]HandlerFunc)}
}

func (r *Registry) Register(key Key, fn HandlerFunc) {
	r.handlers[key] = fn
}

func (r *Registry) Lookup(key Key) (HandlerFunc, bool) {
	fn, ok := r.handlers[key]
	return fn, ok
}

// Known reports whether the key belongs to the registered operation set.
func (r *Registry) Known(key Key) bool {
	_, ok := r.handlers[key]
	return ok
}
