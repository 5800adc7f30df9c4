package ai

import (
    "context"
    "fmt"
)

// Part is one ordered unit of a generation request: plain text, or inline
// binary data tagged with a MIME type. Exactly one of Text / Data is set.
type Part struct {
    Text     string
    MIMEType string
    Data     string // base64 (std encoding)
}

// TextPart builds a plain text part.
func TextPart(s string) Part { return Part{Text: s} }

// DataPart builds an inline-data part from base64 content.
func DataPart(mimeType, b64 string) Part { return Part{MIMEType: mimeType, Data: b64} }

// IsData reports whether the part carries inline data.
func (p Part) IsData() bool { return p.MIMEType != "" }

// Client dispatches an ordered sequence of parts to a generation backend
// and returns the generated text. Parts are never reordered; assembling
// them correctly is the caller's job.
type Client interface {
    Name() string
    Generate(ctx context.Context, parts []Part) (string, error)
}

// InferenceError wraps any failure from the external generation call:
// network, auth, quota, malformed payload. Never retried.
type InferenceError struct {
    Provider string
    Err      error
}

func (e *InferenceError) Error() string {
    return fmt.Sprintf("%s inference failed: %v", e.Provider, e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }
