package payload

import (
    "encoding/base64"
    "fmt"
    "os"
)

// Payload is a model-ready inline-data descriptor: base64 content plus a
// MIME type tag. Immutable once constructed, never persisted beyond the
// request lifecycle.
type Payload struct {
    MIMEType string
    Data     string // base64 (std encoding)
}

// Encode reads the whole file into memory and base64-encodes it. No
// streaming and no size cap: usable file size is bounded by available
// memory, the upload layer enforces the actual request limit.
func Encode(path, mimeType string) (Payload, error) {
    b, err := os.ReadFile(path)
    if err != nil {
        return Payload{}, fmt.Errorf("read payload file: %w", err)
    }
    return Payload{
        MIMEType: mimeType,
        Data:     base64.StdEncoding.EncodeToString(b),
    }, nil
}
