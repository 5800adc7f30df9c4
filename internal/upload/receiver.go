package upload

import (
    "errors"
    "fmt"
    "io"
    "net/http"
    "os"
    "path/filepath"

    "github.com/google/uuid"
    "github.com/rs/zerolog/log"
)

// ErrNoFile is returned when a file-requiring endpoint gets no file.
var ErrNoFile = errors.New("no file uploaded")

// File is a transient upload persisted to local disk. Ownership of deletion
// transfers to the handler immediately after receipt: every File written to
// disk must be removed exactly once, on all control-flow paths.
type File struct {
    Path         string
    MIMEType     string // Content-Type from the multipart header, may be empty
    OriginalName string
    Size         int64
}

// Remove deletes the stored file. Safe to call when the file is already
// gone, so deferred cleanup never fails a finished request.
func (f *File) Remove() {
    if f == nil || f.Path == "" {
        return
    }
    if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
        log.Warn().Err(err).Str("file", f.Path).Msg("failed to remove upload")
    }
}

// Receiver stores incoming multipart files in a transient directory.
type Receiver struct {
    dir      string
    maxBytes int64
}

// NewReceiver creates the upload directory if needed.
func NewReceiver(dir string, maxBytes int64) (*Receiver, error) {
    if dir == "" { dir = "uploads" }
    if err := os.MkdirAll(dir, 0o755); err != nil {
        return nil, fmt.Errorf("create upload dir: %w", err)
    }
    if maxBytes <= 0 { maxBytes = 32 << 20 }
    return &Receiver{dir: dir, maxBytes: maxBytes}, nil
}

// Receive takes the single named file field from a multipart request and
// persists it under a uuid-prefixed name so concurrent uploads never
// collide. Returns ErrNoFile when the field is absent.
func (rc *Receiver) Receive(r *http.Request, field string) (*File, error) {
    r.Body = http.MaxBytesReader(nil, r.Body, rc.maxBytes)
    if err := r.ParseMultipartForm(rc.maxBytes); err != nil {
        return nil, ErrNoFile
    }
    src, hdr, err := r.FormFile(field)
    if err != nil {
        return nil, ErrNoFile
    }
    defer src.Close()

    name := filepath.Base(hdr.Filename)
    if name == "" || name == "." { name = "upload" }
    localPath := filepath.Join(rc.dir, uuid.NewString()+"_"+name)

    out, err := os.Create(localPath)
    if err != nil {
        return nil, fmt.Errorf("save upload: %w", err)
    }
    n, err := io.Copy(out, src)
    if cerr := out.Close(); err == nil { err = cerr }
    if err != nil {
        _ = os.Remove(localPath)
        return nil, fmt.Errorf("write upload: %w", err)
    }

    f := &File{
        Path:         localPath,
        MIMEType:     hdr.Header.Get("Content-Type"),
        OriginalName: hdr.Filename,
        Size:         n,
    }
    log.Debug().Str("file", f.Path).Str("mime", f.MIMEType).Int64("bytes", n).Msg("upload stored")
    return f, nil
}
