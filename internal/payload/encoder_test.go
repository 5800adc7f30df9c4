package payload

import (
    "bytes"
    "encoding/base64"
    "os"
    "path/filepath"
    "testing"
)

func TestEncodeRoundTrip(t *testing.T) {
    raw := []byte{0x00, 0x01, 0xfe, 0xff, 'g', 'o'}
    path := filepath.Join(t.TempDir(), "blob.bin")
    if err := os.WriteFile(path, raw, 0o644); err != nil {
        t.Fatal(err)
    }

    pl, err := Encode(path, "application/octet-stream")
    if err != nil {
        t.Fatalf("encode: %v", err)
    }
    if pl.MIMEType != "application/octet-stream" {
        t.Fatalf("mime type = %s", pl.MIMEType)
    }

    decoded, err := base64.StdEncoding.DecodeString(pl.Data)
    if err != nil {
        t.Fatalf("payload is not valid base64: %v", err)
    }
    if !bytes.Equal(decoded, raw) {
        t.Fatalf("round trip mismatch: got %v want %v", decoded, raw)
    }
}

func TestEncodeMissingFile(t *testing.T) {
    _, err := Encode(filepath.Join(t.TempDir(), "nope.bin"), "image/png")
    if err == nil {
        t.Fatal("expected error for missing file")
    }
}
