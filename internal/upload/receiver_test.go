package upload

import (
    "bytes"
    "errors"
    "mime/multipart"
    "net/http"
    "net/http/httptest"
    "os"
    "path/filepath"
    "testing"
    "time"
)

func multipartReq(t *testing.T, field, filename string, content []byte) *http.Request {
    t.Helper()
    var buf bytes.Buffer
    mw := multipart.NewWriter(&buf)
    fw, err := mw.CreateFormFile(field, filename)
    if err != nil {
        t.Fatal(err)
    }
    if _, err := fw.Write(content); err != nil {
        t.Fatal(err)
    }
    _ = mw.Close()
    req := httptest.NewRequest(http.MethodPost, "/", &buf)
    req.Header.Set("Content-Type", mw.FormDataContentType())
    return req
}

func TestReceiveStoresFile(t *testing.T) {
    dir := t.TempDir()
    rc, err := NewReceiver(dir, 1<<20)
    if err != nil {
        t.Fatal(err)
    }

    content := []byte("hello upload")
    f, err := rc.Receive(multipartReq(t, "image", "cat.png", content), "image")
    if err != nil {
        t.Fatalf("receive: %v", err)
    }
    defer f.Remove()

    if f.OriginalName != "cat.png" {
        t.Errorf("original name = %s", f.OriginalName)
    }
    if f.Size != int64(len(content)) {
        t.Errorf("size = %d", f.Size)
    }
    got, err := os.ReadFile(f.Path)
    if err != nil {
        t.Fatalf("stored file unreadable: %v", err)
    }
    if !bytes.Equal(got, content) {
        t.Error("stored content differs from upload")
    }
}

func TestReceiveUniquePathsForSameName(t *testing.T) {
    rc, err := NewReceiver(t.TempDir(), 1<<20)
    if err != nil {
        t.Fatal(err)
    }
    a, err := rc.Receive(multipartReq(t, "image", "same.jpg", []byte("a")), "image")
    if err != nil {
        t.Fatal(err)
    }
    defer a.Remove()
    b, err := rc.Receive(multipartReq(t, "image", "same.jpg", []byte("b")), "image")
    if err != nil {
        t.Fatal(err)
    }
    defer b.Remove()
    if a.Path == b.Path {
        t.Fatalf("concurrent uploads would collide on %s", a.Path)
    }
}

func TestReceiveMissingField(t *testing.T) {
    rc, err := NewReceiver(t.TempDir(), 1<<20)
    if err != nil {
        t.Fatal(err)
    }
    _, err = rc.Receive(multipartReq(t, "other", "x.png", []byte("x")), "image")
    if !errors.Is(err, ErrNoFile) {
        t.Fatalf("expected ErrNoFile, got %v", err)
    }
}

func TestRemoveIsIdempotent(t *testing.T) {
    rc, err := NewReceiver(t.TempDir(), 1<<20)
    if err != nil {
        t.Fatal(err)
    }
    f, err := rc.Receive(multipartReq(t, "image", "x.png", []byte("x")), "image")
    if err != nil {
        t.Fatal(err)
    }
    f.Remove()
    if _, err := os.Stat(f.Path); !os.IsNotExist(err) {
        t.Fatal("file still exists after Remove")
    }
    // second delete must not panic or error out
    f.Remove()
}

func TestSweepRemovesOnlyStaleFiles(t *testing.T) {
    dir := t.TempDir()
    stale := filepath.Join(dir, "stale.bin")
    fresh := filepath.Join(dir, "fresh.bin")
    if err := os.WriteFile(stale, []byte("old"), 0o644); err != nil {
        t.Fatal(err)
    }
    if err := os.WriteFile(fresh, []byte("new"), 0o644); err != nil {
        t.Fatal(err)
    }
    old := time.Now().Add(-2 * time.Hour)
    if err := os.Chtimes(stale, old, old); err != nil {
        t.Fatal(err)
    }

    Sweep(dir, time.Hour)

    if _, err := os.Stat(stale); !os.IsNotExist(err) {
        t.Error("stale file survived sweep")
    }
    if _, err := os.Stat(fresh); err != nil {
        t.Error("fresh file removed by sweep")
    }
}
