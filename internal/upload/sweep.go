package upload

import (
    "os"
    "path/filepath"
    "time"
)

// Sweep removes uploads older than maxAge from dir. Handlers delete their
// own files; this catches leftovers from crashed requests.
func Sweep(dir string, maxAge time.Duration) {
    now := time.Now()
    _ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
        if err != nil || info == nil || info.IsDir() { return nil }
        if now.Sub(info.ModTime()) >= maxAge {
            _ = os.Remove(path)
        }
        return nil
    })
}
