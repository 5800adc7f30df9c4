package mediatype

import (
    "path/filepath"
    "strings"

    "github.com/gabriel-vasile/mimetype"
    "github.com/rs/zerolog/log"
)

// imageByExt maps recognized image extensions to their MIME type.
var imageByExt = map[string]string{
    ".jpg":  "image/jpeg",
    ".jpeg": "image/jpeg",
    ".png":  "image/png",
    ".gif":  "image/gif",
    ".webp": "image/webp",
}

// DefaultImage is the fallback type for files with an unrecognized extension.
const DefaultImage = "image/jpeg"

// Resolve returns the MIME type for a file. A non-empty declared type wins
// unchanged. Otherwise the file extension decides, case-insensitive. Unknown
// extensions fall back to image/jpeg; the caller must tolerate a wrong
// classification for exotic types.
func Resolve(path, declared string) string {
    if declared != "" {
        return declared
    }
    ext := strings.ToLower(filepath.Ext(path))
    if mt, ok := imageByExt[ext]; ok {
        return mt
    }
    log.Warn().Str("file", path).Str("ext", ext).Str("fallback", DefaultImage).
        Msg("unrecognized extension, defaulting MIME type")
    return DefaultImage
}

// Sniff detects the MIME type from file content using magic bytes. Used when
// an upload arrives without a Content-Type header; it never overrides a
// declared type.
func Sniff(path string) (string, error) {
    mtype, err := mimetype.DetectFile(path)
    if err != nil {
        return "", err
    }
    log.Debug().Str("mime", mtype.String()).Str("file", path).Msg("sniffed file type")
    return mtype.String(), nil
}
