package mediatype

import "testing"

func TestResolveDeclaredWins(t *testing.T) {
    got := Resolve("photo.png", "image/webp")
    if got != "image/webp" {
        t.Fatalf("declared type not returned unchanged: %s", got)
    }
}

func TestResolveByExtension(t *testing.T) {
    cases := map[string]string{
        "a.jpg":      "image/jpeg",
        "a.jpeg":     "image/jpeg",
        "a.png":      "image/png",
        "a.gif":      "image/gif",
        "a.webp":     "image/webp",
        "photo.WEBP": "image/webp",
        "b.PNG":      "image/png",
    }
    for path, want := range cases {
        if got := Resolve(path, ""); got != want {
            t.Errorf("Resolve(%q) = %q, want %q", path, got, want)
        }
    }
}

func TestResolveUnknownFallsBackToJPEG(t *testing.T) {
    if got := Resolve("file.xyz", ""); got != DefaultImage {
        t.Fatalf("unknown extension resolved to %s, want %s", got, DefaultImage)
    }
    if got := Resolve("noextension", ""); got != DefaultImage {
        t.Fatalf("missing extension resolved to %s, want %s", got, DefaultImage)
    }
}
