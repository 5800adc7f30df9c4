package cache

import (
    "testing"

    "github.com/local/genrelay/internal/ai"
)

func TestKeyIsStable(t *testing.T) {
    parts := []ai.Part{ai.TextPart("hello"), ai.DataPart("image/png", "AAAA")}
    if Key(parts) != Key(parts) {
        t.Fatal("key not deterministic")
    }
}

func TestKeyDistinguishesParts(t *testing.T) {
    a := Key([]ai.Part{ai.TextPart("ab"), ai.TextPart("c")})
    b := Key([]ai.Part{ai.TextPart("a"), ai.TextPart("bc")})
    if a == b {
        t.Fatal("part boundaries not part of the key")
    }
    if Key([]ai.Part{ai.TextPart("x")}) == Key([]ai.Part{ai.DataPart("x", "")}) {
        t.Fatal("text and data parts collide")
    }
}
