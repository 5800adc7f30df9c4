package server

import (
    "context"
    "encoding/json"
    "net/http"
    "strings"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/rs/zerolog/log"

    "github.com/local/genrelay/internal/ai"
    "github.com/local/genrelay/internal/cache"
    "github.com/local/genrelay/internal/mediatype"
    "github.com/local/genrelay/internal/metrics"
    "github.com/local/genrelay/internal/payload"
    "github.com/local/genrelay/internal/upload"
)

// Fixed instruction texts for the file endpoints. An absent image prompt is
// substituted; the document instruction is not configurable per request.
const (
    defaultImagePrompt  = "Describe the image"
    documentInstruction = "Analyze this document:"
)

// ResponseCache is the optional read-through cache for generation results.
type ResponseCache interface {
    Get(ctx context.Context, key string) (string, bool, error)
    Set(ctx context.Context, key, output string) error
}

// Dependencies wires the server to its collaborators.
type Dependencies struct {
    Model   ai.Client
    Uploads *upload.Receiver
    Cache   ResponseCache // nil disables caching
}

// Server orchestrates receive -> encode -> dispatch -> respond for the
// three generation endpoints.
type Server struct {
    deps Dependencies
}

func New(deps Dependencies) *Server {
    return &Server{deps: deps}
}

func (s *Server) RegisterRoutes(r chi.Router) {
    r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
        w.WriteHeader(http.StatusOK)
        _, _ = w.Write([]byte("ok"))
    })
    r.Post("/generate-text", s.handleGenerateText)
    r.Post("/generate-from-image", s.handleGenerateFromImage)
    r.Post("/generate-from-document", s.handleGenerateFromDocument)
}

type textReq struct {
    Prompt string `json:"prompt"`
}

func (s *Server) handleGenerateText(w http.ResponseWriter, r *http.Request) {
    defer r.Body.Close()
    var req textReq
    // an empty or malformed body leaves the prompt blank and is rejected below
    _ = json.NewDecoder(r.Body).Decode(&req)
    if strings.TrimSpace(req.Prompt) == "" {
        writeError(w, "generate-text", validationf("Prompt is required and must be a non-empty string"))
        return
    }

    s.dispatch(w, r, "generate-text", []ai.Part{ai.TextPart(req.Prompt)})
}

func (s *Server) handleGenerateFromImage(w http.ResponseWriter, r *http.Request) {
    f, err := s.deps.Uploads.Receive(r, "image")
    if err != nil {
        writeError(w, "generate-from-image", err)
        return
    }
    defer f.Remove()
    metrics.AddUploadBytes("generate-from-image", f.Size)

    prompt := r.FormValue("prompt")
    if strings.TrimSpace(prompt) == "" {
        prompt = defaultImagePrompt
    }

    mt := s.imageMIME(f)
    pl, err := payload.Encode(f.Path, mt)
    if err != nil {
        writeError(w, "generate-from-image", err)
        return
    }

    s.dispatch(w, r, "generate-from-image", []ai.Part{
        ai.TextPart(prompt),
        ai.DataPart(pl.MIMEType, pl.Data),
    })
}

func (s *Server) handleGenerateFromDocument(w http.ResponseWriter, r *http.Request) {
    f, err := s.deps.Uploads.Receive(r, "document")
    if err != nil {
        writeError(w, "generate-from-document", err)
        return
    }
    defer f.Remove()
    metrics.AddUploadBytes("generate-from-document", f.Size)

    // The document is opaque binary: the upload's reported type is used
    // directly, content sniffing only fills in a missing header. No
    // extension-based guessing here.
    mt := f.MIMEType
    if mt == "" {
        if sniffed, serr := mediatype.Sniff(f.Path); serr == nil {
            mt = sniffed
        } else {
            mt = "application/octet-stream"
        }
    }

    pl, err := payload.Encode(f.Path, mt)
    if err != nil {
        writeError(w, "generate-from-document", err)
        return
    }

    s.dispatch(w, r, "generate-from-document", []ai.Part{
        ai.TextPart(documentInstruction),
        ai.DataPart(pl.MIMEType, pl.Data),
    })
}

// imageMIME resolves the type for an image upload: the declared part header
// wins, a missing or generic header falls back to content sniffing, and the
// extension map (with its jpeg default) decides last.
func (s *Server) imageMIME(f *upload.File) string {
    declared := f.MIMEType
    if declared == "" || declared == "application/octet-stream" {
        declared = ""
        if sniffed, err := mediatype.Sniff(f.Path); err == nil && sniffed != "application/octet-stream" {
            declared = sniffed
        }
    }
    return mediatype.Resolve(f.OriginalName, declared)
}

// dispatch invokes the model with the assembled parts, in order, and writes
// the HTTP response. Consults the response cache when one is configured.
func (s *Server) dispatch(w http.ResponseWriter, r *http.Request, endpoint string, parts []ai.Part) {
    ctx := r.Context()

    var key string
    if s.deps.Cache != nil {
        key = cache.Key(parts)
        if out, ok, err := s.deps.Cache.Get(ctx, key); err == nil && ok {
            metrics.CacheHit()
            metrics.IncRequest(endpoint, "success")
            writeJSON(w, http.StatusOK, outputResp{Output: out})
            return
        }
        metrics.CacheMiss()
    }

    start := time.Now()
    out, err := s.deps.Model.Generate(ctx, parts)
    if err != nil {
        metrics.ObserveModel(s.deps.Model.Name(), "error", time.Since(start))
        writeError(w, endpoint, err)
        return
    }
    metrics.ObserveModel(s.deps.Model.Name(), "success", time.Since(start))

    if s.deps.Cache != nil {
        if cerr := s.deps.Cache.Set(ctx, key, out); cerr != nil {
            log.Warn().Err(cerr).Msg("cache set failed")
        }
    }

    metrics.IncRequest(endpoint, "success")
    writeJSON(w, http.StatusOK, outputResp{Output: out})
}
