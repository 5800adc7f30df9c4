package ai

import (
    "context"
    "encoding/base64"
    "errors"
    "fmt"
    "strings"

    genai "github.com/google/generative-ai-go/genai"
    "google.golang.org/api/option"
)

// GeminiClient is the single shared, read-only handle to the Google
// generative model. Constructed once at startup and injected into the
// server; handlers never touch the SDK directly.
type GeminiClient struct {
    client *genai.Client
    model  string
}

// NewGeminiClient initializes the SDK client with the configured credential.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
    if apiKey == "" {
        return nil, errors.New("missing GEMINI_API_KEY or GOOGLE_API_KEY")
    }
    client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
    if err != nil {
        return nil, fmt.Errorf("gemini init: %w", err)
    }
    return &GeminiClient{client: client, model: model}, nil
}

func (g *GeminiClient) Name() string { return "gemini" }

// Close releases the underlying SDK client.
func (g *GeminiClient) Close() error { return g.client.Close() }

// Generate sends the parts in order and returns the model text unmodified.
func (g *GeminiClient) Generate(ctx context.Context, parts []Part) (string, error) {
    sdkParts, err := toSDKParts(parts)
    if err != nil {
        return "", &InferenceError{Provider: g.Name(), Err: err}
    }

    model := g.client.GenerativeModel(g.model)
    resp, err := model.GenerateContent(ctx, sdkParts...)
    if err != nil {
        return "", &InferenceError{Provider: g.Name(), Err: err}
    }
    if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
        return "", &InferenceError{Provider: g.Name(), Err: errors.New("empty response")}
    }

    var sb strings.Builder
    for _, p := range resp.Candidates[0].Content.Parts {
        if t, ok := p.(genai.Text); ok {
            sb.WriteString(string(t))
        }
    }
    return sb.String(), nil
}

// toSDKParts maps parts one-to-one, preserving order. Inline data is
// base64-decoded for the SDK, which re-encodes on the wire.
func toSDKParts(parts []Part) ([]genai.Part, error) {
    out := make([]genai.Part, 0, len(parts))
    for _, p := range parts {
        if p.IsData() {
            raw, err := base64.StdEncoding.DecodeString(p.Data)
            if err != nil {
                return nil, fmt.Errorf("decode inline data: %w", err)
            }
            out = append(out, genai.Blob{MIMEType: p.MIMEType, Data: raw})
            continue
        }
        out = append(out, genai.Text(p.Text))
    }
    return out, nil
}
