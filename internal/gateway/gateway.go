package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/amorgan/brandhub/internal/models"
	"github.com/amorgan/brandhub/internal/types"
	"golang.org/x/sync/errgroup"
)

// ContentRequest is a content brief submitted by the dashboard.
type ContentRequest struct {
	Prompt   string `json:"prompt"`
	Tone     string `json:"tone"`
	Length   string `json:"length"`
	Type     string `json:"type"`
	Platform string `json:"platform"`
}

// ContentResult is the generate response. Title and Hashtags are only filled
// by the stub; the provider path returns the completion verbatim.
type ContentResult struct {
	Content  string   `json:"content"`
	Platform string   `json:"platform"`
	Title    string   `json:"title,omitempty"`
	Hashtags []string `json:"hashtags,omitempty"`
}

// Pillar is a named thematic category with an icon and a percentage weight.
type Pillar struct {
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	Percentage int    `json:"percentage"`
}

// VoiceAnalysis holds the four 0-100 voice sliders and suggested pillars.
type VoiceAnalysis struct {
	FormalToCasual          int      `json:"formalToCasual"`
	TechnicalToAccessible   int      `json:"technicalToAccessible"`
	ReservedToEnthusiastic  int      `json:"reservedToEnthusiastic"`
	TraditionalToInnovative int      `json:"traditionalToInnovative"`
	SuggestedPillars        []Pillar `json:"suggestedPillars"`
}

// RepurposedContent is one adapted post for one target platform.
type RepurposedContent struct {
	Platform string `json:"platform"`
	Content  string `json:"content"`
}

var tones = map[string]bool{
	"professional": true,
	"casual":       true,
	"inspiring":    true,
}

var postTypes = map[string]bool{
	"educational": true,
	"story":       true,
}

// lengthMap translates the length enum into the natural-language target
// handed to the provider.
var lengthMap = map[string]string{
	"short":  "short (around 100-150 words)",
	"medium": "medium length (around 200-300 words)",
	"long":   "detailed (around 400-600 words)",
}

// Gateway shapes content briefs into provider prompts and normalizes the
// results. With stub set it serves the deterministic fallbacks instead of
// calling out.
type Gateway struct {
	provider Provider
	stub     bool
}

// New creates a gateway over the given provider. A true stub disables
// provider calls entirely; provider may then be nil.
func New(provider Provider, stub bool) *Gateway {
	return &Gateway{provider: provider, stub: stub}
}

// Generate produces one post from a content brief. The response echoes the
// requested platform.
func (g *Gateway) Generate(ctx context.Context, req ContentRequest) (*ContentResult, error) {
	if req.Prompt == "" || req.Tone == "" || req.Length == "" || req.Type == "" || req.Platform == "" {
		return nil, types.NewValidationError("Missing required fields")
	}
	if !tones[req.Tone] {
		return nil, types.NewValidationError(fmt.Sprintf("Unknown tone: %s", req.Tone))
	}
	if _, ok := lengthMap[req.Length]; !ok {
		return nil, types.NewValidationError(fmt.Sprintf("Unknown length: %s", req.Length))
	}
	if !postTypes[req.Type] {
		return nil, types.NewValidationError(fmt.Sprintf("Unknown post type: %s", req.Type))
	}
	if !models.ValidPlatformType(req.Platform) {
		return nil, types.NewValidationError(fmt.Sprintf("Unknown platform: %s", req.Platform))
	}

	if g.stub {
		result := FallbackContent(req.Platform, req.Type)
		return &result, nil
	}

	system := fmt.Sprintf(`You are a professional content creator specializing in %s content.
Create a %s tone, %s %s post for %s.
The content should be well-formatted for the platform, including appropriate formatting, emoji usage, and hashtags if relevant.
Respond with ONLY the content, no explanations or additional commentary.`,
		req.Platform, req.Tone, lengthMap[req.Length], req.Type, req.Platform)

	content, err := g.provider.Complete(ctx, CompletionRequest{System: system, User: req.Prompt})
	if err != nil {
		log.Printf("Error generating content: %v", err)
		return nil, types.NewGenerationError("Failed to generate content")
	}

	return &ContentResult{Content: content, Platform: req.Platform}, nil
}

// AnalyzeVoice derives brand-voice sliders and content pillars from at least
// two writing samples.
func (g *Gateway) AnalyzeVoice(ctx context.Context, samples []string) (*VoiceAnalysis, error) {
	if len(samples) < 2 {
		return nil, types.NewValidationError("Please provide at least 2 content samples")
	}

	if g.stub {
		analysis := FallbackVoiceAnalysis(samples)
		return &analysis, nil
	}

	system := `Analyze the following content samples to determine the brand voice characteristics and content pillars.
Return the analysis as a JSON object with the following fields:
- formalToCasual: number from 0-100 (0 = very formal, 100 = very casual)
- technicalToAccessible: number from 0-100 (0 = very technical, 100 = very accessible)
- reservedToEnthusiastic: number from 0-100 (0 = very reserved, 100 = very enthusiastic)
- traditionalToInnovative: number from 0-100 (0 = very traditional, 100 = very innovative)
- suggestedPillars: array of objects with name, icon (one of: lightbulb, book, user, message), and percentage`

	raw, err := g.provider.Complete(ctx, CompletionRequest{
		System:   system,
		User:     strings.Join(samples, "\n\n---\n\n"),
		JSONMode: true,
	})
	if err != nil {
		log.Printf("Error analyzing brand voice: %v", err)
		return nil, types.NewGenerationError("Failed to analyze brand voice")
	}

	var analysis VoiceAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		log.Printf("Error parsing brand voice analysis: %v", err)
		return nil, types.NewGenerationError("Failed to analyze brand voice")
	}
	if len(analysis.SuggestedPillars) == 0 {
		return nil, types.NewGenerationError("Failed to analyze brand voice")
	}

	return &analysis, nil
}

// Repurpose adapts originalContent for each target platform. One completion
// is issued per platform, concurrently; results come back in targetPlatforms
// order and any single failure aborts the whole call with no partial list.
func (g *Gateway) Repurpose(ctx context.Context, originalContent string, targetPlatforms []string) ([]RepurposedContent, error) {
	if originalContent == "" || len(targetPlatforms) == 0 {
		return nil, types.NewValidationError("Missing required fields")
	}
	for _, platform := range targetPlatforms {
		if !models.ValidPlatformType(platform) {
			return nil, types.NewValidationError(fmt.Sprintf("Unknown platform: %s", platform))
		}
	}

	if g.stub {
		return FallbackRepurpose(targetPlatforms), nil
	}

	results := make([]RepurposedContent, len(targetPlatforms))
	eg, ctx := errgroup.WithContext(ctx)
	for i, platform := range targetPlatforms {
		eg.Go(func() error {
			system := fmt.Sprintf(`You are a professional content repurposing expert.
Take the original content and repurpose it specifically for %s.
Adapt the style, format, and length to be optimized for %s.
Return ONLY the repurposed content.`, platform, platform)

			content, err := g.provider.Complete(ctx, CompletionRequest{System: system, User: originalContent})
			if err != nil {
				return err
			}
			results[i] = RepurposedContent{Platform: platform, Content: content}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Printf("Error repurposing content: %v", err)
		return nil, types.NewGenerationError("Failed to repurpose content")
	}

	return results, nil
}
