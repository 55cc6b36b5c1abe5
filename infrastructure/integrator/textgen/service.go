package textgen

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ad-pilot-api/internal/config"
	"github.com/vfg2006/ad-pilot-api/pkg/log"
	"google.golang.org/genai"
)

// Generator turns an analysis prompt into a structured recommendation
// payload. The payload returned is decoded but NOT validated; callers run
// Validate and decide the retry policy.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*RecommendationPayload, error)
}

type service struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewService(ctx context.Context, cfg *config.Config) (Generator, error) {
	if cfg.TextGen.APIKey == "" {
		return nil, fmt.Errorf("textgen API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.TextGen.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &service{
		client:  client,
		model:   cfg.TextGen.Model,
		timeout: time.Duration(cfg.TextGen.TimeoutSeconds) * time.Second,
	}, nil
}

func (s *service) Generate(ctx context.Context, prompt string) (*RecommendationPayload, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()

	result, err := s.client.Models.GenerateContent(ctx,
		s.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   recommendationSchema(),
		},
	)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Text generation request failed")
		return nil, fmt.Errorf("failed to generate recommendation text: %w", err)
	}

	text := result.Text()
	if text == "" {
		return nil, fmt.Errorf("text generation returned an empty response")
	}

	payload := &RecommendationPayload{}
	if err := jsoniter.UnmarshalFromString(text, payload); err != nil {
		return nil, fmt.Errorf("failed to decode generated payload: %w", err)
	}

	log.ForContext(ctx).
		WithField("model", s.model).
		WithField("duration_ms", time.Since(started).Milliseconds()).
		WithField("actions", len(payload.ProposedActions)).
		Debug("Recommendation payload generated")

	return payload, nil
}

// recommendationSchema constrains the model output server-side. Enum and
// required checks still run again locally in Validate; the schema only
// reduces how often the model strays.
func recommendationSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {Type: genai.TypeString},
			"mode_recommendation": {
				Type: genai.TypeString,
				Enum: []string{"GROWTH", "EFFICIENCY", "RECOVERY", "LIQUIDATION", "HOLD"},
			},
			"diagnostics": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"metric":   {Type: genai.TypeString},
						"finding":  {Type: genai.TypeString},
						"evidence": {Type: genai.TypeString},
					},
					Required: []string{"metric", "finding"},
				},
			},
			"proposed_actions": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"channel": {
							Type: genai.TypeString,
							Enum: []string{"META", "GOOGLE", "SHOPIFY", "OPS"},
						},
						"type": {
							Type: genai.TypeString,
							Enum: []string{"UPDATE_BUDGET", "PAUSE_ENTITY", "CREATE_TASK", "DUPLICATE_ADSET"},
						},
						"entity": {
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"level": {
									Type: genai.TypeString,
									Enum: []string{"campaign", "adset", "ad", "adgroup"},
								},
								"id":   {Type: genai.TypeString},
								"name": {Type: genai.TypeString},
							},
							Required: []string{"level", "id"},
						},
						"rationale":         {Type: genai.TypeString},
						"expected_impact":   {Type: genai.TypeString},
						"budget_change_pct": {Type: genai.TypeNumber},
					},
					Required: []string{"channel", "type", "entity", "rationale"},
				},
			},
			"creative_briefs": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"entity_id":      {Type: genai.TypeString},
						"entity_name":    {Type: genai.TypeString},
						"angle":          {Type: genai.TypeString},
						"hook":           {Type: genai.TypeString},
						"call_to_action": {Type: genai.TypeString},
					},
					Required: []string{"entity_id", "angle", "hook", "call_to_action"},
				},
			},
		},
		Required: []string{"summary", "mode_recommendation", "proposed_actions"},
	}
}
