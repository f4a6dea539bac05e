// Package gemini wraps the Gemini generateContent REST endpoint for
// free-text food lookup and fueling-plan critique. Failures here never
// affect plan or settings state; callers surface them and carry on.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jeffreyruoss/run-fuel-calculator/internal/model"
	planpkg "github.com/jeffreyruoss/run-fuel-calculator/internal/plan"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-flash"

	// FallbackAnalysis is shown when the critique call fails.
	FallbackAnalysis = "Sorry, AI analysis is currently unavailable. Please check your API key."
)

type Client struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// LookupFood asks the model for the nutritional content of one standard
// serving of the query and returns it shaped as a fuel item.
func (c *Client) LookupFood(ctx context.Context, query string) (model.FuelItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return model.FuelItem{}, fmt.Errorf("lookup query is required")
	}
	prompt := fmt.Sprintf(`Identify the nutritional content for a standard serving of: %q.
Return a JSON object with a short "name", estimated "carbs" (grams), "type" (one of gel, chew, drink, solid, other), approximate "sodium" (mg), and approximate "potassium" (mg).`, query)

	text, err := c.generate(ctx, prompt, true)
	if err != nil {
		return model.FuelItem{}, err
	}

	var parsed struct {
		Name      string  `json:"name"`
		Carbs     float64 `json:"carbs"`
		Sodium    float64 `json:"sodium"`
		Potassium float64 `json:"potassium"`
		Type      string  `json:"type"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &parsed); err != nil {
		return model.FuelItem{}, fmt.Errorf("decode food lookup response: %w", err)
	}
	if strings.TrimSpace(parsed.Name) == "" || parsed.Carbs < 0 {
		return model.FuelItem{}, fmt.Errorf("food lookup returned no usable result")
	}
	return model.FuelItem{
		Name:        strings.TrimSpace(parsed.Name),
		Brand:       "Custom AI Search",
		CarbsG:      parsed.Carbs,
		SodiumMg:    max0(parsed.Sodium),
		PotassiumMg: max0(parsed.Potassium),
		Type:        model.ParseFuelType(strings.ToLower(strings.TrimSpace(parsed.Type))),
		Custom:      true,
	}, nil
}

// AnalyzePlan asks for a short narrative critique of the plan against
// the configured targets.
func (c *Client) AnalyzePlan(ctx context.Context, p model.Plan, settings model.UserSettings) (string, error) {
	var summary strings.Builder
	for _, h := range p {
		totals := planpkg.HourTotals(h)
		names := make([]string, 0, len(h.Items))
		for _, g := range planpkg.GroupItems(h) {
			label := g.Item.Name
			if g.Item.Brand != "" {
				label = g.Item.Brand + " " + label
			}
			if g.Count > 1 {
				label = fmt.Sprintf("%s x%d", label, g.Count)
			}
			names = append(names, fmt.Sprintf("%s (%.0fg carbs)", label, g.Item.CarbsG*float64(g.Count)))
		}
		itemList := strings.Join(names, ", ")
		if itemList == "" {
			itemList = "None"
		}
		fmt.Fprintf(&summary, "Hour %d: %.0fg total. Items: %s\n", h.HourIndex+1, totals.CarbsG, itemList)
	}

	prompt := fmt.Sprintf(`Act as an elite endurance nutrition coach. Analyze the following fueling plan.

Goal Time: %dh %dm
Target Carbs/Hour: %.0fg
Target Sodium/Hour: %.0fmg
Target Potassium/Hour: %.0fmg

Current Plan:
%s
Provide a concise, helpful critique.
1. Are they hitting the targets?
2. Is the mix of sources (drink vs gel vs solid) appropriate for late stages?
3. Give one specific actionable tip.

Keep it under 100 words. Use a motivating tone.`,
		settings.TargetTimeHours, settings.TargetTimeMinutes,
		settings.TargetCarbsPerHour, settings.TargetSodiumPerHour, settings.TargetPotassiumPerHour,
		summary.String())

	text, err := c.generate(ctx, prompt, false)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("empty analysis response")
	}
	return text, nil
}

type Suggestion struct {
	TargetCarbs float64 `json:"target"`
	Reason      string  `json:"reason"`
}

// SuggestCarbTarget asks for a recommended hourly carb target for the
// given goal time.
func (c *Client) SuggestCarbTarget(ctx context.Context, hours, minutes int) (Suggestion, error) {
	prompt := fmt.Sprintf(`I am racing for %d hours and %d minutes.
Suggest a target grams of carbohydrates per hour I should aim for.
Return JSON with "target" (number) and "reason" (short string).`, hours, minutes)

	text, err := c.generate(ctx, prompt, true)
	if err != nil {
		return Suggestion{}, err
	}
	var parsed Suggestion
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &parsed); err != nil {
		return Suggestion{}, fmt.Errorf("decode suggestion response: %w", err)
	}
	if parsed.TargetCarbs <= 0 {
		return Suggestion{}, fmt.Errorf("suggestion returned no usable target")
	}
	return parsed, nil
}

func (c *Client) generate(ctx context.Context, prompt string, jsonResponse bool) (string, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return "", fmt.Errorf("missing Gemini API key")
	}
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	modelName := strings.TrimSpace(c.Model)
	if modelName == "" {
		modelName = defaultModel
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if jsonResponse {
		reqBody.GenerationConfig = &generationConfig{ResponseMimeType: "application/json"}
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal Gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", base, modelName, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create Gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute Gemini request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read Gemini response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("Gemini request failed with status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode Gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in Gemini response")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// stripCodeFence removes a surrounding markdown fence the model
// sometimes wraps JSON output in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
