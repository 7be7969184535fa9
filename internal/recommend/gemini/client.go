package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	catalogdomain "github.com/bookhaven/storefront/internal/catalog/domain"
	"github.com/bookhaven/storefront/internal/recommend/domain"
)

// DefaultModel matches the storefront's recommendation model
const DefaultModel = "gemini-2.5-flash"

// Client asks Gemini for book recommendations using structured output.
type Client struct {
	apiKey string
	model  string
}

// New returns a Gemini recommendation client
func New(apiKey, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{apiKey: apiKey, model: model}
}

// responseSchema is the fixed shape every returned record must conform to
func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":       {Type: genai.TypeString},
				"author":      {Type: genai.TypeString},
				"price":       {Type: genai.TypeNumber},
				"description": {Type: genai.TypeString},
				"category":    {Type: genai.TypeString},
				"rating":      {Type: genai.TypeNumber},
			},
			Required: []string{"title", "author", "price", "description", "category", "rating"},
		},
	}
}

// Recommend issues one structured-output request and validates the reply.
// Errors are returned to the caller; the fail-soft policy lives in the
// usecase layer, not here.
func (c *Client) Recommend(ctx context.Context, query string, _ []catalogdomain.Book) ([]domain.BookDraft, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(c.model)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = responseSchema()

	prompt := fmt.Sprintf(`User is looking for books matching this description: %q.
Recommend 4-6 distinct, real or realistic books that match this query.
They must have a title, author, description, category, and an estimated price.
Ensure the response is a valid JSON array matching the schema.`, query)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates returned from Gemini")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return nil, fmt.Errorf("empty content returned from Gemini")
	}

	txt, ok := candidate.Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("unexpected response format from Gemini")
	}

	return domain.DecodeDrafts([]byte(txt))
}
