// Package gemini answers questions over extracted sources with Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/deeptective/deeptective"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Asker implements deeptective.Asker at compile time.
var _ deeptective.Asker = (*Asker)(nil)

// Asker implements deeptective.Asker using Google Gemini.
type Asker struct {
	client *genai.Client
	model  string
}

// NewAsker creates a new Asker. An empty model selects DefaultModel.
func NewAsker(client *genai.Client, model string) *Asker {
	if model == "" {
		model = DefaultModel
	}
	return &Asker{client: client, model: model}
}

// Ask answers a question using only the formatted sources as evidence.
func (a *Asker) Ask(ctx context.Context, question string, sources []string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", deeptective.Errorf(deeptective.EINVALID, "question required")
	}
	if len(sources) == 0 {
		return "", deeptective.Errorf(deeptective.ENOTFOUND, "no sources found for question")
	}

	prompt := BuildUserPrompt(sources, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if result == nil {
		return "", deeptective.Errorf(deeptective.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an investigative research assistant. Answer using only the sources provided and cite the source URL for every claim. If the sources do not answer the question, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the sources and question.
func BuildUserPrompt(sources []string, question string) string {
	var sb strings.Builder
	sb.WriteString("<sources>\n")
	for i, source := range sources {
		fmt.Fprintf(&sb, "<source index=\"%d\">\n%s\n</source>\n", i+1, source)
	}
	sb.WriteString("</sources>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
