// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/khazna-app/backend/internal/application/adapter"
)

// GeminiService implements the SummaryService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Summarize produces a short Arabic narrative of the treasury snapshot.
func (s *GeminiService) Summarize(ctx context.Context, snapshot adapter.FinancialSnapshot) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.4)

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(snapshot)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}
	return text, nil
}

// buildPrompt creates the summarization prompt.
func (s *GeminiService) buildPrompt(snapshot adapter.FinancialSnapshot) string {
	var sb strings.Builder

	sb.WriteString("أنت مساعد مالي لجمعية خيرية. لخص الوضع المالي التالي في فقرة قصيرة باللغة العربية، ")
	sb.WriteString("مع الإشارة إلى الرصيد الحالي ونسبة المصروفات إلى الإيرادات وأي ملاحظة مهمة.\n\n")
	sb.WriteString(fmt.Sprintf("إجمالي الإيرادات: %s دولار\n", snapshot.TotalRevenue))
	sb.WriteString(fmt.Sprintf("إجمالي المصروفات: %s دولار\n", snapshot.TotalExpense))
	sb.WriteString(fmt.Sprintf("الرصيد: %s دولار\n", snapshot.Balance))
	sb.WriteString(fmt.Sprintf("سعر صرف الدولار: %s جنيه\n", snapshot.USDToEGPRate))
	sb.WriteString(fmt.Sprintf("عدد المعاملات: %d\n", snapshot.TransactionCount))

	return sb.String()
}

// extractText pulls the plain-text parts out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	result := strings.TrimSpace(sb.String())
	if result == "" {
		return "", fmt.Errorf("no text content in gemini response")
	}
	return result, nil
}
