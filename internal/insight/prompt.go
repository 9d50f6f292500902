package insight

import (
	"encoding/json"
	"fmt"

	"github.com/Veraticus/pennywise/internal/model"
)

// reducedTransaction is the per-record view sent to the provider: enough to
// analyze spending, nothing more.
type reducedTransaction struct {
	Date     string                `json:"date"`
	Type     model.TransactionType `json:"type"`
	Amount   float64               `json:"amount"`
	Category model.Category        `json:"category"`
	Desc     string                `json:"desc"`
}

// languageName maps a stored locale tag to the language the advisor must
// answer in.
func languageName(tag string) string {
	if tag == "zh" {
		return "Chinese"
	}
	return "English"
}

// systemPrompt instructs the model on its role, answer language, and the
// exact JSON shape it must return.
func systemPrompt(language string) string {
	return fmt.Sprintf("You are a world-class financial advisor. "+
		"Analyze the user's spending habits in CNY (Yuan), suggest ways to save money, "+
		"and provide a brief analysis of their financial health. "+
		"You MUST return the response in %s language. "+
		"Return ONLY a JSON object with exactly these fields: "+
		`"analysis" (string), "suggestions" (array of strings), "savingTips" (string).`,
		languageName(language))
}

// userPrompt serializes the reduced transaction list into the request text.
func userPrompt(txns []model.Transaction) (string, error) {
	reduced := make([]reducedTransaction, 0, len(txns))
	for _, txn := range txns {
		reduced = append(reduced, reducedTransaction{
			Date:     txn.Date,
			Type:     txn.Type,
			Amount:   txn.Amount,
			Category: txn.Category,
			Desc:     txn.Description,
		})
	}

	data, err := json.Marshal(reduced)
	if err != nil {
		return "", fmt.Errorf("failed to encode transactions: %w", err)
	}
	return fmt.Sprintf("Analyze these financial transactions (in CNY ¥) and provide insights in JSON format: %s", data), nil
}
