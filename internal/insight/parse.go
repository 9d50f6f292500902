package insight

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Veraticus/pennywise/internal/model"
)

// cleanMarkdownWrapper strips the ```json fences some models insist on
// wrapping their output in.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}
	return strings.TrimSpace(content)
}

// parseInsight decodes the model's answer into an Insight. Any deviation
// from the expected shape is a parse failure, not a partial success.
func parseInsight(content string) (model.Insight, error) {
	content = cleanMarkdownWrapper(content)

	var ins model.Insight
	if err := json.Unmarshal([]byte(content), &ins); err != nil {
		return model.Insight{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if ins.Analysis == "" {
		return model.Insight{}, fmt.Errorf("%w: missing analysis", ErrParse)
	}
	if ins.Suggestions == nil {
		return model.Insight{}, fmt.Errorf("%w: missing suggestions", ErrParse)
	}
	if ins.SavingTips == "" {
		return model.Insight{}, fmt.Errorf("%w: missing savingTips", ErrParse)
	}
	return ins, nil
}
