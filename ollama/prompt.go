package ollama

import (
	"fmt"

	"concept-explainer/models"
)

const promptTemplate = `Explain the concept of "%s" in %s terms.

Requirements:
- Start with a clear definition
- Use 3-5 short paragraphs
- Include 1-2 real-world examples
- Avoid jargon (unless advanced level)
- End with a summary sentence`

// BuildPrompt interpolates the topic and difficulty into the generation
// prompt. The listed requirements are a contract with the model; nothing on
// the way back is checked against them.
func BuildPrompt(topic string, difficulty models.Difficulty) string {
	return fmt.Sprintf(promptTemplate, topic, difficulty)
}
