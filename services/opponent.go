package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"courtroom/models"
)

// OpponentService produces the AI opponent's counterargument. It degrades to
// a canned disagreement whenever the blueprint or the generator is
// unavailable: the debate must continue even when a dependency is flaky.
type OpponentService struct {
	generator TextGenerator
	blueprint *models.Blueprint
}

// NewOpponentService loads the persona blueprint from blueprintPath. A nil
// generator or a missing blueprint is remembered, not fatal.
func NewOpponentService(generator TextGenerator, blueprintPath string) *OpponentService {
	svc := &OpponentService{generator: generator}

	data, err := os.ReadFile(blueprintPath)
	if err != nil {
		log.Printf("blueprint unavailable (%v), counterarguments will use canned responses", err)
		return svc
	}
	var bp models.Blueprint
	if err := json.Unmarshal(data, &bp); err != nil {
		log.Printf("blueprint unreadable (%v), counterarguments will use canned responses", err)
		return svc
	}
	svc.blueprint = &bp
	return svc
}

// Counterargument composes the opponent prompt and generates the rebuttal.
func (o *OpponentService) Counterargument(ctx context.Context, topic, difficulty, playerTranscript, role string) string {
	if o.blueprint == nil || o.generator == nil {
		return cannedDisagreement(topic, difficulty)
	}

	prompt := o.composePrompt(topic, difficulty, playerTranscript, role)
	text, err := o.generator.GenerateText(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		log.Printf("counterargument generation failed for %q: %v", topic, err)
		return cannedDisagreement(topic, difficulty)
	}
	return strings.TrimSpace(text)
}

func (o *OpponentService) composePrompt(topic, difficulty, playerTranscript, role string) string {
	var sb strings.Builder
	sb.WriteString("You are the opponent in a speech-and-debate practice match. ")
	sb.WriteString("Respond with a spoken-style rebuttal of about 100 words. Ask no questions, use no bullet points, and return a script.\n\n")
	sb.WriteString(fmt.Sprintf("Topic: %s\n", topic))

	if role != "" {
		stance := "You are AGAINST the topic"
		if role == "proponent" {
			stance = "You are FOR the topic"
		}
		sb.WriteString(fmt.Sprintf("Your role: %s\n", stance))
	}
	if playerTranscript != "" {
		sb.WriteString(fmt.Sprintf("Player's argument: %s\n", playerTranscript))
	}

	if agent, ok := o.blueprint.Agents[strings.ToLower(difficulty)]; ok {
		sb.WriteString("\n")
		sb.WriteString(agent.Prompt)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(o.blueprint.GlobalPolicy)
	return sb.String()
}

// cannedDisagreement keeps the opponent talking when generation is down. The
// texts scale with difficulty so the fallback does not break immersion.
func cannedDisagreement(topic, difficulty string) string {
	preview := topic
	if len(preview) > 50 {
		preview = preview[:50] + "..."
	}

	switch strings.ToLower(difficulty) {
	case models.DifficultyEasy:
		return fmt.Sprintf("I have some concerns about that position. There are different ways to look at %s, and I think we need to consider various perspectives before accepting it. Some people might disagree with this approach, and there are valid points on both sides of the argument.", preview)
	case models.DifficultyHard:
		return fmt.Sprintf("The evidence surrounding %s requires far more careful analysis than that. Multiple studies demonstrate patterns that cut against your position, and the long-term implications extend well beyond surface-level observations. We must evaluate this through several lenses before reaching your conclusion.", preview)
	default:
		return fmt.Sprintf("While I understand the points being made, I must respectfully present a different perspective on %s. Research suggests there are important considerations we should examine, and we need to weigh the implications carefully before accepting that view.", preview)
	}
}
