package services

import (
	"context"
	"fmt"
	"strings"
)

// Winner outcome values: 0 means the user's argument won, 1 means the
// opponent's counterargument won.
const (
	WinnerArgument        = 0
	WinnerCounterargument = 1
)

// JudgeService asks the generative model to score a finished debate and to
// critique a user's argument. Unlike the topic/hints/counterargument path it
// has no fallback: a wrong silent default here would corrupt scoring, so
// every failure surfaces to the caller.
type JudgeService struct {
	generator TextGenerator
}

func NewJudgeService(generator TextGenerator) *JudgeService {
	return &JudgeService{generator: generator}
}

// Winner compares the two texts and returns which side won.
func (j *JudgeService) Winner(ctx context.Context, argument, counterargument, topic string) (int, error) {
	if j.generator == nil {
		return 0, fmt.Errorf("no text generator configured for judging")
	}

	prompt := fmt.Sprintf(
		"You are a neutral judge of a debate on the topic %q.\n\n"+
			"Argument:\n%s\n\nCounterargument:\n%s\n\n"+
			"Judge solely on clarity, organization, structure, and relevance to the topic. "+
			"Answer with exactly one word: either \"argument\" or \"counterargument\".",
		topic, argument, counterargument,
	)

	response, err := j.generator.GenerateText(ctx, prompt)
	if err != nil {
		return 0, fmt.Errorf("judging failed: %w", err)
	}
	return parseWinner(response), nil
}

// parseWinner applies the literal substring rule: the user wins only when the
// response mentions "argument" without mentioning "counterargument". The rule
// is fragile with chatty responses but is kept for compatibility.
func parseWinner(response string) int {
	lower := strings.ToLower(response)
	if strings.Contains(lower, "argument") && !strings.Contains(lower, "counterargument") {
		return WinnerArgument
	}
	return WinnerCounterargument
}

// Feedback returns two bullet points of constructive criticism, verbatim from
// the model.
func (j *JudgeService) Feedback(ctx context.Context, argument, topic string) (string, error) {
	if j.generator == nil {
		return "", fmt.Errorf("no text generator configured for feedback")
	}

	prompt := fmt.Sprintf(
		"A debater argued the following on the topic %q:\n\n%s\n\n"+
			"Give exactly two bullet points of polite, constructive criticism grounded in "+
			"debate principles (clarity, evidence, organization, relevance). Return only the two bullet points.",
		topic, argument,
	)

	feedback, err := j.generator.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("feedback generation failed: %w", err)
	}
	return feedback, nil
}
