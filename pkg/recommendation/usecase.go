package recommendation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/artem13815/skillpath/pkg/llm"
)

// FallbackText is returned when the provider answers without any candidate text.
const FallbackText = "No recommendation generated."

const promptTemplate = "Suggest 3 career paths for someone skilled in %s. Explain why these careers are suitable in one short sentence each."

// UseCase produces career suggestions for a skill.
type UseCase interface {
	Recommend(ctx context.Context, skill string) (string, error)
}

type service struct {
	skills SkillRepository
	llm    llm.TextGenerator
}

func NewService(skills SkillRepository, model llm.TextGenerator) UseCase {
	return &service{skills: skills, llm: model}
}

// Recommend records the skill first, so the submission survives a failed
// generation. The provider is called exactly once per request.
func (s *service) Recommend(ctx context.Context, skill string) (string, error) {
	if strings.TrimSpace(skill) == "" {
		return "", ErrValidation
	}
	if _, err := s.skills.Append(ctx, skill); err != nil {
		return "", fmt.Errorf("%w: append skill: %v", ErrStore, err)
	}

	text, err := s.llm.Generate(ctx, Prompt(skill))
	if err != nil {
		if errors.Is(err, llm.ErrNoCandidates) {
			return FallbackText, nil
		}
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if strings.TrimSpace(text) == "" {
		return FallbackText, nil
	}
	return text, nil
}

// Prompt renders the provider prompt for a skill.
func Prompt(skill string) string {
	return fmt.Sprintf(promptTemplate, skill)
}
