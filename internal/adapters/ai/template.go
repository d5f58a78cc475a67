package ai

import (
	"context"
	"fmt"
	"strings"
)

// TemplateGenerator stitches listing copy from the inputs without calling
// any external model. It is the default when no API key is configured.
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

func (g *TemplateGenerator) Generate(_ context.Context, title, specs, tone string) (string, error) {
	features := strings.TrimRight(strings.TrimSpace(specs), ".")
	opening := "Welcome to"
	if strings.Contains(strings.ToLower(tone), "luxur") {
		opening = "Experience"
	}
	return fmt.Sprintf(
		"%s %s. This property offers %s. Arrange a viewing today and see it for yourself.",
		opening, strings.TrimSpace(title), features,
	), nil
}
