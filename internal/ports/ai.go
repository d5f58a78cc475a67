package ports

import "context"

// DescriptionGenerator is the external text-generation collaborator used for
// listing descriptions. It may fail; callers treat failure as non-fatal.
type DescriptionGenerator interface {
	Generate(ctx context.Context, title, specs, tone string) (string, error)
}
