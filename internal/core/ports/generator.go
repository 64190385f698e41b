package ports

import "context"

// DescriptionGenerator is the external text-generation collaborator. It is
// opaque to the core: a prompt in, prose or an error out. Callers must treat
// any error as non-fatal.
type DescriptionGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
