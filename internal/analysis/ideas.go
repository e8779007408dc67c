package analysis

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/instagrowth/internal/prompts"
	"github.com/jonathan/instagrowth/internal/schemas"
	"github.com/jonathan/instagrowth/internal/types"
)

// PostIdeas generates numIdeas content suggestions for a niche. The AI
// service does not supply ids, so each idea gets a locally generated unique
// id here, at creation time.
func (a *Analyzer) PostIdeas(ctx context.Context, niche string, numIdeas int) ([]types.PostIdea, error) {
	prompt := prompts.Format(prompts.MustGet("post-ideas"), map[string]string{
		"Niche":    niche,
		"NumIdeas": strconv.Itoa(numIdeas),
	})

	var ideas []types.PostIdea
	if err := a.generate(ctx, "post ideas", schemas.PostIdeas, prompt, &ideas); err != nil {
		return nil, err
	}

	for i := range ideas {
		ideas[i].ID = uuid.NewString()
	}
	return ideas, nil
}
