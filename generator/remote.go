package generator

import (
	"context"
	"fmt"
	"handy/communication/client"
	"handy/game"
)

type remote struct {
	client *client.Client
}

// NewRemote returns a Generator served over HTTP by the native generator
// process.
func NewRemote(c *client.Client) Generator {
	return &remote{client: c}
}

func (r *remote) Example(ctx context.Context) (Example, error) {
	var ex Example
	if err := r.client.Get(ctx, "/example", &ex); err != nil {
		return Example{}, fmt.Errorf("failed to generate example: %w", err)
	}
	return ex, nil
}

func (r *remote) DeepExample(ctx context.Context) (DeepExample, error) {
	var ex DeepExample
	if err := r.client.Get(ctx, "/deep_example", &ex); err != nil {
		return DeepExample{}, fmt.Errorf("failed to generate deep example: %w", err)
	}
	return ex, nil
}

func (r *remote) WinningPile(ctx context.Context) (game.Pile, error) {
	var pile game.Pile
	if err := r.client.Get(ctx, "/won_pile", &pile); err != nil {
		return game.Pile{}, fmt.Errorf("failed to generate winning pile: %w", err)
	}
	return pile, nil
}
