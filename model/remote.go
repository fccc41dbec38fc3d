package model

import (
	"context"
	"fmt"
	"handy/communication/client"
	"handy/vectorize"
)

type predictRequest struct {
	Inputs []vectorize.Encoding `json:"inputs"`
}

type predictResponse struct {
	Outputs []float32 `json:"outputs"`
}

type fitRequest struct {
	Examples []Example `json:"examples"`
}

// Remote is a value model served by an external process.
type Remote struct {
	client *client.Client
}

func NewRemote(c *client.Client) *Remote {
	return &Remote{client: c}
}

func (r *Remote) Predict(ctx context.Context, inputs []vectorize.Encoding) ([]float32, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	var resp predictResponse
	if err := r.client.Post(ctx, "/predict", predictRequest{Inputs: inputs}, &resp); err != nil {
		return nil, fmt.Errorf("failed to predict: %w", err)
	}
	if len(resp.Outputs) != len(inputs) {
		return nil, fmt.Errorf("model returned %d predictions for %d inputs", len(resp.Outputs), len(inputs))
	}
	return resp.Outputs, nil
}

func (r *Remote) Fit(ctx context.Context, batch []Example) error {
	if len(batch) == 0 {
		return nil
	}
	if err := r.client.Post(ctx, "/fit", fitRequest{Examples: batch}, nil); err != nil {
		return fmt.Errorf("failed to fit: %w", err)
	}
	return nil
}
