package ticket

import (
	"context"
	"fmt"

	"oficina/internal/shared/errors"
	"oficina/internal/shared/id"
)

const (
	TrackingCodeLength      = 12
	MaxTrackingCodeAttempts = 8
)

// CodeExistsFunc reports whether a tracking code is already taken.
type CodeExistsFunc func(ctx context.Context, code string) (bool, error)

// TrackingCodeGenerator draws random uppercase alphanumeric codes until one
// is free, giving up after MaxTrackingCodeAttempts draws.
type TrackingCodeGenerator struct {
	exists CodeExistsFunc
	draw   func() (string, error)
}

func NewTrackingCodeGenerator(exists CodeExistsFunc) *TrackingCodeGenerator {
	return &TrackingCodeGenerator{
		exists: exists,
		draw: func() (string, error) {
			return id.Generate(id.UpperAlphanumeric, TrackingCodeLength)
		},
	}
}

func (g *TrackingCodeGenerator) Generate(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= MaxTrackingCodeAttempts; attempt++ {
		code, err := g.draw()
		if err != nil {
			return "", err
		}
		taken, err := g.exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check tracking code: %w", err)
		}
		if !taken {
			return code, nil
		}
	}
	return "", errors.NewGenerationExhaustedError(
		"Could not generate a unique tracking code",
		fmt.Sprintf("%d attempts collided", MaxTrackingCodeAttempts),
	)
}
