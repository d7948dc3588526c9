package main

import (
	"context"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fidelidade/fidelidade-client/client"
)

func newHealthCmd(a *app) *cobra.Command {
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Probe the backend",
		Long: "Probe the backend. With --wait the probe is repeated with exponential " +
			"backoff until the backend answers or the wait expires, which helps with " +
			"hosts that cold-start.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "/health", func(ctx context.Context, c *client.Client) (any, error) {
				if wait <= 0 {
					return c.Health(ctx)
				}
				// Bounded by --wait instead of the command timeout; a cold start
				// takes longer. Interrupting the command still stops the probe.
				wctx, cancel := context.WithTimeout(cmd.Context(), wait)
				defer cancel()
				return waitHealthy(wctx, c, 500*time.Millisecond, 5*time.Second)
			})
		},
	}
	cmd.Flags().DurationVar(&wait, "wait", 0, "Keep probing until healthy or this much time has passed")

	return cmd
}

// waitHealthy probes until the backend answers or ctx ends. Only network
// failures and 5xx responses are retried.
func waitHealthy(ctx context.Context, c *client.Client, initial, maxInterval time.Duration) (*client.HealthResponse, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = initial
	exp.Multiplier = 2
	exp.MaxInterval = maxInterval
	exp.MaxElapsedTime = 0 // bounded by ctx
	exp.Reset()

	attempts := 0
	for {
		attempts++
		h, err := c.Health(ctx)
		if err == nil {
			log.Debug().Int("attempts", attempts).Msg("backend healthy")
			return h, nil
		}
		if status := client.StatusCode(err); status > 0 && status < http.StatusInternalServerError {
			return nil, err
		}

		wait := exp.NextBackOff()
		log.Debug().Err(err).Int("attempt", attempts).Dur("next", wait).Msg("backend not ready")
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, err
		}
	}
}
