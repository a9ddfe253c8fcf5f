package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hookline/pkg/cli/config"
	"github.com/m-mizutani/hookline/pkg/domain/model"
	"github.com/m-mizutani/hookline/pkg/usecase"
	"github.com/urfave/cli/v3"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

func cmdTranslate() *cli.Command {
	var (
		eventType  string
		channel    string
		input      string
		forwardCfg config.Forward
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "event",
			Aliases:     []string{"e"},
			Usage:       `X-Gitlab-Event value, e.g. "Push Hook"`,
			Required:    true,
			Destination: &eventType,
		},
		&cli.StringFlag{
			Name:        "channel",
			Usage:       "Channel to override the destination with",
			Destination: &channel,
		},
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Payload JSON file, - for stdin",
			Value:       "-",
			Destination: &input,
		},
	}
	flags = append(flags, forwardCfg.Flags()...)

	return &cli.Command{
		Name:    "translate",
		Aliases: []string{"t"},
		Usage:   "Translate a webhook payload file and print the result envelope",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			payload, err := readInput(input)
			if err != nil {
				return err
			}

			result := usecase.NewWebhook().ProcessEvent(ctx, &model.WebhookEvent{
				ID:         uuid.NewString(),
				Type:       gitlab.EventType(eventType),
				Channel:    channel,
				ReceivedAt: time.Now(),
				RawPayload: payload,
			})

			var w io.Writer = os.Stdout
			if root := c.Root(); root != nil && root.Writer != nil {
				w = root.Writer
			}
			encoder := json.NewEncoder(w)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(result); err != nil {
				return goerr.Wrap(err, "failed to write result")
			}

			if notifier := forwardCfg.Notifier(); notifier != nil && result != nil && result.Content != nil {
				if err := notifier.Post(ctx, result.Content); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read payload from stdin")
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read payload file", goerr.V("path", path))
	}
	return data, nil
}
