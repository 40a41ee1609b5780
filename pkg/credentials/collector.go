package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yoruboku/vito-setup/pkg/prompt"
)

// Owner-preference menu entries, in display order.
const (
	ownerChoiceDefault = iota
	ownerChoiceCustom
	ownerChoiceNone
)

// Collector drives the interactive credential flow through an injected
// prompt driver.
type Collector struct {
	driver prompt.Driver
}

// NewCollector builds a Collector around the given driver.
func NewCollector(driver prompt.Driver) *Collector {
	return &Collector{driver: driver}
}

// Collect prompts for the token and bot ID, shows a truncated preview for
// confirmation, and repeats the whole exchange until the user confirms.
// Invalid values are rejected in place: an empty token or a non-numeric ID
// re-prompts immediately, independent of the confirmation loop.
func (c *Collector) Collect(ctx context.Context) (Record, error) {
	for {
		token, err := c.askToken(ctx)
		if err != nil {
			return Record{}, err
		}
		botID, err := c.askBotID(ctx)
		if err != nil {
			return Record{}, err
		}

		if err := c.driver.Info(ctx, fmt.Sprintf("Token: %s", TokenPreview(token))); err != nil {
			return Record{}, err
		}
		if err := c.driver.Info(ctx, fmt.Sprintf("Bot ID: %s", botID)); err != nil {
			return Record{}, err
		}

		ok, err := c.driver.Confirm(ctx, prompt.ConfirmConfig{
			Message: "Save these credentials?",
			Default: false,
		})
		if err != nil {
			return Record{}, err
		}
		if ok {
			return Record{Token: token, BotID: botID}, nil
		}
		if err := c.driver.Info(ctx, "Discarded. Let's try again."); err != nil {
			return Record{}, err
		}
	}
}

func (c *Collector) askToken(ctx context.Context) (string, error) {
	for {
		token, err := c.driver.Password(ctx, prompt.InputConfig{
			Message:   "Discord bot token",
			Help:      "From the Discord developer portal, Bot → Token.",
			Validator: validateToken,
		})
		if err != nil {
			return "", err
		}
		token = strings.TrimSpace(token)
		if token == "" {
			if err := c.driver.Info(ctx, "The token must not be empty."); err != nil {
				return "", err
			}
			continue
		}
		return token, nil
	}
}

func (c *Collector) askBotID(ctx context.Context) (string, error) {
	for {
		botID, err := c.driver.Input(ctx, prompt.InputConfig{
			Message:   "Application (bot) ID",
			Help:      "The numeric application ID from the developer portal.",
			Validator: validateBotID,
		})
		if err != nil {
			return "", err
		}
		botID = strings.TrimSpace(botID)
		if !botIDPattern.MatchString(botID) {
			if err := c.driver.Info(ctx, "The bot ID must contain digits only."); err != nil {
				return "", err
			}
			continue
		}
		return botID, nil
	}
}

// CollectOwners offers the three-way owner preference: keep the built-in
// default owner, enter a custom list, or configure no extra owners. The
// default and "none" choices both yield an empty list; the built-in owner
// lives inside the bot and needs no configuration.
func (c *Collector) CollectOwners(ctx context.Context) ([]string, error) {
	choice, err := c.driver.Select(ctx, prompt.SelectConfig{
		Message: "Owner configuration",
		Options: []string{
			fmt.Sprintf("Use the built-in default owner (%s)", DefaultOwner),
			"Enter a custom owner list",
			"No extra owners",
		},
		DefaultIndex: ownerChoiceDefault,
	})
	if err != nil {
		return nil, err
	}

	switch choice {
	case ownerChoiceCustom:
		return c.askOwnerList(ctx)
	case ownerChoiceDefault, ownerChoiceNone:
		return nil, nil
	default:
		return nil, errors.New("credentials: unknown owner choice")
	}
}

// askOwnerList reads usernames one per prompt until the user submits an
// empty line. The terminating empty line is not part of the result and
// input order is preserved.
func (c *Collector) askOwnerList(ctx context.Context) ([]string, error) {
	var owners []string
	for {
		line, err := c.driver.Input(ctx, prompt.InputConfig{
			Message: "Owner username (empty line to finish)",
		})
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return owners, nil
		}
		owners = append(owners, line)
	}
}

func validateToken(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("the token must not be empty")
	}
	return nil
}

func validateBotID(value string) error {
	if !botIDPattern.MatchString(strings.TrimSpace(value)) {
		return errors.New("the bot ID must contain digits only")
	}
	return nil
}
