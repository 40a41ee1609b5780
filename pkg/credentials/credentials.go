// Package credentials collects and validates the secrets the bot needs:
// the Discord token, the numeric application ID, and the optional owner
// list. Collection is interactive and loops until the user confirms.
package credentials

import (
	"errors"
	"fmt"
	"regexp"
)

// DefaultOwner is the built-in owner baked into the bot itself. Choosing
// it during setup writes an empty OWNERS value; the bot always honours the
// built-in name regardless of configuration.
const DefaultOwner = "yoruboku"

// previewLen caps how much of the token the confirmation step echoes back.
const previewLen = 8

var botIDPattern = regexp.MustCompile(`^[0-9]+$`)

// Record is the configuration persisted for the bot. It is written
// wholesale and never partially updated.
type Record struct {
	// Token authenticates the bot against Discord. Opaque, never logged in
	// full.
	Token string

	// BotID is the numeric application identifier, kept as a digit string.
	BotID string

	// Owners holds extra usernames granted elevated privileges. May be
	// empty, meaning only the built-in owner applies.
	Owners []string
}

// Validate enforces the record invariants: a non-empty token and a
// digits-only bot ID.
func (r Record) Validate() error {
	if r.Token == "" {
		return errors.New("credentials: token must not be empty")
	}
	if !botIDPattern.MatchString(r.BotID) {
		return fmt.Errorf("credentials: bot ID %q is not numeric", r.BotID)
	}
	return nil
}

// TokenPreview returns a truncated rendering of the token safe to echo
// back during confirmation: the first eight characters followed by an
// ellipsis. Tokens of eight characters or fewer are fully masked, so the
// complete value never appears in any output.
func TokenPreview(token string) string {
	runes := []rune(token)
	if len(runes) <= previewLen {
		return "…"
	}
	return string(runes[:previewLen]) + "…"
}
