// Package envfile persists the configuration record as a line-oriented
// KEY=VALUE file with owner-only permissions. Writes replace the whole
// file; there is no merging and no backup. Reads go through godotenv,
// matching how the bot itself (python-dotenv) consumes the file.
package envfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/yoruboku/vito-setup/pkg/credentials"
)

// Keys written to the configuration file, in file order.
const (
	KeyToken  = "DISCORD_TOKEN"
	KeyBotID  = "BOT_ID"
	KeyOwners = "OWNERS"
)

// fileMode keeps the secrets readable by the owning user only.
const fileMode = os.FileMode(0o600)

// Write serializes the record and replaces path unconditionally. Values
// are written as literal bytes, one KEY=VALUE per line, so the file stays
// byte-predictable for the bot's loader.
func Write(path string, rec credentials.Record) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("envfile: refusing to persist invalid record: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s=%s\n", KeyToken, rec.Token)
	fmt.Fprintf(&b, "%s=%s\n", KeyBotID, rec.BotID)
	fmt.Fprintf(&b, "%s=%s\n", KeyOwners, strings.Join(rec.Owners, ","))

	if err := os.WriteFile(path, []byte(b.String()), fileMode); err != nil {
		return fmt.Errorf("envfile: write %s: %w", path, err)
	}
	// WriteFile leaves the mode of a pre-existing file untouched.
	if err := os.Chmod(path, fileMode); err != nil {
		return fmt.Errorf("envfile: restrict %s: %w", path, err)
	}
	return nil
}

// Load reads path back into a Record. Used for the post-write sanity
// check during setup; the bot reads the file on its own at launch.
func Load(path string) (credentials.Record, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return credentials.Record{}, fmt.Errorf("envfile: read %s: %w", path, err)
	}

	rec := credentials.Record{
		Token: values[KeyToken],
		BotID: values[KeyBotID],
	}
	if owners := values[KeyOwners]; owners != "" {
		for _, owner := range strings.Split(owners, ",") {
			if owner = strings.TrimSpace(owner); owner != "" {
				rec.Owners = append(rec.Owners, owner)
			}
		}
	}
	if err := rec.Validate(); err != nil {
		return credentials.Record{}, fmt.Errorf("envfile: %s holds an invalid record: %w", path, err)
	}
	return rec, nil
}
