package instagramimpl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Davincible/goinsta/v3"
	"github.com/orgball2608/insta-stories-player/pkg/retry"
)

const validateTimeout = 5 * time.Second

// Login connects to Instagram, first from an exported session and otherwise
// with credentials. A fresh login is exported for the next start.
func (ig *InstaImpl) Login() error {
	if err := ig.reloadSession(); err == nil {
		if ig.validateSession() {
			ig.Logger.Info("Successfully logged in using existing session")
			return nil
		}
		ig.Logger.Warn("Session loaded but appears to be invalid, attempting fresh login")
	}

	ig.Logger.Info("Attempting to log in with credentials")
	client := goinsta.New(ig.Config.Instagram.User, ig.Config.Instagram.Pass)

	err := retry.Do(context.Background(), ig.Logger, "instagram login", func() error { return client.Login() }, retry.DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to log in after multiple attempts: %w", err)
	}
	ig.setClient(client)
	ig.Logger.Info("Successfully logged in with credentials")

	if err := ig.saveSession(client); err != nil {
		ig.Logger.Warn("Failed to save Instagram session", "error", err)
	}
	return nil
}

func (ig *InstaImpl) reloadSession() error {
	path := ig.Config.Instagram.SessionPath
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("session file not found: %w", err)
	}

	client, err := goinsta.Import(path)
	if err != nil {
		return fmt.Errorf("failed to import session: %w", err)
	}
	ig.setClient(client)
	return nil
}

func (ig *InstaImpl) validateSession() bool {
	client, err := ig.current()
	if err != nil {
		return false
	}

	done := make(chan bool, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ig.Logger.Error("Panic in Instagram session validation", "panic", r)
				done <- false
			}
		}()
		done <- client.Account.Sync() == nil
	}()

	select {
	case valid := <-done:
		return valid
	case <-time.After(validateTimeout):
		ig.Logger.Warn("Session validation timed out")
		return false
	}
}

func (ig *InstaImpl) saveSession(client *goinsta.Instagram) error {
	path := ig.Config.Instagram.SessionPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := client.Export(path); err != nil {
		return fmt.Errorf("failed to export session: %w", err)
	}

	ig.Logger.Info("Instagram session saved successfully", "path", path)
	return nil
}
