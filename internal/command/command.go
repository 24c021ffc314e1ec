// Package command is the Telegram remote control of the player.
package command

import "context"

type Client interface {
	// HandleCommand consumes bot updates until ctx is done or the update
	// channel closes.
	HandleCommand(ctx context.Context) error
}
