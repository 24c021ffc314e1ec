package commandimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/orgball2608/insta-stories-player/internal/player"
	apperrors "github.com/orgball2608/insta-stories-player/pkg/errors"
	"github.com/orgball2608/insta-stories-player/pkg/formatter"
)

const helpMessage = `Stories player remote.

/show [user] - open the carousel, on the first user by default
/hide - close the carousel
/next, /prev - tap to the next or previous story
/swipenext, /swipeprev - jump to the next or previous user
/pause, /resume - hold and release the current story
/status - what is playing now
/clear - forget which stories were seen
/refresh - fetch stories from the source now`

// processCommand runs one command and returns the reply text.
func (c *CommandImpl) processCommand(ctx context.Context, command, args string) (string, error) {
	var err error
	switch command {
	case "start", "help":
		return helpMessage, nil
	case "show":
		userID := strings.TrimPrefix(strings.TrimSpace(args), "@")
		if err = c.Player.Show(ctx, userID); apperrors.IsNotFound(err) {
			return fmt.Sprintf("No stories for %s.", userID), nil
		}
	case "hide":
		err = c.Player.Hide(ctx)
	case "next":
		err = c.Player.Next(ctx)
	case "prev":
		err = c.Player.Previous(ctx)
	case "swipenext":
		err = c.Player.SwipeNext(ctx)
	case "swipeprev":
		err = c.Player.SwipePrevious(ctx)
	case "pause":
		err = c.Player.SetPaused(ctx, true)
	case "resume":
		err = c.Player.SetPaused(ctx, false)
	case "status":
	case "clear":
		if err = c.Player.ClearSeenState(ctx); err == nil {
			return "Seen state cleared.", nil
		}
	case "refresh":
		if c.Feed == nil {
			return "No story source is configured.", nil
		}
		if err = c.Feed.Refresh(ctx); err == nil {
			return "Stories refreshed.\n" + status(c.Player.Snapshot()), nil
		}
	default:
		return "Unknown command. Type /help to see the list of available commands.", nil
	}
	if err != nil {
		return "Something went wrong: " + err.Error(), err
	}
	return status(c.Player.Snapshot()), nil
}

// status renders a snapshot for chat.
func status(s player.Snapshot) string {
	if !s.Visible {
		if s.LoadingUserID != "" {
			return fmt.Sprintf("Opening %s...", s.LoadingUserID)
		}
		return fmt.Sprintf("Closed. %d users with stories.", len(s.Users))
	}

	var sb strings.Builder
	state := s.State.String()
	if s.Paused {
		state = "paused"
	}
	for _, u := range s.Users {
		if u.ID != s.UserID {
			continue
		}
		name := u.DisplayName
		if name == "" {
			name = u.ID
		}
		fmt.Fprintf(&sb, "%s, story %d/%d\n", name, s.StoryIndex+1, len(u.Segments))
		sb.WriteString(formatter.Segments(u.Segments))
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "%s %s of %s", state, formatter.Percent(s.Progress), formatter.Duration(s.Duration))
	return sb.String()
}
