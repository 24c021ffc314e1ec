// Package instagram is the story source feeding the player.
package instagram

import (
	"errors"

	"github.com/orgball2608/insta-stories-player/internal/domain"
)

var ErrNotLoggedIn = errors.New("instagram client is not logged in")

//go:generate go run go.uber.org/mock/mockgen -source=instagram.go -destination=mocks/mock.go

type Client interface {
	Login() error
	// GetUserStories returns the current stories of username as one carousel
	// user. Items is empty when the user has no active stories.
	GetUserStories(username string) (domain.UserStories, error)
}
