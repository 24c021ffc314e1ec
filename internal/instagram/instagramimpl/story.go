package instagramimpl

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Davincible/goinsta/v3"
	"github.com/orgball2608/insta-stories-player/internal/domain"
)

func (ig *InstaImpl) GetUserStories(username string) (domain.UserStories, error) {
	client, err := ig.current()
	if err != nil {
		return domain.UserStories{}, err
	}

	ig.Logger.Info("Get stories for username", "username", username)
	profile, err := client.VisitProfile(username)
	if err != nil {
		return domain.UserStories{}, fmt.Errorf("failed to visit profile %s: %w", username, err)
	}

	user := domain.UserStories{ID: username, DisplayName: username}
	if profile.User != nil {
		if profile.User.FullName != "" {
			user.DisplayName = profile.User.FullName
		}
		user.AvatarURL = profile.User.ProfilePicURL
	}
	if profile.Stories == nil {
		return user, nil
	}

	for _, item := range profile.Stories.Reel.Items {
		story, ok := fromItem(item).storyItem()
		if !ok {
			ig.Logger.Debug("Skipping story without media", "username", username)
			continue
		}
		user.Items = append(user.Items, story)
	}
	return user, nil
}

// media is the part of a goinsta item the player cares about.
type media struct {
	id       string
	takenAt  int64
	imageURL string
	videoURL string
}

func fromItem(item *goinsta.Item) media {
	m := media{takenAt: item.TakenAt}
	switch id := item.ID.(type) {
	case string:
		m.id = id
	case nil:
	default:
		m.id = fmt.Sprint(id)
	}
	if m.id == "" && item.Pk != 0 {
		m.id = strconv.FormatInt(item.Pk, 10)
	}
	if len(item.Videos) > 0 {
		m.videoURL = item.Videos[0].URL
	}
	if len(item.Images.Versions) > 0 {
		m.imageURL = item.Images.Versions[0].URL
	}
	return m
}

// storyItem maps to a player item. Videos carry no custom duration so the
// decoded length, capped by configuration, drives the timeline.
func (m media) storyItem() (domain.StoryItem, bool) {
	if m.id == "" {
		return domain.StoryItem{}, false
	}
	item := domain.StoryItem{ID: m.id}
	if m.takenAt > 0 {
		item.TakenAt = time.Unix(m.takenAt, 0)
	}
	switch {
	case m.videoURL != "":
		item.MediaType = domain.MediaVideo
		item.SourceURL = m.videoURL
	case m.imageURL != "":
		item.MediaType = domain.MediaImage
		item.SourceURL = m.imageURL
	default:
		return domain.StoryItem{}, false
	}
	return item, true
}
