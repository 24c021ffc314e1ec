package feedimpl

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/insta-stories-player/internal/domain"
	mock_instagram "github.com/orgball2608/insta-stories-player/internal/instagram/mocks"
	"github.com/orgball2608/insta-stories-player/internal/metrics"
	mock_player "github.com/orgball2608/insta-stories-player/internal/player/mocks"
	mock_seenpointer "github.com/orgball2608/insta-stories-player/internal/repositories/seenpointer/mocks"
	apperrors "github.com/orgball2608/insta-stories-player/pkg/errors"
	"github.com/orgball2608/insta-stories-player/pkg/logger"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	feed *FeedImpl
	ig   *mock_instagram.MockClient
	p    *mock_player.MockPlayer
	repo *mock_seenpointer.MockRepository
}

func newFixture(t *testing.T, usernames ...string) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	fx := fixture{
		ig:   mock_instagram.NewMockClient(ctrl),
		p:    mock_player.NewMockPlayer(ctrl),
		repo: mock_seenpointer.NewMockRepository(ctrl),
	}
	s := Settings{Usernames: usernames, Workers: 2, SeenRetention: 24 * time.Hour}
	fx.feed = NewWithSettings(s, fx.ig, fx.p, fx.repo, clockwork.NewFakeClock(), logger.NewNop(), metrics.New())
	return fx
}

func stories(id string, items ...string) domain.UserStories {
	u := domain.UserStories{ID: id}
	for _, item := range items {
		u.Items = append(u.Items, domain.StoryItem{ID: item, MediaType: domain.MediaImage, SourceURL: "http://cdn/" + item + ".jpg"})
	}
	return u
}

func ids(data domain.DataSet) []string {
	var out []string
	for _, u := range data {
		out = append(out, u.ID)
	}
	return out
}

func TestParseUsernames(t *testing.T) {
	got := ParseUsernames(" alice, @bob,,alice , carol ")
	want := []string{"alice", "bob", "carol"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got := ParseUsernames(""); len(got) != 0 {
		t.Errorf("expected no usernames, got %v", got)
	}
}

func TestRefreshKeepsConfiguredOrder(t *testing.T) {
	fx := newFixture(t, "alice", "bob", "carol")

	fx.ig.EXPECT().GetUserStories("alice").Return(stories("alice", "a1", "a2"), nil)
	fx.ig.EXPECT().GetUserStories("bob").Return(stories("bob"), nil)
	fx.ig.EXPECT().GetUserStories("carol").Return(stories("carol", "c1"), nil)

	var got domain.DataSet
	fx.p.EXPECT().SetStories(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, data domain.DataSet) error {
		got = data
		return nil
	})

	if err := fx.feed.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if want := []string{"alice", "carol"}; !slices.Equal(ids(got), want) {
		t.Errorf("expected users %v, got %v", want, ids(got))
	}
}

func TestRefreshFailureKeepsLastStories(t *testing.T) {
	fx := newFixture(t, "alice", "bob")

	gomock.InOrder(
		fx.ig.EXPECT().GetUserStories("alice").Return(stories("alice", "a1"), nil),
		fx.ig.EXPECT().GetUserStories("alice").Return(domain.UserStories{}, errors.New("rate limited")),
	)
	gomock.InOrder(
		fx.ig.EXPECT().GetUserStories("bob").Return(stories("bob", "b1"), nil),
		fx.ig.EXPECT().GetUserStories("bob").Return(stories("bob", "b1", "b2"), nil),
	)

	var calls []domain.DataSet
	fx.p.EXPECT().SetStories(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, data domain.DataSet) error {
		calls = append(calls, data)
		return nil
	}).Times(2)

	ctx := context.Background()
	if err := fx.feed.Refresh(ctx); err != nil {
		t.Fatalf("first Refresh: %v", err)
	}
	if err := fx.feed.Refresh(ctx); err != nil {
		t.Fatalf("second Refresh: %v", err)
	}

	last := calls[1]
	if want := []string{"alice", "bob"}; !slices.Equal(ids(last), want) {
		t.Fatalf("expected users %v, got %v", want, ids(last))
	}
	if len(last[0].Items) != 1 || last[0].Items[0].ID != "a1" {
		t.Errorf("expected alice to keep a1, got %+v", last[0].Items)
	}
	if len(last[1].Items) != 2 {
		t.Errorf("expected bob to have 2 stories, got %d", len(last[1].Items))
	}
}

func TestRefreshSkipsUnchangedData(t *testing.T) {
	fx := newFixture(t, "alice")

	fx.ig.EXPECT().GetUserStories("alice").Return(stories("alice", "a1"), nil).Times(2)
	fx.p.EXPECT().SetStories(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := fx.feed.Refresh(ctx); err != nil {
			t.Fatalf("Refresh %d: %v", i, err)
		}
	}
}

func TestRefreshAllFailed(t *testing.T) {
	fx := newFixture(t, "alice", "bob")

	fx.ig.EXPECT().GetUserStories(gomock.Any()).Return(domain.UserStories{}, errors.New("down")).Times(2)

	err := fx.feed.Refresh(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if apperrors.GetCode(err) != apperrors.CodeSource {
		t.Errorf("expected code %s, got %q", apperrors.CodeSource, apperrors.GetCode(err))
	}
}

func TestRefreshRetriesAfterPlayerError(t *testing.T) {
	fx := newFixture(t, "alice")

	fx.ig.EXPECT().GetUserStories("alice").Return(stories("alice", "a1"), nil).Times(2)
	gomock.InOrder(
		fx.p.EXPECT().SetStories(gomock.Any(), gomock.Any()).Return(apperrors.ErrClosed),
		fx.p.EXPECT().SetStories(gomock.Any(), gomock.Any()).Return(nil),
	)

	ctx := context.Background()
	if err := fx.feed.Refresh(ctx); !errors.Is(err, apperrors.ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if err := fx.feed.Refresh(ctx); err != nil {
		t.Fatalf("second Refresh: %v", err)
	}
}

func TestRefreshWithoutSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mock_player.NewMockPlayer(ctrl)
	f := NewWithSettings(Settings{Usernames: []string{"alice"}}, nil, p, nil, clockwork.NewFakeClock(), logger.NewNop(), nil)

	if err := f.Refresh(context.Background()); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
}

func TestCleanupSeen(t *testing.T) {
	fx := newFixture(t)

	gomock.InOrder(
		fx.repo.EXPECT().CleanupOlderThan(gomock.Any(), 24*time.Hour).Return(int64(3), nil),
		fx.repo.EXPECT().CleanupOlderThan(gomock.Any(), 24*time.Hour).Return(int64(0), errors.New("db down")),
	)

	fx.feed.cleanupSeen(context.Background())
	fx.feed.cleanupSeen(context.Background())
}
