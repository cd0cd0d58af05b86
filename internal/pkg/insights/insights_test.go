package insights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	insights Insights
	err      error

	gotExternalID  string
	gotAccountType string
	gotToken       string
}

func (s *stubFetcher) FetchInsights(ctx context.Context, externalID, accountType, accessToken string, from, to time.Time) (Insights, error) {
	s.gotExternalID = externalID
	s.gotAccountType = accountType
	s.gotToken = accessToken
	return s.insights, s.err
}

func TestRegistryDispatch(t *testing.T) {
	stub := &stubFetcher{insights: Insights{"follower_count": 1200}}
	registry := NewRegistry()
	registry.Register("tiktok", stub)

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC)
	data, err := registry.Fetch(context.Background(), "tiktok", "acct-1", "business", "token-abc", from, to)

	require.NoError(t, err)
	assert.Equal(t, 1200.0, data["follower_count"])
	assert.Equal(t, "acct-1", stub.gotExternalID)
	assert.Equal(t, "business", stub.gotAccountType)
	assert.Equal(t, "token-abc", stub.gotToken)
}

func TestRegistryUnknownPlatform(t *testing.T) {
	registry := NewRegistry()
	registry.Register("meta", &stubFetcher{})

	_, err := registry.Fetch(context.Background(), "weibo", "id", "official", "token", time.Now(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weibo")
}

func TestRegistryPropagatesFetcherError(t *testing.T) {
	wantErr := errors.New("rate limited")
	registry := NewRegistry()
	registry.Register("linkedin", &stubFetcher{err: wantErr})

	_, err := registry.Fetch(context.Background(), "linkedin", "org-1", "organization", "token", time.Now(), time.Now())
	assert.ErrorIs(t, err, wantErr)
}
