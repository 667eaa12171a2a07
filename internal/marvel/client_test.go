package marvel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"comics-gateway/internal/config"
)

func newTestClient(t *testing.T, upstream http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	client := NewClient(config.MarvelConfig{
		BaseURL:    srv.URL,
		PublicKey:  "pub",
		PrivateKey: "priv",
		Timeout:    2 * time.Second,
	})

	return client, srv
}

const charactersBody = `{
	"code": 200,
	"status": "Ok",
	"data": {
		"offset": 0,
		"limit": 20,
		"total": 1,
		"count": 1,
		"results": [{"id": 1009368, "name": "Iron Man", "description": "genius"}]
	}
}`

func TestCharacters_OK(t *testing.T) {
	t.Parallel()

	var gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(charactersBody))
	})

	result, err := client.Characters(context.Background(), CharacterFilter{Name: "Iron Man"})
	require.NoError(t, err)
	require.Equal(t, 200, result.Code)
	require.Equal(t, 1, result.Data.Total)
	require.Len(t, result.Data.Results, 1)
	require.Equal(t, "Iron Man", result.Data.Results[0].Name)

	// Запрос подписан и несёт параметры фильтра.
	require.Contains(t, gotQuery, "ts=")
	require.Contains(t, gotQuery, "apikey=pub")
	require.Contains(t, gotQuery, "hash=")
	require.Contains(t, gotQuery, "name=Iron%20Man")
}

func TestCharacterByID_PathAndEnvelope(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/characters/1009368", r.URL.Path)
		_, _ = w.Write([]byte(charactersBody))
	})

	result, err := client.CharacterByID(context.Background(), 1009368)
	require.NoError(t, err)
	require.Equal(t, 1009368, result.Data.Results[0].ID)
}

func TestFetch_Non2xx_Unavailable(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusUnauthorized, http.StatusConflict, http.StatusInternalServerError} {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		_, err := client.Comics(context.Background(), ComicFilter{})
		require.ErrorIs(t, err, ErrUnavailable)
	}
}

func TestFetch_BadJSON_Protocol(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	_, err := client.Characters(context.Background(), CharacterFilter{})
	require.ErrorIs(t, err, ErrProtocol)
	require.NotErrorIs(t, err, ErrUnavailable)
}

func TestFetch_ConnectionRefused_Unavailable(t *testing.T) {
	t.Parallel()

	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := client.Characters(context.Background(), CharacterFilter{})
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestFetch_ContextCancelled_Unavailable(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.Characters(ctx, CharacterFilter{})
	require.ErrorIs(t, err, ErrUnavailable)
}

// fakeCache — кэш в памяти для проверки обхода апстрима.
type fakeCache struct {
	mu    sync.Mutex
	store map[string][]byte
	sets  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.store[key]
	return data, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store[key] = data
	f.sets++
	return nil
}

func TestFetch_CacheHitSkipsUpstream(t *testing.T) {
	t.Parallel()

	var calls int
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(charactersBody))
	})

	cache := newFakeCache()
	client.SetCache(cache, time.Minute)

	filter := CharacterFilter{Name: "Iron Man"}

	first, err := client.Characters(context.Background(), filter)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.Equal(t, 1, cache.sets)

	second, err := client.Characters(context.Background(), filter)
	require.NoError(t, err)
	require.Equal(t, 1, calls, "повторный запрос должен обслуживаться из кэша")
	require.Equal(t, first.Data.Results, second.Data.Results)
}

func TestFetch_CacheKeyExcludesSigning(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(charactersBody))
	})

	cache := newFakeCache()
	client.SetCache(cache, time.Minute)

	_, err := client.Characters(context.Background(), CharacterFilter{Name: "Iron Man"})
	require.NoError(t, err)

	for key := range cache.store {
		require.NotContains(t, key, "ts=")
		require.NotContains(t, key, "hash=")
		require.Contains(t, key, "name=Iron%20Man")
	}
}
