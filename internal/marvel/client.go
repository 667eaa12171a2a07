// marvel — клиент апстрим-API каталога: подпись запросов, сборка
// query-строки и нормализация ошибок транспорта/протокола.
//
// Клиент не ретраит и не делает backoff: каждый вызов — ровно один GET.
// Вызывающим, которым нужна устойчивость, следует оборачивать клиент снаружи.
package marvel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"comics-gateway/internal/config"
	"comics-gateway/pkg/log"
)

var (
	// ErrUnavailable — транспортный сбой: соединение, таймаут или не-2xx
	// ответ апстрима. HTTP-слой: 502. Исходная причина сохраняется в цепочке.
	ErrUnavailable = errors.New("catalog unavailable")

	// ErrProtocol — транспорт отработал, но тело ответа не разбирается
	// в ожидаемый конверт. HTTP-слой: 502.
	ErrProtocol = errors.New("catalog protocol error")
)

// Cache — минимальный контракт кэша ответов каталога.
// Ключ не содержит ts/hash: подпись одноразовая и в ключе бессмысленна.
type Cache interface {
	// Get возвращает сырое тело ответа и признак наличия в кэше.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set сохраняет тело ответа с TTL.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// Client — HTTP-клиент каталога.
// Потокобезопасен: состояние неизменяемо после конструирования,
// кроме необязательного кэша, который выставляется до первого использования.
type Client struct {
	httpClient *http.Client
	baseURL    string
	publicKey  string
	privateKey string

	cache    Cache // может быть nil, если кэш не сконфигурирован
	cacheTTL time.Duration

	now func() time.Time
}

// NewClient создаёт клиент каталога из конфигурации.
func NewClient(cfg config.MarvelConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		publicKey:  cfg.PublicKey,
		privateKey: cfg.PrivateKey,
		now:        time.Now,
	}
}

// SetCache устанавливает кэш ответов каталога (опционально).
func (c *Client) SetCache(cache Cache, ttl time.Duration) {
	c.cache = cache
	c.cacheTTL = ttl
}

// Characters возвращает страницу персонажей по фильтру.
func (c *Client) Characters(ctx context.Context, filter CharacterFilter) (*Envelope[Character], error) {
	return fetch[Character](ctx, c, "/characters", filter.params())
}

// CharacterByID возвращает персонажа по идентификатору.
func (c *Client) CharacterByID(ctx context.Context, id int) (*Envelope[Character], error) {
	return fetch[Character](ctx, c, "/characters/"+strconv.Itoa(id), nil)
}

// Comics возвращает страницу комиксов по фильтру.
func (c *Client) Comics(ctx context.Context, filter ComicFilter) (*Envelope[Comic], error) {
	return fetch[Comic](ctx, c, "/comics", filter.params())
}

// ComicByID возвращает комикс по идентификатору.
func (c *Client) ComicByID(ctx context.Context, id int) (*Envelope[Comic], error) {
	return fetch[Comic](ctx, c, "/comics/"+strconv.Itoa(id), nil)
}

// fetch выполняет один GET к апстриму и разбирает типизированный конверт.
//
// Таксономия ошибок:
//   - сбой транспорта или не-2xx статус -> ErrUnavailable (с причиной);
//   - 2xx с нечитаемым телом -> ErrProtocol;
//   - всё остальное (сборка запроса и т.п.) уходит как есть, без обёртки.
//
// Ошибки кэша не фатальны: промах по ошибке — это просто промах.
func fetch[T any](ctx context.Context, c *Client, path string, filter []param) (*Envelope[T], error) {
	const op = "marvel.fetch"

	lg := log.From(ctx)

	cacheKey := path
	if len(filter) > 0 {
		cacheKey += "?" + joinParams(filter)
	}

	if c.cache != nil {
		data, ok, err := c.cache.Get(ctx, cacheKey)
		if err != nil {
			lg.Warn("catalog_cache_get_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		} else if ok {
			var envelope Envelope[T]
			if err := json.Unmarshal(data, &envelope); err == nil {
				return &envelope, nil
			}
			// Испорченная запись кэша — игнорируем и идём в апстрим.
		}
	}

	ts := strconv.FormatInt(c.now().Unix(), 10)
	url := c.baseURL + path + "?" + buildQuery(ts, c.publicKey, c.privateKey, filter)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		lg.Warn("catalog_http_error",
			slog.String("op", op),
			slog.String("path", path),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%s: %w: status=%d", op, ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}

	var envelope Envelope[T]
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrProtocol, err)
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, cacheKey, body, c.cacheTTL); err != nil {
			lg.Warn("catalog_cache_set_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	return &envelope, nil
}
