package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/config"
	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/resilience"
	"github.com/bookloop/bookloop-go/pkg/errors"
)

// Strategy ranks candidates for a user. The external client and the heuristic
// scorer both satisfy it.
type Strategy interface {
	// RecommendBooks returns ranked book IDs for the user.
	RecommendBooks(ctx context.Context, user *entity.User, books []*entity.Book, topK int) ([]string, error)

	// RecommendCircles returns ranked circle IDs for the user.
	RecommendCircles(ctx context.Context, user *entity.User, circles []*entity.ReadingCircle, topK int) ([]string, error)
}

type bookCandidate struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Author    string  `json:"author"`
	Genre     string  `json:"genre"`
	Language  string  `json:"language"`
	Rating    float64 `json:"rating"`
	Reviews   int     `json:"reviews"`
	Available bool    `json:"available"`
	OwnerID   string  `json:"ownerId"`
}

type circleCandidate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Privacy     string `json:"privacy"`
	MemberCount int    `json:"memberCount"`
}

type profile struct {
	ID          string              `json:"id"`
	Preferences *entity.Preferences `json:"preferences,omitempty"`
	Joined      []string            `json:"joined,omitempty"`
}

// Client calls the external recommender service. All failures are reported as
// upstream errors so callers can fall back to the heuristic scorer.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	breaker    *resilience.CircuitBreaker
	logger     *zap.Logger
}

// NewClient creates a recommender client from configuration.
func NewClient(cfg *config.RecommendConfig, logger *zap.Logger) *Client {
	breaker := resilience.NewCircuitBreaker(&resilience.BreakerConfig{
		Name:             "recommender",
		FailureThreshold: cfg.BreakerThreshold,
		Cooldown:         cfg.BreakerCooldown,
	}, logger)

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		breaker:    breaker,
		logger:     logger,
	}
}

// Enabled reports whether the external recommender is configured.
func (c *Client) Enabled() bool {
	return c.baseURL != "" && c.apiKey != ""
}

// RecommendBooks asks the external service to rank the candidate books.
func (c *Client) RecommendBooks(ctx context.Context, user *entity.User, books []*entity.Book, topK int) ([]string, error) {
	if topK <= 0 {
		topK = DefaultBookTopK
	}

	candidates := make([]bookCandidate, 0, len(books))
	for _, b := range books {
		if b == nil {
			continue
		}
		candidates = append(candidates, bookCandidate{
			ID:        b.ID,
			Title:     b.Title,
			Author:    b.Author,
			Genre:     b.Genre,
			Language:  b.Language,
			Rating:    b.Rating,
			Reviews:   b.Reviews,
			Available: b.Available,
			OwnerID:   b.OwnerID,
		})
	}

	payload := map[string]any{
		"user":        profile{ID: user.ID, Preferences: &user.Preferences},
		"candidates":  candidates,
		"instruction": `From the provided candidates, suggest up to topK book ids that best match the user preferences. Respond ONLY as JSON: { "bookIds": ["id1", "id2", ...] }`,
		"topK":        topK,
	}

	var result struct {
		BookIDs []string `json:"bookIds"`
	}
	if err := c.post(ctx, payload, &result); err != nil {
		return nil, err
	}
	return result.BookIDs, nil
}

// RecommendCircles asks the external service to rank the candidate circles.
func (c *Client) RecommendCircles(ctx context.Context, user *entity.User, circles []*entity.ReadingCircle, topK int) ([]string, error) {
	if topK <= 0 {
		topK = DefaultCircleTopK
	}

	candidates := make([]circleCandidate, 0, len(circles))
	for _, cl := range circles {
		if cl == nil {
			continue
		}
		candidates = append(candidates, circleCandidate{
			ID:          cl.ID,
			Name:        cl.Name,
			Description: cl.Description,
			Privacy:     string(cl.Privacy),
			MemberCount: cl.MemberCount(),
		})
	}

	payload := map[string]any{
		"user":        profile{ID: user.ID, Preferences: &user.Preferences, Joined: user.CirclesJoined},
		"candidates":  candidates,
		"instruction": `From the provided candidates, suggest up to topK circle ids the user should join. Respond ONLY as JSON: { "circleIds": ["id1", "id2", ...] }`,
		"topK":        topK,
	}

	var result struct {
		CircleIDs []string `json:"circleIds"`
	}
	if err := c.post(ctx, payload, &result); err != nil {
		return nil, err
	}
	return result.CircleIDs, nil
}

func (c *Client) post(ctx context.Context, payload any, out any) error {
	if !c.Enabled() {
		return errors.ErrUpstream.WithMessage("recommender not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.ErrUpstream.WithError(err)
	}

	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
		if err != nil {
			return errors.ErrUpstream.WithError(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return errors.ErrUpstream.WithError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return errors.ErrUpstream.WithMessage(fmt.Sprintf("recommender returned status %d", resp.StatusCode))
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.ErrUpstream.WithError(err)
		}
		return nil
	})
}
