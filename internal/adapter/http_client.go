package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-fit-tracker/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig configures [NewHTTPTrackerClient].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpTrackerClient struct {
	client *resty.Client
}

func NewHTTPTrackerClient(cfg HTTPClientConfig) TrackerClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpTrackerClient{client: cli}
}

func (h *httpTrackerClient) CreateUser(ctx context.Context, username string) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateUserRequest{Username: username}).
		Post("/api/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("create user decode response: %w", err)
	}

	return user, nil
}

func (h *httpTrackerClient) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var users []models.User
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("list users decode response: %w", err)
	}

	return users, nil
}

func (h *httpTrackerClient) CreateExercise(ctx context.Context, userID string, req models.CreateExerciseRequest) (models.ExerciseCreated, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(fmt.Sprintf("/api/users/%s/exercises", userID))
	if err != nil {
		return models.ExerciseCreated{}, fmt.Errorf("create exercise request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ExerciseCreated{}, err
	}

	var created models.ExerciseCreated
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.ExerciseCreated{}, fmt.Errorf("create exercise decode response: %w", err)
	}

	return created, nil
}

func (h *httpTrackerClient) GetLog(ctx context.Context, userID string, query LogQuery) (models.ExerciseLog, error) {
	req := h.client.R().SetContext(ctx)

	if query.From != "" {
		req.SetQueryParam("from", query.From)
	}
	if query.To != "" {
		req.SetQueryParam("to", query.To)
	}
	if query.Limit != "" {
		req.SetQueryParam("limit", query.Limit)
	}

	resp, err := req.Get(fmt.Sprintf("/api/users/%s/logs", userID))
	if err != nil {
		return models.ExerciseLog{}, fmt.Errorf("get log request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ExerciseLog{}, err
	}

	var exerciseLog models.ExerciseLog
	if err = json.Unmarshal(resp.Body(), &exerciseLog); err != nil {
		return models.ExerciseLog{}, fmt.Errorf("get log decode response: %w", err)
	}

	return exerciseLog, nil
}
