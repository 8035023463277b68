// Package export はデコード済みパケットレコードの外部APIへの送出を提供する。
package export

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/oyaguma3/radius-dissector-poc/internal/config"
	"github.com/sony/gobreaker"
)

// Exporter はパケットレコードの送出先を定義する
type Exporter interface {
	// Export はパケットレコード1件を送出する
	Export(ctx context.Context, rec *PacketRecord) error
}

// Client はExporterのHTTP実装。
// 連続失敗時はCircuit Breakerで送出を遮断する。
type Client struct {
	httpClient *resty.Client
	cb         *gobreaker.CircuitBreaker
	baseURL    string
}

// NewClient は新しいエクスポートクライアントを生成する。
func NewClient(cfg *config.Config) *Client {
	httpClient := resty.New().
		SetTimeout(config.ExportRequestTimeout)

	cbSettings := gobreaker.Settings{
		Name:        config.CBName,
		MaxRequests: config.CBMaxRequests,
		Interval:    config.CBInterval,
		Timeout:     config.CBTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(config.CBFailureThreshold)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			switch to {
			case gobreaker.StateOpen:
				slog.Warn("circuit breaker opened",
					"event_id", "CB_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateHalfOpen:
				slog.Info("circuit breaker half-open",
					"event_id", "CB_HALF_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateClosed:
				slog.Info("circuit breaker closed",
					"event_id", "CB_CLOSE",
					"cb_name", name,
				)
			}
		},
	}

	return &Client{
		httpClient: httpClient,
		cb:         gobreaker.NewCircuitBreaker(cbSettings),
		baseURL:    strings.TrimRight(cfg.ExportAPIURL, "/"),
	}
}

// Export はパケットレコードをPOSTする。
func (c *Client) Export(ctx context.Context, rec *PacketRecord) error {
	start := time.Now()

	_, err := c.cb.Execute(func() (any, error) {
		resp, err := c.httpClient.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(rec).
			Post(c.baseURL + "/api/v1/packets")

		if err != nil {
			return nil, &ConnectionError{Cause: err}
		}

		latencyMs := time.Since(start).Milliseconds()
		statusCode := resp.StatusCode()

		if statusCode >= 200 && statusCode < 300 {
			slog.Debug("export api success",
				"latency_ms", latencyMs,
			)
			return nil, nil
		}

		apiErr := c.parseAPIError(statusCode, resp.Body())
		slog.Error("export api error",
			"event_id", "EXPORT_API_ERR",
			"error", apiErr.Error(),
			"http_status", statusCode,
			"latency_ms", latencyMs,
		)
		return nil, apiErr
	})

	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return ErrCircuitOpen
		}
		return err
	}

	return nil
}

// parseAPIError はエラーレスポンスボディをProblemDetailsとして解釈する
func (c *Client) parseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Message: "unexpected response"}

	var details ProblemDetails
	if err := json.Unmarshal(body, &details); err == nil && details.Title != "" {
		apiErr.Details = &details
	}
	return apiErr
}
