package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "performiq/internal/delivery/context"
	"performiq/internal/domain/service"
	"performiq/internal/infra/httpclient"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/sync-events"

// localHTTPPublisher implements EventPublisher by POSTing Pub/Sub push
// envelopes to a local endpoint, for development without a GCP project.
type localHTTPPublisher struct {
	endpoint string
	client   *httpclient.Client
	logger   *slog.Logger
}

// PushMessage is the envelope Google Pub/Sub uses when pushing to HTTP endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, client *httpclient.Client, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   client,
		logger:   logger,
	}
}

// NotifySync wraps the event in a push envelope and POSTs it once.
func (p *localHTTPPublisher) NotifySync(ctx context.Context, event *service.SyncEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PushMessage{Subscription: localSubscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = eventAttributes(event)

	headers := map[string]string{}
	if event.RequestID != "" {
		headers[deliverycontext.HeaderXRequestID] = event.RequestID
	}

	if err := p.client.PostJSON(ctx, p.endpoint, pushMsg, headers, nil); err != nil {
		return errors.Wrap(err, "push sync event")
	}

	p.logger.Debug("[LocalPubSub] Sync event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("org_id", event.OrgID.String()),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
