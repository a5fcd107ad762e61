package natsutil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/heliotrace/solarmesh/pkg/logger"
	"github.com/heliotrace/solarmesh/pkg/models"
)

const (
	cloudEventSpecVersion = "1.0"
	cloudEventSource      = "solarmesh/telemetryd"

	deviceEventType = "com.heliotrace.solarmesh.device.event"
	syncEventType   = "com.heliotrace.solarmesh.device.sync"

	deviceSubjectPrefix = "events.device."
	syncSubject         = "events.sync.devices"
)

// defaultStreamSubjects covers both event families when the stream has to
// be created from scratch.
var defaultStreamSubjects = []string{"events.device.*", "events.sync.*"}

// EventPublisher publishes CloudEvents to a NATS JetStream stream.
type EventPublisher struct {
	js     jetstream.JetStream
	stream string
	logger logger.Logger
}

// NewEventPublisher creates an EventPublisher for the specified stream.
func NewEventPublisher(js jetstream.JetStream, streamName string, log logger.Logger) *EventPublisher {
	return &EventPublisher{
		js:     js,
		stream: streamName,
		logger: log,
	}
}

// PublishDeviceEvent fans a journaled device event out to the control
// plane, one subject per event type.
func (p *EventPublisher) PublishDeviceEvent(ctx context.Context, event *models.DeviceEvent) error {
	if event == nil {
		return nil
	}

	eventTime := event.Time

	return p.publish(ctx, models.CloudEvent{
		SpecVersion:     cloudEventSpecVersion,
		ID:              uuid.NewString(),
		Source:          cloudEventSource,
		Type:            deviceEventType,
		DataContentType: "application/json",
		Subject:         deviceEventSubject(event.EventType),
		Time:            &eventTime,
		Data:            event,
	})
}

// DeviceSyncData is the payload of a device sync CloudEvent.
type DeviceSyncData struct {
	Devices   []*models.Device `json:"devices"`
	Count     int              `json:"count"`
	Timestamp time.Time        `json:"timestamp"`
}

// PublishDeviceSync pushes locally-changed device rows up to the control
// plane.
func (p *EventPublisher) PublishDeviceSync(ctx context.Context, devices []*models.Device) error {
	if len(devices) == 0 {
		return nil
	}

	now := time.Now().UTC()

	return p.publish(ctx, models.CloudEvent{
		SpecVersion:     cloudEventSpecVersion,
		ID:              uuid.NewString(),
		Source:          cloudEventSource,
		Type:            syncEventType,
		DataContentType: "application/json",
		Subject:         syncSubject,
		Time:            &now,
		Data: DeviceSyncData{
			Devices:   devices,
			Count:     len(devices),
			Timestamp: now,
		},
	})
}

func (p *EventPublisher) publish(ctx context.Context, event models.CloudEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal cloud event: %w", err)
	}

	ack, err := p.js.Publish(ctx, event.Subject, payload)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", event.Subject, err)
	}

	p.logger.Debug().
		Str("event_id", event.ID).
		Str("subject", event.Subject).
		Uint64("sequence", ack.Sequence).
		Msg("Published cloud event")

	return nil
}

// deviceEventSubject maps an event type to its NATS subject, normalizing
// characters that would split or wildcard a subject token.
func deviceEventSubject(eventType string) string {
	token := strings.ToLower(strings.TrimSpace(eventType))
	token = strings.Map(func(r rune) rune {
		switch r {
		case '.', ' ', '*', '>':
			return '_'
		default:
			return r
		}
	}, token)

	if token == "" {
		token = "unknown"
	}

	return deviceSubjectPrefix + token
}

// matchesSubject reports whether a subject pattern with NATS wildcards
// covers the given subject.
func matchesSubject(pattern, subject string) bool {
	patternTokens := strings.Split(pattern, ".")
	subjectTokens := strings.Split(subject, ".")

	for i, token := range patternTokens {
		if token == ">" {
			return true
		}

		if i >= len(subjectTokens) {
			return false
		}

		if token != "*" && token != subjectTokens[i] {
			return false
		}
	}

	return len(patternTokens) == len(subjectTokens)
}

// ensureSubjectList appends subject unless an existing entry already
// covers it.
func ensureSubjectList(subjects []string, subject string) []string {
	for _, existing := range subjects {
		if matchesSubject(existing, subject) {
			return subjects
		}
	}

	return append(subjects, subject)
}

// isStreamMissingErr reports whether err means the stream does not exist
// yet, as opposed to a transport failure.
func isStreamMissingErr(err error) bool {
	return errors.Is(err, jetstream.ErrStreamNotFound) ||
		errors.Is(err, jetstream.ErrNoStreamResponse) ||
		errors.Is(err, nats.ErrStreamNotFound) ||
		errors.Is(err, nats.ErrNoStreamResponse) ||
		errors.Is(err, nats.ErrNoResponders)
}

// ConnectWithSecurity creates a NATS connection, applying mTLS settings
// when security is configured.
func ConnectWithSecurity(natsURL string, security *models.SecurityConfig, log logger.Logger, extraOpts ...nats.Option) (*nats.Conn, error) {
	var opts []nats.Option

	if security != nil && security.Mode == "mtls" {
		tlsConf, err := TLSConfig(security)
		if err != nil {
			return nil, fmt.Errorf("failed to build NATS TLS config: %w", err)
		}

		opts = append(opts,
			nats.Secure(tlsConf),
			nats.RootCAs(security.TLS.CAFile),
			nats.ClientCert(security.TLS.CertFile, security.TLS.KeyFile),
		)
	}

	opts = append(opts,
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			log.Error().Err(err).Msg("NATS error")
		}),
		nats.ConnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("Connected to NATS")
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
	)

	opts = append(opts, extraOpts...)

	nc, err := nats.Connect(natsURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return nc, nil
}

// CreateEventPublisher creates an EventPublisher on an existing NATS
// connection, ensuring the stream exists.
func CreateEventPublisher(ctx context.Context, nc *nats.Conn, streamName string, subjects []string, log logger.Logger) (*EventPublisher, error) {
	return CreateEventPublisherWithDomain(ctx, nc, "", streamName, subjects, log)
}

// CreateEventPublisherWithDomain is CreateEventPublisher with optional
// JetStream domain support.
func CreateEventPublisherWithDomain(ctx context.Context, nc *nats.Conn, domain, streamName string, subjects []string, log logger.Logger) (*EventPublisher, error) {
	var (
		js  jetstream.JetStream
		err error
	)

	if domain != "" {
		js, err = jetstream.NewWithDomain(nc, domain)
		if err != nil {
			return nil, fmt.Errorf("failed to create JetStream context with domain %s: %w", domain, err)
		}
	} else {
		js, err = jetstream.New(nc)
		if err != nil {
			return nil, fmt.Errorf("failed to create JetStream context: %w", err)
		}
	}

	if _, err = js.Stream(ctx, streamName); err != nil {
		if !isStreamMissingErr(err) {
			return nil, fmt.Errorf("failed to look up stream %s: %w", streamName, err)
		}

		if len(subjects) == 0 {
			subjects = append([]string(nil), defaultStreamSubjects...)
		}

		for _, subject := range defaultStreamSubjects {
			subjects = ensureSubjectList(subjects, subject)
		}

		if _, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
			Name:     streamName,
			Subjects: subjects,
		}); err != nil {
			return nil, fmt.Errorf("failed to create or get stream %s: %w", streamName, err)
		}

		log.Info().Str("stream", streamName).Strs("subjects", subjects).Msg("Created NATS JetStream stream")
	}

	return NewEventPublisher(js, streamName, log), nil
}
