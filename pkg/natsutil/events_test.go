package natsutil

import (
	"errors"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

var errTestFixture = errors.New("fixture error")

func TestEnsureSubjectList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		subjects []string
		subject  string
		want     []string
	}{
		{
			name:     "adds subject when list empty",
			subjects: nil,
			subject:  "events.device.fault",
			want:     []string{"events.device.fault"},
		},
		{
			name:     "keeps list when wildcard matches",
			subjects: []string{"events.device.*"},
			subject:  "events.device.fault",
			want:     []string{"events.device.*"},
		},
		{
			name:     "keeps list when greater wildcard matches",
			subjects: []string{"events.>"},
			subject:  "events.device.fault",
			want:     []string{"events.>"},
		},
		{
			name:     "appends when unmatched",
			subjects: []string{"events.sync.*"},
			subject:  "events.device.fault",
			want:     []string{"events.sync.*", "events.device.fault"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := ensureSubjectList(append([]string(nil), tc.subjects...), tc.subject)

			if len(result) != len(tc.want) {
				t.Fatalf("expected %d subjects, got %d", len(tc.want), len(result))
			}

			for i := range tc.want {
				if result[i] != tc.want[i] {
					t.Fatalf("subject %d: expected %q, got %q", i, tc.want[i], result[i])
				}
			}
		})
	}
}

func TestMatchesSubject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		subject string
		want    bool
	}{
		{name: "exact match", pattern: "events.device.fault", subject: "events.device.fault", want: true},
		{name: "single wildcard matches one token", pattern: "events.device.*", subject: "events.device.fault", want: true},
		{name: "single wildcard does not span tokens", pattern: "events.*", subject: "events.device.fault", want: false},
		{name: "greater wildcard matches remainder", pattern: "events.>", subject: "events.device.fault", want: true},
		{name: "greater wildcard matches single token", pattern: "events.>", subject: "events.sync", want: true},
		{name: "pattern longer than subject", pattern: "events.device.fault.extra", subject: "events.device.fault", want: false},
		{name: "subject longer than pattern", pattern: "events.device", subject: "events.device.fault", want: false},
		{name: "mismatched token", pattern: "events.sync.*", subject: "events.device.fault", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := matchesSubject(tc.pattern, tc.subject); got != tc.want {
				t.Fatalf("matchesSubject(%q, %q) = %v, want %v", tc.pattern, tc.subject, got, tc.want)
			}
		})
	}
}

func TestIsStreamMissingErr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "jetstream stream not found", err: jetstream.ErrStreamNotFound, want: true},
		{name: "jetstream no stream response", err: jetstream.ErrNoStreamResponse, want: true},
		{name: "nats stream not found", err: nats.ErrStreamNotFound, want: true},
		{name: "nats no stream response", err: nats.ErrNoStreamResponse, want: true},
		{name: "nats no responders", err: nats.ErrNoResponders, want: true},
		{name: "unrelated error", err: errTestFixture, want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := isStreamMissingErr(tc.err); got != tc.want {
				t.Fatalf("isStreamMissingErr(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestDeviceEventSubject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		eventType string
		want      string
	}{
		{name: "plain type", eventType: "fault", want: "events.device.fault"},
		{name: "uppercase normalized", eventType: "Alarm", want: "events.device.alarm"},
		{name: "dots replaced", eventType: "grid.loss", want: "events.device.grid_loss"},
		{name: "spaces replaced", eventType: "status change", want: "events.device.status_change"},
		{name: "wildcards neutralized", eventType: "a*b>c", want: "events.device.a_b_c"},
		{name: "empty falls back", eventType: "", want: "events.device.unknown"},
		{name: "whitespace only falls back", eventType: "   ", want: "events.device.unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := deviceEventSubject(tc.eventType); got != tc.want {
				t.Fatalf("deviceEventSubject(%q) = %q, want %q", tc.eventType, got, tc.want)
			}
		})
	}
}

func TestDeviceEventSubjectMatchesDefaultStream(t *testing.T) {
	t.Parallel()

	for _, eventType := range []string{"connect", "disconnect", "fault", "grid.loss"} {
		subject := deviceEventSubject(eventType)

		covered := false

		for _, pattern := range defaultStreamSubjects {
			if matchesSubject(pattern, subject) {
				covered = true
				break
			}
		}

		if !covered {
			t.Fatalf("subject %q for event type %q not covered by default stream subjects", subject, eventType)
		}
	}
}
