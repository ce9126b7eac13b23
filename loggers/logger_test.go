package loggers

import (
	"bytes"
	"testing"
	"time"

	"github.com/rickchristie/isolate"
	"github.com/rickchristie/isolate/events"
	"github.com/stretchr/testify/assert"
)

var stamp = time.Date(2025, 2, 15, 14, 30, 5, 120_000_000, time.UTC)

func base(name string) isolate.BaseEvent {
	return isolate.BaseEvent{EventName: name, Timestamp: stamp}
}

func TestLoggerSubscriber(t *testing.T) {
	tests := []struct {
		name     string
		event    isolate.Event
		expected string
	}{
		{
			name: "reset created",
			event: &isolate.ResetCreatedEvent{
				BaseEvent: base(isolate.EventNameResetCreated),
				Style:     isolate.Style{"width": "1px"},
			},
			expected: ">>> [isolate:reset:created]: 2025-02-15 14:30:05.120\n" +
				"declarations: 1\n" +
				"style:\n" +
				"    width: 1px\n",
		},
		{
			name: "selector isolated",
			event: &isolate.SelectorIsolatedEvent{
				BaseEvent: base(isolate.EventNameSelectorIsolated),
				Key:       "link",
				Selector:  ".link-0-1",
				Tier:      isolate.TierSheet,
			},
			expected: ">>> [isolate:selector:isolated]: 2025-02-15 14:30:05.120\n" +
				"key: link\n" +
				"selector: .link-0-1\n" +
				"tier: sheet\n",
		},
		{
			name: "rule skipped with reason",
			event: &isolate.RuleSkippedEvent{
				BaseEvent: base(isolate.EventNameRuleSkipped),
				Key:       "@media print",
				Tier:      isolate.TierGate,
				Reason:    "not a style rule",
			},
			expected: ">>> [isolate:rule:skipped]: 2025-02-15 14:30:05.120\n" +
				"key: '@media print'\n" +
				"reason: not a style rule\n" +
				"tier: gate\n",
		},
		{
			name: "rule skipped by option",
			event: &isolate.RuleSkippedEvent{
				BaseEvent: base(isolate.EventNameRuleSkipped),
				Key:       "item",
				Tier:      isolate.TierRule,
			},
			expected: ">>> [isolate:rule:skipped]: 2025-02-15 14:30:05.120\n" +
				"key: item\n" +
				"tier: rule\n",
		},
		{
			name: "selectors published",
			event: &isolate.SelectorsPublishedEvent{
				BaseEvent: base(isolate.EventNameSelectorsPublished),
				Selector:  ".a,\n.b",
				Count:     2,
				Forced:    true,
			},
			expected: ">>> [isolate:selectors:published]: 2025-02-15 14:30:05.120\n" +
				"count: 2\n" +
				"forced: true\n" +
				"selector: |-\n" +
				"    .a,\n" +
				"    .b\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			registry := events.NewRegistry().Subscribe(NewLoggerSubscriberWithWriter(&buf))

			registry.Dispatch(tc.event)

			assert.Equal(t, tc.expected, buf.String())
		})
	}
}
