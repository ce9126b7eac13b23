// Package loggers provides an event subscriber that writes every isolate
// plugin event as YAML.
package loggers

import (
	"fmt"
	"io"
	"os"

	"github.com/rickchristie/isolate"
	"gopkg.in/yaml.v3"
)

// LoggerSubscriber implements all isolate subscriber interfaces and logs each
// event with its timestamp followed by a YAML body. Nothing is truncated.
type LoggerSubscriber struct {
	out io.Writer
}

// NewLoggerSubscriber creates a LoggerSubscriber that writes to stdout.
func NewLoggerSubscriber() *LoggerSubscriber {
	return &LoggerSubscriber{
		out: os.Stdout,
	}
}

// NewLoggerSubscriberWithWriter creates a LoggerSubscriber that writes to w.
func NewLoggerSubscriberWithWriter(w io.Writer) *LoggerSubscriber {
	return &LoggerSubscriber{
		out: w,
	}
}

// logEvent logs an event header with timestamp.
func (s *LoggerSubscriber) logEvent(base isolate.BaseEvent) {
	timestamp := base.Timestamp.Format("2006-01-02 15:04:05.000")
	fmt.Fprintf(s.out, ">>> [%s]: %s\n", base.EventName, timestamp)
}

func (s *LoggerSubscriber) logYAML(v any) {
	data, err := yaml.Marshal(v)
	if err != nil {
		fmt.Fprintf(s.out, "(failed to marshal: %v)\n", err)
		return
	}
	fmt.Fprint(s.out, string(data))
}

// OnResetCreated logs the resolved reset style.
func (s *LoggerSubscriber) OnResetCreated(event *isolate.ResetCreatedEvent) {
	s.logEvent(event.BaseEvent)
	s.logYAML(map[string]any{
		"declarations": len(event.Style),
		"style":        map[string]any(event.Style),
	})
}

// OnSelectorIsolated logs the rule and selector that joined the reset rule.
func (s *LoggerSubscriber) OnSelectorIsolated(event *isolate.SelectorIsolatedEvent) {
	s.logEvent(event.BaseEvent)
	s.logYAML(map[string]any{
		"key":      event.Key,
		"selector": event.Selector,
		"tier":     string(event.Tier),
	})
}

// OnRuleSkipped logs the rule and why it was left out.
func (s *LoggerSubscriber) OnRuleSkipped(event *isolate.RuleSkippedEvent) {
	s.logEvent(event.BaseEvent)
	data := map[string]any{
		"key":  event.Key,
		"tier": string(event.Tier),
	}
	if event.Reason != "" {
		data["reason"] = event.Reason
	}
	s.logYAML(data)
}

// OnSelectorsPublished logs the full selector that was written.
func (s *LoggerSubscriber) OnSelectorsPublished(event *isolate.SelectorsPublishedEvent) {
	s.logEvent(event.BaseEvent)
	s.logYAML(map[string]any{
		"count":    event.Count,
		"forced":   event.Forced,
		"selector": event.Selector,
	})
}

// Compile-time checks.
var (
	_ isolate.ResetCreatedSubscriber       = (*LoggerSubscriber)(nil)
	_ isolate.SelectorIsolatedSubscriber   = (*LoggerSubscriber)(nil)
	_ isolate.RuleSkippedSubscriber        = (*LoggerSubscriber)(nil)
	_ isolate.SelectorsPublishedSubscriber = (*LoggerSubscriber)(nil)
)
