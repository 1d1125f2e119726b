// Package notify posts theme announcements to Slack via an incoming
// webhook.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/vportella/feedbackiq/pkg/types"
)

// SlackNotifier sends messages through a Slack incoming webhook.
type SlackNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewSlackNotifier creates a notifier for the given webhook URL. An
// empty URL yields an unconfigured notifier whose sends are no-ops.
func NewSlackNotifier(webhookURL string) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{},
	}
}

// IsConfigured reports whether a webhook URL is set.
func (n *SlackNotifier) IsConfigured() bool {
	return n.webhookURL != ""
}

// NotifyNewThemes announces themes created by an analysis run.
func (n *SlackNotifier) NotifyNewThemes(themes []types.ThemeRef, analyzed int) error {
	if !n.IsConfigured() || len(themes) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, ":mag: *%d new theme(s)* extracted from %d feedback items:\n", len(themes), analyzed)
	for _, t := range themes {
		fmt.Fprintf(&b, "• %s\n", t.Name)
	}

	return n.send(b.String())
}

// NotifyCriticalTheme announces a manually created critical theme.
func (n *SlackNotifier) NotifyCriticalTheme(theme *types.Theme) error {
	if !n.IsConfigured() {
		return nil
	}

	text := fmt.Sprintf(":rotating_light: *Critical theme created:* %s", theme.Name)
	if theme.Description != "" {
		text += "\n" + theme.Description
	}
	return n.send(text)
}

func (n *SlackNotifier) send(text string) error {
	payload := map[string]string{"text": text}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal Slack message: %w", err)
	}

	resp, err := n.client.Post(n.webhookURL, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to send to Slack: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("Slack API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
