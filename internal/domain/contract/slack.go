package contract

import "github.com/slack-go/slack"

// SlackClient defines the interface for Slack operations
type SlackClient interface {
	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}
