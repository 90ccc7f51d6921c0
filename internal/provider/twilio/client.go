// Package twilio places outbound calls through the Twilio REST API.
package twilio

import (
	"context"
	"errors"
	"fmt"

	"github.com/diegoclair/oncall-router/internal/domain"
	"github.com/diegoclair/oncall-router/internal/domain/entity"
	"github.com/twilio/twilio-go"
	twclient "github.com/twilio/twilio-go/client"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

type callCreator interface {
	CreateCall(params *api.CreateCallParams) (*api.ApiV2010Call, error)
}

// Client implements contract.VoiceClient on top of twilio-go.
type Client struct {
	calls callCreator
}

// New creates a client authenticated with the account SID and auth token.
func New(accountSID, authToken string) (*Client, error) {
	if accountSID == "" || authToken == "" {
		return nil, domain.ErrMissingCredentials
	}

	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &Client{calls: rest.Api}, nil
}

type createResult struct {
	call *api.ApiV2010Call
	err  error
}

// PlaceCall creates the call and returns its SID. The twilio-go client does
// not take a context, so ctx only bounds how long PlaceCall waits.
func (c *Client) PlaceCall(ctx context.Context, call entity.OutboundCall) (string, error) {
	if call.To == "" || call.From == "" {
		return "", errors.New("to and from numbers are required")
	}

	params := &api.CreateCallParams{}
	params.SetTo(call.To)
	params.SetFrom(call.From)
	params.SetUrl(call.ControlURL)
	if call.StatusCallbackURL != "" {
		params.SetStatusCallback(call.StatusCallbackURL)
		params.SetStatusCallbackMethod(call.StatusCallbackMethod)
		params.SetStatusCallbackEvent(call.StatusEvents)
	}

	done := make(chan createResult, 1)
	go func() {
		resp, err := c.calls.CreateCall(params)
		done <- createResult{call: resp, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("placing call to %s: %w", call.To, ctx.Err())
	case res := <-done:
		if res.err != nil {
			return "", describeError(res.err)
		}
		if res.call == nil || res.call.Sid == nil {
			return "", errors.New("missing call sid in provider response")
		}
		return *res.call.Sid, nil
	}
}

func describeError(err error) error {
	var restErr *twclient.TwilioRestError
	if errors.As(err, &restErr) {
		return fmt.Errorf("twilio error %d (status %d): %s: %w", restErr.Code, restErr.Status, restErr.Message, err)
	}
	return fmt.Errorf("twilio request failed: %w", err)
}
