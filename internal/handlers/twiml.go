package handlers

import (
	"github.com/diegoclair/oncall-router/internal/domain"
	"github.com/diegoclair/oncall-router/internal/domain/entity"
	"github.com/twilio/twilio-go/twiml"
)

// fallbackDocument is served when a decision cannot be rendered.
const fallbackDocument = `<?xml version="1.0" encoding="UTF-8"?><Response><Say>` + domain.ErrorMessage + `</Say></Response>`

func renderDecision(decision entity.RouteDecision) (string, error) {
	if decision.Kind == entity.RouteForward && decision.Number != "" {
		return twiml.Voice([]twiml.Element{
			&twiml.VoiceDial{
				InnerElements: []twiml.Element{
					&twiml.VoiceNumber{PhoneNumber: decision.Number},
				},
			},
		})
	}

	message := decision.Message
	if message == "" {
		message = domain.ErrorMessage
	}
	return twiml.Voice([]twiml.Element{
		&twiml.VoiceSay{Message: message},
	})
}
