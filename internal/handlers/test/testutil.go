package test

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"

	"github.com/diegoclair/oncall-router/internal/handlers"
	"github.com/diegoclair/oncall-router/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	AuthToken     = "test-auth-token"
	PublicBaseURL = "https://oncall.example.com"
)

type ServiceMocks struct {
	CallRouterMock *mocks.MockCallRouter
}

// GetHandlerTest wires the handler into the full chi router.
func GetHandlerTest(t *testing.T, opts handlers.RouterOptions) (m ServiceMocks, server http.Handler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		CallRouterMock: mocks.NewMockCallRouter(ctrl),
	}

	server = handlers.NewRouter(handlers.New(m.CallRouterMock), opts)

	return
}

// SignedOptions enables signature validation with the test credentials.
func SignedOptions() handlers.RouterOptions {
	return handlers.RouterOptions{
		ValidateSignature: true,
		AuthToken:         AuthToken,
		PublicBaseURL:     PublicBaseURL,
	}
}

// CreateFormRequest builds a provider-style urlencoded POST.
func CreateFormRequest(t *testing.T, path string, form url.Values) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return req
}

// CreateSignedRequest is CreateFormRequest plus a valid X-Twilio-Signature.
func CreateSignedRequest(t *testing.T, path string, form url.Values) *http.Request {
	t.Helper()

	req := CreateFormRequest(t, path, form)
	req.Header.Set("X-Twilio-Signature", generateTwilioSignature(AuthToken, PublicBaseURL+path, form))

	return req
}

func generateTwilioSignature(authToken, fullURL string, form url.Values) string {
	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(fullURL)
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(form.Get(k))
	}

	mac := hmac.New(sha1.New, []byte(authToken))
	mac.Write([]byte(b.String()))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
