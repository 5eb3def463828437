package channelcast

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"go.channelcast.dev/server-sdk/pkg/auth"
)

func TestParseWebhook(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	cc := newTestClient("")
	body := `{"time_ms":1327078148132,"events":[{"name":"channel_occupied","channel":"private-foobar"}]}`

	newRequest := func(key, signature string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/channelcast/webhooks", strings.NewReader(body))
		req.Header.Set(WebhookKeyHeader, key)
		req.Header.Set(WebhookSignatureHeader, signature)
		return req
	}

	signature := auth.Sign([]byte(testCredentials.Secret), []byte(body))

	payload, err := cc.ParseWebhook(newRequest(testCredentials.Key, signature))
	c.Assert(err, qt.IsNil)
	c.Assert(payload.TimeMs, qt.Equals, int64(1327078148132))
	c.Assert(payload.Events, qt.HasLen, 1)
	c.Assert(payload.Events[0].Name, qt.Equals, "channel_occupied")
	c.Assert(payload.Events[0].Channel, qt.Equals, "private-foobar")
	c.Assert(payload.Time().UnixMilli(), qt.Equals, int64(1327078148132))

	_, err = cc.ParseWebhook(newRequest("another-key", signature))
	c.Assert(err, qt.ErrorIs, auth.ErrUnknownKey)

	_, err = cc.ParseWebhook(newRequest(testCredentials.Key, "deadbeef"))
	c.Assert(err, qt.ErrorIs, auth.ErrInvalidSignature)
}
