package serve

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_ParseUnmarshal(t *testing.T) {
	input := `{"type":"parse","payload":{"name":"app.conf","text":"server:\n  port 8080","indent":"spaces(4)"}}`

	var req Request
	err := json.Unmarshal([]byte(input), &req)
	require.NoError(t, err)

	assert.Equal(t, "parse", req.Type)

	var payload ParsePayload
	err = json.Unmarshal(req.Payload, &payload)
	require.NoError(t, err)

	assert.Equal(t, "app.conf", payload.Name)
	assert.Equal(t, "server:\n  port 8080", payload.Text)
	assert.Equal(t, "spaces(4)", payload.Indent)
}

func TestResponse_Marshal(t *testing.T) {
	resp := Response{
		Success: true,
		Type:    "ready",
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"success":true`)
	assert.Contains(t, string(data), `"type":"ready"`)
}
