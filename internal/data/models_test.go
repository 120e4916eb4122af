package data

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHomeResponse(t *testing.T) {
	resp := NewHomeResponse()
	assert.Equal(t, "Hello from Flask!", resp.Message)
	assert.Equal(t, "running", resp.Status)

	js, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Equal(t, `{"message":"Hello from Flask!","status":"running"}`, string(js))
}

func TestNewHealthResponse(t *testing.T) {
	js, err := json.Marshal(NewHealthResponse())
	require.NoError(t, err)
	assert.Equal(t, `{"status":"healthy"}`, string(js))
}

func TestNewInfoResponse(t *testing.T) {
	tests := []struct {
		name string
		app  string
		env  string
		want string
	}{
		{"development", "ci-pipeline-demo", "development", `{"app":"ci-pipeline-demo","environment":"development"}`},
		{"production", "orders", "production", `{"app":"orders","environment":"production"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewInfoResponse(tt.app, tt.env)
			assert.Equal(t, tt.app, resp.App)
			assert.Equal(t, tt.env, resp.Environment)

			js, err := json.Marshal(resp)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(js))
		})
	}
}
