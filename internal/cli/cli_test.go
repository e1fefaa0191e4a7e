package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// --- Client ---

func TestClient_ListServers(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/servers", r.URL.Path)
		writeJSON(w, http.StatusOK, []domain.Server{{ID: id, Name: "web-1", Status: domain.ServerStatusRunning}})
	}))
	defer srv.Close()

	servers, err := NewClient(srv.URL + "/").ListServers()

	require.NoError(t, err)
	require.Len(t, servers, 1)
	assert.Equal(t, id, servers[0].ID)
}

func TestClient_ServerAction(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/servers/"+id.String()+"/action", r.URL.Path)
		assert.Equal(t, "reboot", r.URL.Query().Get("action"))
		writeJSON(w, http.StatusOK, domain.Server{ID: id, Status: domain.ServerStatusRebooting})
	}))
	defer srv.Close()

	server, err := NewClient(srv.URL).ServerAction(id.String(), domain.ServerActionReboot)

	require.NoError(t, err)
	assert.Equal(t, domain.ServerStatusRebooting, server.Status)
}

func TestClient_RotateSecret(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"value": "new"}, body)
		writeJSON(w, http.StatusOK, domain.Secret{Key: "API_KEY", Value: "new"})
	}))
	defer srv.Close()

	secret, err := NewClient(srv.URL).RotateSecret(uuid.NewString(), "new")

	require.NoError(t, err)
	assert.Equal(t, "new", secret.Value)
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		notFound bool
	}{
		{"detail string", http.StatusNotFound, `{"detail":"Server not found"}`, "Server not found", true},
		{"validation", http.StatusUnprocessableEntity, `{"detail":[{"loc":["body","name"],"msg":"Field required","type":"missing"}]}`, "body.name: Field required", false},
		{"no body", http.StatusInternalServerError, ``, "Internal Server Error", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL).GetServer(uuid.NewString())

			require.Error(t, err)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.Equal(t, tt.notFound, IsNotFound(err))
		})
	}
}

// --- Commands ---

func runCmd(t *testing.T, handler http.HandlerFunc, jsonMode bool, newCmd func(func() *Client, func() *Output) *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	var stdout, stderr bytes.Buffer
	cmd := newCmd(
		func() *Client { return NewClient(srv.URL) },
		func() *Output { return NewOutputTo(&stdout, &stderr, jsonMode) },
	)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestServerListCmd_Table(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []domain.Server{
			{ID: uuid.New(), Name: "web-1", Type: "EC2", Status: domain.ServerStatusRunning, Region: "eu-west-1"},
		})
	}

	stdout, _, err := runCmd(t, handler, false, NewServerCmd, "list")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "PRIVATE_IP")
	assert.Contains(t, lines[2], "web-1")
	assert.Contains(t, lines[2], "running")
}

func TestServerActionCmd_UnknownAction(t *testing.T) {
	called := false
	handler := func(w http.ResponseWriter, r *http.Request) { called = true }

	_, _, err := runCmd(t, handler, false, NewServerCmd, "action", uuid.NewString(), "explode")

	assert.Error(t, err)
	assert.False(t, called)
}

func TestShowCmd_NotFound(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Client not found"})
	}

	_, _, err := runCmd(t, handler, false, NewClientCmd, "show", "abc")

	require.Error(t, err)
	assert.Equal(t, "client abc not found", err.Error())
}

func TestSecretListCmd_MasksValues(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []domain.Secret{{ID: uuid.New(), Key: "STRIPE", Value: "sk_live_1234", Environment: "production"}})
	}

	stdout, _, err := runCmd(t, handler, false, NewSecretCmd, "list")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "sk_live")
	assert.Contains(t, stdout, "********1234")

	stdout, _, err = runCmd(t, handler, true, NewSecretCmd, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sk_live_1234")
}

func TestProjectCreateCmd_InvalidClient(t *testing.T) {
	called := false
	handler := func(w http.ResponseWriter, r *http.Request) { called = true }

	_, _, err := runCmd(t, handler, false, NewProjectCmd, "create",
		"--name", "p", "--client", "nope", "--description", "d", "--repository", "r")

	assert.Error(t, err)
	assert.False(t, called)
}

func TestSettingSetCmd(t *testing.T) {
	id := uuid.New()
	handler := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/settings/"+id.String(), r.URL.Path)
		writeJSON(w, http.StatusOK, domain.Setting{ID: id, Key: "theme", Value: "dark"})
	}

	stdout, stderr, err := runCmd(t, handler, true, NewSettingCmd, "set", id.String(), "dark")

	require.NoError(t, err)
	assert.Contains(t, stderr, "Setting updated")

	var setting domain.Setting
	require.NoError(t, json.Unmarshal([]byte(stdout), &setting))
	assert.Equal(t, "dark", setting.Value)
}

func TestStatsCmd(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stats/dashboard", r.URL.Path)
		writeJSON(w, http.StatusOK, domain.DashboardStats{Clients: 2, Projects: 3, Servers: 4, Health: 98, RecentActivity: []any{}})
	}

	stdout, _, err := runCmd(t, handler, false, NewStatsCmd)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Servers:")
	assert.Contains(t, stdout, "98%")
}

func TestGenerateCmd(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		var req GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "nginx reverse proxy", req.Prompt)
		writeJSON(w, http.StatusOK, GenerateResponse{Code: "\nserver {}\n", Explanation: "done"})
	}

	stdout, stderr, err := runCmd(t, handler, false, NewGenerateCmd, "nginx", "reverse", "proxy")

	require.NoError(t, err)
	assert.Equal(t, "server {}\n", stdout)
	assert.Contains(t, stderr, "done")
}

func TestHealthCmd_Warning(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:   "warning",
			Message:  "API is up but Database is unreachable",
			Database: "disconnected",
			Error:    "connection refused",
		})
	}

	stdout, stderr, err := runCmd(t, handler, false, NewHealthCmd)

	require.NoError(t, err)
	assert.Contains(t, stdout, "disconnected")
	assert.Contains(t, stderr, "Error: connection refused")
}

func TestMask(t *testing.T) {
	assert.Equal(t, "", mask(""))
	assert.Equal(t, "***", mask("abc"))
	assert.Equal(t, "**cdef", mask("abcdef"))
}
