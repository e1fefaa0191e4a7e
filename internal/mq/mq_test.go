package mq

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/telemetry"
)

func TestNewMessage(t *testing.T) {
	id := uuid.New()
	msg := NewMessage(EventServerAction, ServerActionPayload{ServerID: id, Action: "stop", Status: "stopped"})

	_, err := uuid.Parse(msg.ID)
	require.NoError(t, err)
	assert.Equal(t, EventServerAction, msg.Type)
	assert.False(t, msg.Timestamp.IsZero())

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "server.action", decoded["type"])
	payload := decoded["payload"].(map[string]any)
	assert.Equal(t, id.String(), payload["serverId"])
	assert.Equal(t, "stopped", payload["status"])
}

func TestSecretPayload_HasNoValue(t *testing.T) {
	body, err := json.Marshal(SecretPayload{SecretID: uuid.New(), Key: "DB_PASSWORD", Environment: "prod"})
	require.NoError(t, err)
	assert.NotContains(t, string(body), "value")
}

func TestPublish_ClosedConnection(t *testing.T) {
	conn := &Connection{logger: telemetry.Discard(), closed: true}
	p := NewPublisher(conn, telemetry.Discard())

	err := p.Publish(context.Background(), EventClientCreated, map[string]string{"id": "x"})
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.NoError(t, conn.Close())
}

func TestPublish_CancelledContext(t *testing.T) {
	conn := &Connection{logger: telemetry.Discard()}
	p := NewPublisher(conn, telemetry.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Publish(ctx, EventClientCreated, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
