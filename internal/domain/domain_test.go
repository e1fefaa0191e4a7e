package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseServerAction(t *testing.T) {
	tests := []struct {
		in     string
		want   ServerAction
		wantOK bool
	}{
		{"start", ServerActionStart, true},
		{"stop", ServerActionStop, true},
		{"reboot", ServerActionReboot, true},
		{"", "", false},
		{"START", "", false},
		{"terminate", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseServerAction(tt.in)
		assert.Equal(t, tt.wantOK, ok, "action %q", tt.in)
		assert.Equal(t, tt.want, got, "action %q", tt.in)
	}
}

func TestServerAction_TargetStatus(t *testing.T) {
	assert.Equal(t, ServerStatusRunning, ServerActionStart.TargetStatus())
	assert.Equal(t, ServerStatusStopped, ServerActionStop.TargetStatus())

	// reboot оставляет сервер в rebooting, возврата в running нет
	assert.Equal(t, ServerStatusRebooting, ServerActionReboot.TargetStatus())

	assert.Equal(t, ServerStatus(""), ServerAction("bogus").TargetStatus())
}

func TestClientCreate_Normalize(t *testing.T) {
	c := ClientCreate{Name: "Acme", Description: "d"}
	c.Normalize()
	assert.Equal(t, DefaultClientStatus, c.Status)

	c = ClientCreate{Name: "Acme", Description: "d", Status: "paused"}
	c.Normalize()
	assert.Equal(t, "paused", c.Status)
}

func TestProjectCreate_Normalize(t *testing.T) {
	p := ProjectCreate{}
	p.Normalize()
	assert.NotNil(t, p.Technology)
	assert.Empty(t, p.Technology)
}

func TestFallbackStats(t *testing.T) {
	s := FallbackStats()
	assert.Zero(t, s.Clients)
	assert.Zero(t, s.Projects)
	assert.Zero(t, s.Servers)
	assert.Equal(t, 100, s.Health)
	assert.NotNil(t, s.RecentActivity)
	assert.Empty(t, s.RecentActivity)
}
