package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		prompt   string
		contains string
	}{
		{"dockerfile", "please write me a dockerfile", "FROM node:18-alpine"},
		{"terraform", "set up terraform for aws", `resource "aws_instance"`},
		{"nginx", "reverse proxy with NGINX", "proxy_pass http://localhost:3000;"},
		{"case insensitive", "DOCKER compose please", "FROM node:18-alpine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Generate(tt.prompt)
			assert.Contains(t, res.Code, tt.contains)
			assert.Equal(t, Explanation, res.Explanation)
		})
	}
}

func TestGenerate_PriorityOrder(t *testing.T) {
	// docker проверяется раньше terraform и nginx
	res := Generate("nginx in docker managed by terraform")
	assert.Contains(t, res.Code, "FROM node:18-alpine")

	res = Generate("nginx behind terraform")
	assert.Contains(t, res.Code, `resource "aws_instance"`)
}

func TestGenerate_Fallback(t *testing.T) {
	res := Generate("hello")
	assert.Equal(t, Fallback, res.Code)
	assert.Equal(t, Explanation, res.Explanation)

	assert.Equal(t, Fallback, Generate("").Code)
}
