package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
)

// --- Response types, которых нет в domain (CLI не импортирует internal/api) ---

// HealthResponse — ответ health-check.
type HealthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// GenerateResponse — сгенерированный код.
type GenerateResponse struct {
	Code        string `json:"code"`
	Explanation string `json:"explanation"`
}

// --- Request types ---

// GenerateRequest — запрос на генерацию кода.
type GenerateRequest struct {
	Prompt  string `json:"prompt"`
	Context string `json:"context,omitempty"`
}

type valueRequest struct {
	Value string `json:"value"`
}

// --- API errors ---

// APIError — ошибка, которую вернул API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// errorResponse — {"detail": "..."} или {"detail": [{loc, msg, type}]}.
type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

type validationIssue struct {
	Loc []string `json:"loc"`
	Msg string   `json:"msg"`
}

// --- Client ---

// Client — HTTP-клиент для API дашборда.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент для API.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// --- Clients ---

// ListClients возвращает клиентов с проектами.
func (c *Client) ListClients() ([]domain.Client, error) {
	var clients []domain.Client
	err := c.get("/api/clients", &clients)
	return clients, err
}

// GetClient возвращает клиента по ID.
func (c *Client) GetClient(id string) (*domain.Client, error) {
	var client domain.Client
	err := c.get("/api/clients/"+url.PathEscape(id), &client)
	return &client, err
}

// CreateClient создаёт клиента.
func (c *Client) CreateClient(req domain.ClientCreate) (*domain.Client, error) {
	var client domain.Client
	err := c.post("/api/clients", req, &client)
	return &client, err
}

// --- Projects ---

// ListProjects возвращает проекты с окружениями.
func (c *Client) ListProjects() ([]domain.Project, error) {
	var projects []domain.Project
	err := c.get("/api/projects", &projects)
	return projects, err
}

// GetProject возвращает проект по ID.
func (c *Client) GetProject(id string) (*domain.Project, error) {
	var project domain.Project
	err := c.get("/api/projects/"+url.PathEscape(id), &project)
	return &project, err
}

// CreateProject создаёт проект.
func (c *Client) CreateProject(req domain.ProjectCreate) (*domain.Project, error) {
	var project domain.Project
	err := c.post("/api/projects", req, &project)
	return &project, err
}

// --- Environments ---

// ListEnvironments возвращает окружения с серверами.
func (c *Client) ListEnvironments() ([]domain.Environment, error) {
	var envs []domain.Environment
	err := c.get("/api/environments", &envs)
	return envs, err
}

// GetEnvironment возвращает окружение по ID.
func (c *Client) GetEnvironment(id string) (*domain.Environment, error) {
	var env domain.Environment
	err := c.get("/api/environments/"+url.PathEscape(id), &env)
	return &env, err
}

// CreateEnvironment создаёт окружение.
func (c *Client) CreateEnvironment(req domain.EnvironmentCreate) (*domain.Environment, error) {
	var env domain.Environment
	err := c.post("/api/environments", req, &env)
	return &env, err
}

// --- Servers ---

// ListServers возвращает серверы.
func (c *Client) ListServers() ([]domain.Server, error) {
	var servers []domain.Server
	err := c.get("/api/servers", &servers)
	return servers, err
}

// GetServer возвращает сервер по ID.
func (c *Client) GetServer(id string) (*domain.Server, error) {
	var server domain.Server
	err := c.get("/api/servers/"+url.PathEscape(id), &server)
	return &server, err
}

// CreateServer создаёт сервер.
func (c *Client) CreateServer(req domain.ServerCreate) (*domain.Server, error) {
	var server domain.Server
	err := c.post("/api/servers", req, &server)
	return &server, err
}

// ServerAction выполняет start, stop или reboot.
func (c *Client) ServerAction(id string, action domain.ServerAction) (*domain.Server, error) {
	params := url.Values{}
	params.Set("action", string(action))

	var server domain.Server
	err := c.post("/api/servers/"+url.PathEscape(id)+"/action?"+params.Encode(), nil, &server)
	return &server, err
}

// --- Monitors ---

// ListMonitors возвращает мониторы.
func (c *Client) ListMonitors() ([]domain.Monitor, error) {
	var monitors []domain.Monitor
	err := c.get("/api/monitors", &monitors)
	return monitors, err
}

// GetMonitor возвращает монитор по ID.
func (c *Client) GetMonitor(id string) (*domain.Monitor, error) {
	var monitor domain.Monitor
	err := c.get("/api/monitors/"+url.PathEscape(id), &monitor)
	return &monitor, err
}

// CreateMonitor создаёт монитор.
func (c *Client) CreateMonitor(req domain.MonitorCreate) (*domain.Monitor, error) {
	var monitor domain.Monitor
	err := c.post("/api/monitors", req, &monitor)
	return &monitor, err
}

// --- Settings ---

// ListSettings возвращает настройки.
func (c *Client) ListSettings() ([]domain.Setting, error) {
	var settings []domain.Setting
	err := c.get("/api/settings", &settings)
	return settings, err
}

// GetSetting возвращает настройку по ID.
func (c *Client) GetSetting(id string) (*domain.Setting, error) {
	var setting domain.Setting
	err := c.get("/api/settings/"+url.PathEscape(id), &setting)
	return &setting, err
}

// CreateSetting создаёт настройку.
func (c *Client) CreateSetting(req domain.SettingCreate) (*domain.Setting, error) {
	var setting domain.Setting
	err := c.post("/api/settings", req, &setting)
	return &setting, err
}

// SetSetting меняет значение настройки.
func (c *Client) SetSetting(id, value string) (*domain.Setting, error) {
	var setting domain.Setting
	err := c.put("/api/settings/"+url.PathEscape(id), valueRequest{Value: value}, &setting)
	return &setting, err
}

// --- Secrets ---

// ListSecrets возвращает секреты.
func (c *Client) ListSecrets() ([]domain.Secret, error) {
	var secrets []domain.Secret
	err := c.get("/api/vault", &secrets)
	return secrets, err
}

// GetSecret возвращает секрет по ID.
func (c *Client) GetSecret(id string) (*domain.Secret, error) {
	var secret domain.Secret
	err := c.get("/api/vault/"+url.PathEscape(id), &secret)
	return &secret, err
}

// CreateSecret создаёт секрет.
func (c *Client) CreateSecret(req domain.SecretCreate) (*domain.Secret, error) {
	var secret domain.Secret
	err := c.post("/api/vault", req, &secret)
	return &secret, err
}

// RotateSecret меняет значение секрета.
func (c *Client) RotateSecret(id, value string) (*domain.Secret, error) {
	var secret domain.Secret
	err := c.put("/api/vault/"+url.PathEscape(id), valueRequest{Value: value}, &secret)
	return &secret, err
}

// --- Dashboard ---

// Stats возвращает сводку дашборда.
func (c *Client) Stats() (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	err := c.get("/api/stats/dashboard", &stats)
	return &stats, err
}

// Generate запрашивает шаблон инфраструктурного кода.
func (c *Client) Generate(req GenerateRequest) (*GenerateResponse, error) {
	var resp GenerateResponse
	err := c.post("/api/ai/generate", req, &resp)
	return &resp, err
}

// Health проверяет состояние API и хранилища.
func (c *Client) Health() (*HealthResponse, error) {
	var resp HealthResponse
	err := c.get("/api/health", &resp)
	return &resp, err
}

// --- HTTP helpers ---

func (c *Client) get(path string, result any) error {
	return c.doJSON(http.MethodGet, path, nil, result)
}

func (c *Client) post(path string, body any, result any) error {
	return c.doJSON(http.MethodPost, path, body, result)
}

func (c *Client) put(path string, body any, result any) error {
	return c.doJSON(http.MethodPut, path, body, result)
}

func (c *Client) doJSON(method, path string, body any, result any) error {
	resp, err := c.do(method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return err
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) do(method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.httpClient.Do(req)
}

func (c *Client) checkError(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil || len(er.Detail) == 0 {
		return apiErr
	}

	var msg string
	if err := json.Unmarshal(er.Detail, &msg); err == nil {
		apiErr.Message = msg
		return apiErr
	}

	var issues []validationIssue
	if err := json.Unmarshal(er.Detail, &issues); err == nil && len(issues) > 0 {
		parts := make([]string, len(issues))
		for i, is := range issues {
			parts[i] = strings.Join(is.Loc, ".") + ": " + is.Msg
		}
		apiErr.Message = strings.Join(parts, "; ")
	}
	return apiErr
}

// IsNotFound сообщает, что API ответил 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
