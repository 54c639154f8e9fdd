package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"alunos/internal/app/client/config"
	"alunos/internal/domain/aluno"

	"golang.org/x/exp/slog"
)

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "Alunos-Client/1.0",
	}, nil
}

func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck verifies the server is reachable.
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", h.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("erro ao criar requisição: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("servidor indisponível: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("servidor retornou status: %d", resp.StatusCode)
	}
	return nil
}

func (h *httpClient) Register(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}

	resp, err := h.doRequest(ctx, "POST", "/user/register", body)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}

	resp, err := h.doRequest(ctx, "POST", "/user/login", body)
	if err != nil {
		return "", err
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	if err := h.parseResponse(resp, &loginResp); err != nil {
		return "", err
	}

	h.SetToken(loginResp.Token)
	return loginResp.Token, nil
}

func (h *httpClient) Logout(ctx context.Context) error {
	resp, err := h.doRequest(ctx, "POST", "/user/logout", nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) ListAlunos(ctx context.Context) ([]aluno.Aluno, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/v1/alunos", nil)
	if err != nil {
		return nil, err
	}

	var listResp struct {
		Alunos []aluno.Aluno `json:"alunos"`
		Total  int           `json:"total"`
	}
	if err := h.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}
	return listResp.Alunos, nil
}

func (h *httpClient) CreateAluno(ctx context.Context, p aluno.Payload) (*aluno.Aluno, error) {
	resp, err := h.doRequest(ctx, "POST", "/api/v1/alunos", p)
	if err != nil {
		return nil, err
	}

	var created aluno.Aluno
	if err := h.parseResponse(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (h *httpClient) UpdateAluno(ctx context.Context, id string, p aluno.Payload) (*aluno.Aluno, error) {
	resp, err := h.doRequest(ctx, "PUT", "/api/v1/alunos/"+id, p)
	if err != nil {
		return nil, err
	}

	var updated aluno.Aluno
	if err := h.parseResponse(resp, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (h *httpClient) DeleteAluno(ctx context.Context, id string) error {
	resp, err := h.doRequest(ctx, "DELETE", "/api/v1/alunos/"+id, nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar corpo da requisição: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar requisição: %w", err)
	}
	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta: %w", err)
	}

	h.log.Debug("response received", "status", resp.StatusCode)

	// 401 on a request that carried a token means the stored session is no
	// longer valid (expired or revoked server-side).
	if resp.StatusCode == http.StatusUnauthorized && h.token != "" {
		return ErrNoSession
	}

	if resp.StatusCode >= 400 {
		// huma error bodies carry "detail"; the middlewares use "error".
		var errResp struct {
			Detail string `json:"detail"`
			Error  string `json:"error"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Detail != "" {
				return fmt.Errorf("%s", errResp.Detail)
			}
			if errResp.Error != "" {
				return fmt.Errorf("%s", errResp.Error)
			}
		}
		return fmt.Errorf("servidor retornou status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("erro ao interpretar resposta: %w", err)
		}
	}
	return nil
}
