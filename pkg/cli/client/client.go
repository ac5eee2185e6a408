package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/LENAX/ppm/pkg/api/dto"
)

// 资源路径
const (
	Applicants = "applicants"
	Addresses  = "addresses"
	Contacts   = "contacts"
)

// APIError 服务端返回的错误
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// Client PPM HTTP API客户端
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New 创建客户端
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// List 列出资源下全部记录
func List[T any](c *Client, resource string) (*dto.ListResponse[T], error) {
	var resp dto.APIResponse[dto.ListResponse[T]]
	if err := c.do(http.MethodGet, recordPath(resource, 0), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Get 获取单条记录
func Get[T any](c *Client, resource string, id int64) (*T, error) {
	var resp dto.APIResponse[T]
	if err := c.do(http.MethodGet, recordPath(resource, id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Create 创建记录；id大于0时以指定ID创建
func Create[T any](c *Client, resource string, id int64, body any) (*T, error) {
	var resp dto.APIResponse[T]
	if err := c.do(http.MethodPost, recordPath(resource, id), body, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Update 更新记录
func Update[T any](c *Client, resource string, id int64, body any) (*T, error) {
	var resp dto.APIResponse[T]
	if err := c.do(http.MethodPut, recordPath(resource, id), body, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Delete 删除记录
func Delete(c *Client, resource string, id int64) error {
	var resp dto.APIResponse[dto.DeleteResponse]
	return c.do(http.MethodDelete, recordPath(resource, id), nil, &resp)
}

// Health 健康检查
func (c *Client) Health() (*dto.HealthResponse, error) {
	var resp dto.APIResponse[dto.HealthResponse]
	if err := c.do(http.MethodGet, "/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func recordPath(resource string, id int64) string {
	if id > 0 {
		return fmt.Sprintf("/api/v1/%s/%d", resource, id)
	}
	return "/api/v1/" + resource
}

func (c *Client) do(method, path string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("序列化请求体失败: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("创建请求失败: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP请求失败: %w", err)
	}
	defer resp.Body.Close()

	return parseResponse(resp, result)
}

func parseResponse(resp *http.Response, result any) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("读取响应体失败: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr dto.APIResponse[any]
		if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Message == "" {
			return &APIError{Status: resp.StatusCode, Message: string(body)}
		}
		return &APIError{Status: resp.StatusCode, Message: apiErr.Message}
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("解析响应失败: %w, body: %s", err, string(body))
	}
	return nil
}
