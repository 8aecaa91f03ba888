package yookassa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL адрес API ЮKassa
const DefaultBaseURL = "https://api.yookassa.ru/v3"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент API ЮKassa.
// Учетные данные магазина передаются явно через конструктор,
// глобального состояния клиент не держит.
type Client struct {
	baseURL    string
	shopID     string
	secretKey  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ЮKassa
func NewClient(baseURL, shopID, secretKey string, timeout time.Duration, log Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:   baseURL,
		shopID:    shopID,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreatePayment создает платеж.
// idempotenceKey передается в заголовке Idempotence-Key: повтор запроса
// с тем же ключом не приведет к повторному списанию на стороне ЮKassa.
func (c *Client) CreatePayment(ctx context.Context, payment *CreatePaymentRequest, idempotenceKey string) (*Payment, error) {
	url := fmt.Sprintf("%s/payments", c.baseURL)

	body, err := json.Marshal(payment)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotence-Key", idempotenceKey)
	req.SetBasicAuth(c.shopID, c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Таймаут или сетевая ошибка: платеж считается несозданным,
		// вызывающая сторона выполняет компенсацию
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusUnprocessableEntity:
		return nil, c.parseAPIError(resp)
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var created Payment
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if created.ID == "" {
		return nil, fmt.Errorf("%w: payment id is empty", ErrInvalidResponse)
	}

	c.log.Info("CreatePayment: payment created, id=%s, status=%s", created.ID, created.Status)
	return &created, nil
}

// parseAPIError разбирает тело ошибки API в *APIError
func (c *Client) parseAPIError(resp *http.Response) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read error body, status=%d", ErrInvalidResponse, resp.StatusCode)
	}

	var apiErr errorResponse
	if err := json.Unmarshal(raw, &apiErr); err != nil || apiErr.Code == "" {
		return fmt.Errorf("%w: unexpected error body, status=%d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	c.log.Warn("CreatePayment: api rejected request, code=%s, parameter=%s", apiErr.Code, apiErr.Parameter)

	return &APIError{
		Code:        apiErr.Code,
		Description: apiErr.Description,
		Parameter:   apiErr.Parameter,
	}
}
