package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Config represents the configuration for the partner lifecycle client
type Config struct {
	// BaseURL is the base URL of the partner lifecycle service
	BaseURL string
	// Token is the bearer token attached to authenticated requests
	Token string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:8080",
		HTTPClient: http.DefaultClient,
		Timeout:    10 * time.Second,
	}
}

// Client is the partner lifecycle service client
type Client struct {
	config *Config
	client *http.Client
}

// NewClient creates a new client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		config: config,
		client: client,
	}
}

// SetToken replaces the bearer token used for authenticated requests.
func (c *Client) SetToken(token string) {
	c.config.Token = token
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents a signup or login response
type AuthResponse struct {
	Ok    bool   `json:"ok"`
	Token string `json:"token"`
	Error string `json:"error,omitempty"`
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Email == "" || req.Password == "" {
		return nil, errors.New("email and password are required")
	}

	endpoint := fmt.Sprintf("%s/api/auth/login", c.config.BaseURL)
	var resp AuthResponse
	if err := c.post(ctx, endpoint, req, &resp); err != nil {
		return nil, err
	}

	if resp.Error != "" {
		return &resp, errors.New(resp.Error)
	}

	c.config.Token = resp.Token
	return &resp, nil
}

// OnboardingStatus represents the partner's persisted onboarding state
type OnboardingStatus struct {
	Step       int             `json:"step"`
	HasCompany bool            `json:"has_company"`
	Company    json.RawMessage `json:"company,omitempty"`
}

// FetchOnboardingStatus retrieves the partner's onboarding state
func (c *Client) FetchOnboardingStatus(ctx context.Context) (*OnboardingStatus, error) {
	endpoint := fmt.Sprintf("%s/api/partner/onboarding/status", c.config.BaseURL)
	var resp OnboardingStatus
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// StepOneRequest carries the identifying fields for onboarding step one
type StepOneRequest struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Location     string `json:"location"`
	ContactEmail string `json:"contact_email"`
}

// StepTwoRequest carries the descriptive fields for onboarding step two
type StepTwoRequest struct {
	Description string `json:"description"`
	Tagline     string `json:"tagline,omitempty"`
}

// StepThreeRequest carries the media gallery for onboarding step three
type StepThreeRequest struct {
	MediaURLs []string `json:"media_urls"`
}

// Evidence carries verification evidence
type Evidence struct {
	CVRNumber       string   `json:"cvr_number"`
	LegalName       string   `json:"legal_name,omitempty"`
	BusinessAddress string   `json:"business_address,omitempty"`
	PermitType      string   `json:"permit_type,omitempty"`
	PermitIssuer    string   `json:"permit_issuer,omitempty"`
	PermitDocuments []string `json:"permit_documents"`
}

// StepFourRequest finalizes onboarding, optionally with evidence attached
type StepFourRequest struct {
	Evidence *Evidence `json:"evidence,omitempty"`
}

// CompanyResponse represents a company returned by the service
type CompanyResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	OnboardingStep     int      `json:"onboarding_step"`
	VerificationStatus string   `json:"verification_status"`
	IsVerified         bool     `json:"is_verified"`
	SelectedPlanTier   *string  `json:"selected_plan_tier,omitempty"`
	MediaURLs          []string `json:"media_urls"`
	Error              string   `json:"error,omitempty"`
}

// SubmitStepOne submits onboarding step one
func (c *Client) SubmitStepOne(ctx context.Context, req *StepOneRequest) (*CompanyResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Name == "" || req.Category == "" || req.Location == "" || req.ContactEmail == "" {
		return nil, errors.New("name, category, location, and contact_email are required")
	}

	return c.submitStep(ctx, 1, req)
}

// SubmitStepTwo submits onboarding step two
func (c *Client) SubmitStepTwo(ctx context.Context, req *StepTwoRequest) (*CompanyResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Description == "" {
		return nil, errors.New("description is required")
	}

	return c.submitStep(ctx, 2, req)
}

// SubmitStepThree submits onboarding step three
func (c *Client) SubmitStepThree(ctx context.Context, req *StepThreeRequest) (*CompanyResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if len(req.MediaURLs) == 0 {
		return nil, errors.New("at least one media URL is required")
	}

	return c.submitStep(ctx, 3, req)
}

// SubmitStepFour submits onboarding step four
func (c *Client) SubmitStepFour(ctx context.Context, req *StepFourRequest) (*CompanyResponse, error) {
	if req == nil {
		req = &StepFourRequest{}
	}
	if req.Evidence != nil {
		if req.Evidence.CVRNumber == "" || len(req.Evidence.PermitDocuments) == 0 {
			return nil, errors.New("cvr_number and at least one permit document are required")
		}
	}

	return c.submitStep(ctx, 4, req)
}

func (c *Client) submitStep(ctx context.Context, step int, req interface{}) (*CompanyResponse, error) {
	endpoint := fmt.Sprintf("%s/api/partner/onboarding/step-%d", c.config.BaseURL, step)
	var resp CompanyResponse
	if err := c.post(ctx, endpoint, req, &resp); err != nil {
		return nil, err
	}

	if resp.Error != "" {
		return &resp, errors.New(resp.Error)
	}

	return &resp, nil
}

// SelectPlanRequest records a plan choice
type SelectPlanRequest struct {
	Tier  string `json:"tier"`
	Cycle string `json:"cycle"`
}

// SelectPlan records the partner's plan choice
func (c *Client) SelectPlan(ctx context.Context, req *SelectPlanRequest) error {
	if req == nil {
		return errors.New("request cannot be nil")
	}
	if req.Tier == "" || req.Cycle == "" {
		return errors.New("tier and cycle are required")
	}

	endpoint := fmt.Sprintf("%s/api/partner/billing/plan", c.config.BaseURL)
	var resp struct {
		Ok    bool   `json:"ok"`
		Error string `json:"error,omitempty"`
	}
	if err := c.post(ctx, endpoint, req, &resp); err != nil {
		return err
	}

	if resp.Error != "" {
		return errors.New(resp.Error)
	}

	return nil
}

// SubmitGrowthRequest asks for growth services by identifier
type SubmitGrowthRequest struct {
	Services []string               `json:"services"`
	Details  map[string]interface{} `json:"details,omitempty"`
}

// GrowthRequestsResponse represents the created or listed growth requests
type GrowthRequestsResponse struct {
	Ok       bool              `json:"ok"`
	Requests []json.RawMessage `json:"requests"`
	Error    string            `json:"error,omitempty"`
}

// SubmitGrowthRequests submits growth service requests
func (c *Client) SubmitGrowthRequests(ctx context.Context, req *SubmitGrowthRequest) (*GrowthRequestsResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if len(req.Services) == 0 {
		return nil, errors.New("at least one service is required")
	}

	endpoint := fmt.Sprintf("%s/api/partner/growth/requests", c.config.BaseURL)
	var resp GrowthRequestsResponse
	if err := c.post(ctx, endpoint, req, &resp); err != nil {
		return nil, err
	}

	if resp.Error != "" {
		return &resp, errors.New(resp.Error)
	}

	return &resp, nil
}

// APIError defines a standardized error response from the API
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (Status: %d)", e.Message, e.StatusCode)
}

// post performs a POST request to the specified endpoint with the given request and unmarshals the response into the specified response object
func (c *Client) post(ctx context.Context, endpoint string, req interface{}, resp interface{}) error {
	// Set up context with timeout
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	// Marshal request to JSON
	reqBody, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	// Create HTTP request
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.config.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	return c.do(httpReq, resp)
}

// get performs a GET request to the specified endpoint and unmarshals the response into the specified response object
func (c *Client) get(ctx context.Context, endpoint string, resp interface{}) error {
	// Set up context with timeout
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	// Create HTTP request
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.config.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	return c.do(httpReq, resp)
}

func (c *Client) do(httpReq *http.Request, resp interface{}) error {
	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	// Check for non-success status code
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		// Try to decode error response
		var apiErr APIError
		if err := json.NewDecoder(httpResp.Body).Decode(&apiErr); err != nil {
			// If we can't decode the error, create a generic one
			return &APIError{
				StatusCode: httpResp.StatusCode,
				Message:    fmt.Sprintf("request failed with status code %d", httpResp.StatusCode),
			}
		}

		apiErr.StatusCode = httpResp.StatusCode
		return &apiErr
	}

	// Decode response
	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
