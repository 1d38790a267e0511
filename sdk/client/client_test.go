package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	// Test with nil config
	client := NewClient(nil)
	if client.config.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected default BaseURL, got %s", client.config.BaseURL)
	}
	if client.client != http.DefaultClient {
		t.Error("Expected default HTTP client")
	}

	// Test with custom config
	customConfig := &Config{
		BaseURL:    "http://example.com",
		Timeout:    5 * time.Second,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
	client = NewClient(customConfig)
	if client.config.BaseURL != "http://example.com" {
		t.Errorf("Expected custom BaseURL, got %s", client.config.BaseURL)
	}
	if client.config.Timeout != 5*time.Second {
		t.Errorf("Expected custom timeout, got %v", client.config.Timeout)
	}
	if client.client != customConfig.HTTPClient {
		t.Error("Expected custom HTTP client")
	}
}

func TestFetchOnboardingStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET request, got %s", r.Method)
		}
		if r.URL.Path != "/api/partner/onboarding/status" {
			t.Errorf("Expected status path, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("Expected bearer token, got %s", r.Header.Get("Authorization"))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(OnboardingStatus{Step: 2, HasCompany: true})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Token: "test-token"})

	status, err := client.FetchOnboardingStatus(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if status.Step != 2 {
		t.Errorf("Expected step 2, got %d", status.Step)
	}
	if !status.HasCompany {
		t.Error("Expected has_company to be true")
	}
}

func TestSubmitStepOne(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/api/partner/onboarding/step-1" {
			t.Errorf("Expected step-1 path, got %s", r.URL.Path)
		}

		var req StepOneRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(CompanyResponse{
			ID:                 "c1",
			Name:               req.Name,
			OnboardingStep:     1,
			VerificationStatus: "unverified",
		})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Token: "test-token"})

	company, err := client.SubmitStepOne(context.Background(), &StepOneRequest{
		Name:         "Harbor Tours",
		Category:     "activities",
		Location:     "Copenhagen",
		ContactEmail: "info@harbortours.example",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if company.Name != "Harbor Tours" {
		t.Errorf("Expected echoed company name, got %s", company.Name)
	}
	if company.OnboardingStep != 1 {
		t.Errorf("Expected step 1, got %d", company.OnboardingStep)
	}

	// Missing fields are rejected before any request is made
	if _, err := client.SubmitStepOne(context.Background(), &StepOneRequest{Name: "X"}); err == nil {
		t.Error("Expected validation error for missing fields")
	}
}

func TestSubmitStepFourValidation(t *testing.T) {
	client := NewClient(nil)

	_, err := client.SubmitStepFour(context.Background(), &StepFourRequest{
		Evidence: &Evidence{CVRNumber: "12345678"},
	})
	if err == nil {
		t.Error("Expected error for evidence without permit documents")
	}
}

func TestAPIErrorDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "Company is already verified"})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Token: "test-token"})

	_, err := client.SubmitStepOne(context.Background(), &StepOneRequest{
		Name:         "Harbor Tours",
		Category:     "activities",
		Location:     "Copenhagen",
		ContactEmail: "info@harbortours.example",
	})
	if err == nil {
		t.Fatal("Expected error")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Company is already verified" {
		t.Errorf("Unexpected message: %s", apiErr.Message)
	}
}

func TestNextScreen(t *testing.T) {
	tests := []struct {
		name     string
		status   *OnboardingStatus
		cached   RouteState
		expected Screen
	}{
		{
			name:     "no company starts at step one",
			status:   &OnboardingStatus{Step: 0, HasCompany: false},
			cached:   RouteState{},
			expected: ScreenOnboardingStep1,
		},
		{
			name:     "plan selected mid wizard resumes next step",
			status:   &OnboardingStatus{Step: 2, HasCompany: true},
			cached:   RouteState{HasCompany: true, PlanSelected: true},
			expected: ScreenOnboardingStep3,
		},
		{
			name:     "complete onboarding goes to dashboard",
			status:   &OnboardingStatus{Step: 4, HasCompany: true},
			cached:   RouteState{HasCompany: true, PlanSelected: true},
			expected: ScreenDashboard,
		},
		{
			name:     "no plan selection goes to dashboard",
			status:   &OnboardingStatus{Step: 1, HasCompany: true},
			cached:   RouteState{HasCompany: true},
			expected: ScreenDashboard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(tt.status)
			}))
			defer server.Close()

			client := NewClient(&Config{BaseURL: server.URL, Token: "test-token"})
			if got := client.NextScreen(context.Background(), tt.cached); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestNextScreenDegraded(t *testing.T) {
	// Server that always fails
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Token: "test-token"})

	// A selected plan restarts the wizard even when the company is known
	got := client.NextScreen(context.Background(), RouteState{HasCompany: true, PlanSelected: true})
	if got != ScreenOnboardingStep1 {
		t.Errorf("Expected step one on degraded path with plan, got %s", got)
	}

	// A known company without a plan falls back to the dashboard
	got = client.NextScreen(context.Background(), RouteState{HasCompany: true})
	if got != ScreenDashboard {
		t.Errorf("Expected dashboard on degraded path with company, got %s", got)
	}

	// No knowledge at all starts from step one
	got = client.NextScreen(context.Background(), RouteState{})
	if got != ScreenOnboardingStep1 {
		t.Errorf("Expected step one on degraded path, got %s", got)
	}
}
