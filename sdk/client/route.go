package client

import (
	"context"
)

// Screen identifies the screen a partner-facing frontend should render next.
type Screen string

const (
	ScreenOnboardingStep1 Screen = "onboarding_step_1"
	ScreenOnboardingStep2 Screen = "onboarding_step_2"
	ScreenOnboardingStep3 Screen = "onboarding_step_3"
	ScreenOnboardingStep4 Screen = "onboarding_step_4"
	ScreenDashboard       Screen = "dashboard"
)

const onboardingComplete = 4

// RouteState is the client-side knowledge the routing decision uses when the
// server cannot be reached.
type RouteState struct {
	// HasCompany is the last known answer to whether the partner has a
	// company record.
	HasCompany bool
	// PlanSelected is the last known answer to whether the partner chose a
	// plan.
	PlanSelected bool
}

// NextScreen fetches the onboarding status and decides which screen to show.
// When the fetch fails the decision degrades to the cached RouteState:
// a partner with a selected plan restarts the wizard, a partner with a known
// company goes to the dashboard, and everyone else starts at step one. A
// fetch failure never locks the partner out.
func (c *Client) NextScreen(ctx context.Context, cached RouteState) Screen {
	status, err := c.FetchOnboardingStatus(ctx)
	if err != nil {
		if cached.PlanSelected {
			return ScreenOnboardingStep1
		}
		if cached.HasCompany {
			return ScreenDashboard
		}
		return ScreenOnboardingStep1
	}

	return routeFromStatus(status, cached.PlanSelected)
}

func routeFromStatus(status *OnboardingStatus, planSelected bool) Screen {
	if !status.HasCompany {
		return ScreenOnboardingStep1
	}

	if planSelected && status.Step < onboardingComplete {
		return stepScreen(status.Step + 1)
	}

	return ScreenDashboard
}

func stepScreen(step int) Screen {
	switch step {
	case 1:
		return ScreenOnboardingStep1
	case 2:
		return ScreenOnboardingStep2
	case 3:
		return ScreenOnboardingStep3
	default:
		return ScreenOnboardingStep4
	}
}
