package testutil

import "context"

// MockLLMClient is a mock implementation of llm.Client for testing.
// It records prompts and returns a configured answer or error.
type MockLLMClient struct {
	// MockAnswer is the text to return from Generate
	MockAnswer string
	// MockError is the error to return from Generate
	MockError error
	// Prompts records every prompt passed to Generate
	Prompts []string
}

// Generate mocks an LLM call with the configured answer and error.
func (m *MockLLMClient) Generate(_ context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.MockError != nil {
		return "", m.MockError
	}
	return m.MockAnswer, nil
}

// Enabled reports true; use llm.Disabled to test the disabled state.
func (m *MockLLMClient) Enabled() bool {
	return true
}
