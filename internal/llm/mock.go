package llm

import "context"

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response string
	Err      error

	Calls      int
	LastSystem string
	LastPrompt string
}

func (m *MockClient) Generate(ctx context.Context, systemPrompt, prompt string) (string, error) {
	m.Calls++
	m.LastSystem = systemPrompt
	m.LastPrompt = prompt
	return m.Response, m.Err
}
