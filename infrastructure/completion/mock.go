package completion

import (
	"context"
	"fmt"

	"valet-backend/domain/prompt"
)

// MockClient fabricates replies without any network call. Used for offline
// operation and tests. The reply embeds the user's input verbatim so it is
// fully deterministic.
type MockClient struct{}

// NewMockClient creates the offline completion client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Complete returns a templated reply built from the last user message.
func (c *MockClient) Complete(ctx context.Context, msgs []prompt.Message) (string, error) {
	input := ""
	for _, m := range msgs {
		if m.Role == prompt.RoleUser {
			input = m.Content
		}
	}
	return fmt.Sprintf("Very good, master. Regarding %q: I am running offline, but I have taken note.", input), nil
}
