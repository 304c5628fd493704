package core

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const mockIDLength = 10

// newMockID generates a mock ID in format mock-{nanoid(10)}.
func newMockID() (string, error) {
	id, err := gonanoid.New(mockIDLength)
	if err != nil {
		return "", fmt.Errorf("generating mock id: %w", err)
	}

	return "mock-" + id, nil
}
