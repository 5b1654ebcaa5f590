// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/kiosk/pkg/uuid"
)

func TestNew(t *testing.T) {
	first, second := uuid.New(), uuid.New()

	assert.True(t, uuid.IsValid(first))
	assert.NotEqual(t, first, second)
	assert.Equal(t, byte('7'), first[14], "version nibble")
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"7d0f1f4e-8a2b-4c61-9f0e-2b7f7c3f5a10", true},
		{"7D0F1F4E-8A2B-4C61-9F0E-2B7F7C3F5A10", true},
		{"7d0f1f4e8a2b4c619f0e2b7f7c3f5a10", false},
		{"{7d0f1f4e-8a2b-4c61-9f0e-2b7f7c3f5a10}", false},
		{"urn:uuid:7d0f1f4e-8a2b-4c61-9f0e-2b7f7c3f5a10", false},
		{"7d0f1f4e-8a2b-4c61-9f0e-2b7f7c3f5a1z", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, uuid.IsValid(tt.input), tt.input)
	}
}
