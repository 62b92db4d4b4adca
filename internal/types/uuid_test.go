package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUUIDWithPrefix(t *testing.T) {
	id := GenerateUUIDWithPrefix(UUID_PREFIX_APPLICATION)
	assert.True(t, strings.HasPrefix(id, "app_"))
	assert.NotEqual(t, id, GenerateUUIDWithPrefix(UUID_PREFIX_APPLICATION))

	assert.NotContains(t, GenerateUUIDWithPrefix(""), "_")
}

func TestGenerateReferenceNumber(t *testing.T) {
	ref := GenerateReferenceNumber(REFERENCE_PREFIX_APPLICATION)
	assert.True(t, strings.HasPrefix(ref, "APP-"))
	assert.Equal(t, ref, strings.ToUpper(ref))
	assert.LessOrEqual(t, len(ref), len("APP-")+8)

	assert.NotEqual(t, ref, GenerateReferenceNumber(REFERENCE_PREFIX_APPLICATION))
}
