package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/visahub/visahub/internal/config"
)

func newEnabledCache() Cache {
	return NewInMemoryCache(&config.Configuration{Cache: config.CacheConfig{Enabled: true}})
}

func TestInMemoryCacheSetGet(t *testing.T) {
	c := newEnabledCache()
	ctx := context.Background()

	c.Set(ctx, "k1", "v1", time.Minute)

	got, found := c.Get(ctx, "k1")
	assert.True(t, found)
	assert.Equal(t, "v1", got)

	_, found = c.Get(ctx, "missing")
	assert.False(t, found)
}

func TestInMemoryCacheDeleteByPrefix(t *testing.T) {
	c := newEnabledCache()
	ctx := context.Background()

	c.Set(ctx, GenerateKey(PrefixCountry, "public", 1, 10), "countries", time.Minute)
	c.Set(ctx, GenerateKey(PrefixBlogPost, "slug", "visa-guide"), "post", time.Minute)

	c.DeleteByPrefix(ctx, PrefixCountry)

	_, found := c.Get(ctx, GenerateKey(PrefixCountry, "public", 1, 10))
	assert.False(t, found)

	_, found = c.Get(ctx, GenerateKey(PrefixBlogPost, "slug", "visa-guide"))
	assert.True(t, found)
}

func TestInMemoryCacheDisabled(t *testing.T) {
	c := NewInMemoryCache(&config.Configuration{})
	ctx := context.Background()

	c.Set(ctx, "k1", "v1", time.Minute)
	_, found := c.Get(ctx, "k1")
	assert.False(t, found)
}

func TestGenerateKey(t *testing.T) {
	assert.Equal(t, "country:v1::public:true:1:10", GenerateKey(PrefixCountry, "public", true, 1, 10))
	assert.Equal(t, PrefixCountry, GenerateKey(PrefixCountry))
}
