package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdesk/shared"
	"taskdesk/shared/dto"
)

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "session:abc", shared.BuildCacheKey("session", "abc"))
	assert.Equal(t, "limiter:1.2.3.4:curl", shared.BuildCacheKey("limiter", "1.2.3.4", "curl"))
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("some-id", "id", "todos")

	require.Len(t, group.Filters, 1)

	filter, ok := group.Filters[0].(dto.Filter)
	require.True(t, ok)
	assert.Equal(t, "id", filter.Field)
	assert.Equal(t, "some-id", filter.Value)
	assert.Equal(t, "todos", filter.Table)
}

func TestFilterByField(t *testing.T) {
	group := shared.FilterByField("user_id", "user-1", "todos")

	require.Len(t, group.Filters, 1)

	filter, ok := group.Filters[0].(dto.Filter)
	require.True(t, ok)
	assert.Equal(t, "user_id", filter.Field)
	assert.Equal(t, "user-1", filter.Value)
}
