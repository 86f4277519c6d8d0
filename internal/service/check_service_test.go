package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckService_ListsPlaceholderChecks(t *testing.T) {
	_, _, checks := newTestServices(t)

	items, err := checks.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "V-001", items[0].Code)
	assert.EqualValues(t, "대기", items[0].Status)
}
