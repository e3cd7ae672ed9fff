package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parasnikum/DevSync/pkg/config"
)

func TestSyncWorkerCount(t *testing.T) {
	original := config.AppConfig
	defer func() { config.AppConfig = original }()

	testCases := []struct {
		name       string
		configured int
		expected   int
	}{
		{name: "Configured count", configured: 5, expected: 5},
		{name: "Unset falls back", configured: 0, expected: 2},
		{name: "Negative falls back", configured: -1, expected: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config.AppConfig = &config.Config{}
			config.AppConfig.LeetCode.SyncWorkers = tc.configured
			assert.Equal(t, tc.expected, syncWorkerCount())
		})
	}
}
