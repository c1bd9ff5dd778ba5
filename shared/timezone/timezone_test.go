package timezone_test

import (
	"testing"
	"time"

	"tripbook/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFallsBackToUTC(t *testing.T) {
	timezone.Init("Mars/Olympus_Mons")
	assert.Equal(t, time.UTC, timezone.GetLocation())

	timezone.Init("")
	assert.Equal(t, time.UTC, timezone.GetLocation())
}

func TestInitWithLocation(t *testing.T) {
	timezone.Init("Asia/Dhaka")
	t.Cleanup(func() { timezone.Init("UTC") })

	assert.Equal(t, "Asia/Dhaka", timezone.GetLocation().String())
	assert.Equal(t, "Asia/Dhaka", timezone.Now().Location().String())

	noon := time.Date(2025, 3, 1, 6, 0, 0, 0, time.UTC)
	assert.Equal(t, "12:00", timezone.Format(noon, "15:04"))

	parsed, err := timezone.Parse("2006-01-02", "2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Dhaka", parsed.Location().String())
}
