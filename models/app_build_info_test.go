package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo(" v1.0.0 ", "2026-10-01", "")

	assert.Equal(t, "v1.0.0", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Empty(t, info.BuildCommit())

	withDefaults := info.WithDefaults()
	assert.Equal(t, "v1.0.0", withDefaults.BuildVersion())
	assert.Equal(t, BuildInfoUnknown, withDefaults.BuildCommit())
	assert.Empty(t, info.BuildCommit(), "original is not modified")

	zero := AppBuildInfo{}.WithDefaults()
	assert.Equal(t, BuildInfoUnknown, zero.BuildVersion())
	assert.Equal(t, BuildInfoUnknown, zero.BuildDate())
}
