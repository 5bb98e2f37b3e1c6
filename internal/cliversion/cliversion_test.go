package cliversion

import (
	"runtime"
	"runtime/debug"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		GoVersion: "go1.23.0",
		Main:      debug.Module{Path: ModulePath, Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abcdef"},
			{Key: "vcs.time", Value: "2024-01-02T03:04:05Z"},
		},
	}
	info := fromBuildInfo(bi, ModulePath)
	require.Equal(t, Info{
		GoVersion: "go1.23.0",
		Commit:    "abcdef",
		Time:      time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}, info)
	require.Equal(t, "dev-abcdef", info.Short())
	require.Equal(t,
		"version dev-abcdef (built with go1.23.0 at Tue, 02 Jan 2024 03:04:05 UTC) "+runtime.GOOS+"/"+runtime.GOARCH,
		info.String(),
	)
}

func TestFromBuildInfoDependency(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Path: "example.com/app"},
		Deps: []*debug.Module{
			{Path: "example.com/other", Version: "v0.1.0"},
			{Path: ModulePath, Version: "v1.2.3"},
		},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abcdef"},
		},
	}
	info := fromBuildInfo(bi, ModulePath)
	require.Equal(t, "v1.2.3", info.Version)
	// Commit belongs to the main module.
	require.Empty(t, info.Commit)
	require.Equal(t, "v1.2.3", info.Short())
}

func TestInfoShortUnknown(t *testing.T) {
	require.Equal(t, "unknown", Info{}.Short())
}
