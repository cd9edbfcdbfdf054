package models

import "fmt"

// BuildValueNotAvailable is printed for build metadata that was not injected
// with -ldflags.
const BuildValueNotAvailable = "N/A"

// AppBuildInfo carries build-time metadata of a pent binary. Values are
// injected with -ldflags "-X main.buildVersion=..." and reported by the
// version endpoint and the client "version" command.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo returns an AppBuildInfo. Empty values are replaced with
// [BuildValueNotAvailable].
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }
func (a AppBuildInfo) BuildDate() string    { return a.buildDate }
func (a AppBuildInfo) BuildCommit() string  { return a.buildCommit }

// String formats the metadata as printed at startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s",
		a.buildVersion, a.buildDate, a.buildCommit)
}

func orNotAvailable(v string) string {
	if v == "" {
		return BuildValueNotAvailable
	}
	return v
}
