package models

// AppBuildInfo carries build metadata injected at link time via -ldflags.
// Shown by the client in the "about" window.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo creates an AppBuildInfo from raw ldflags values. Empty
// values are allowed and rendered as N/A by the UI.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: version,
		buildDate:    date,
		buildCommit:  commit,
	}
}

// BuildVersion returns the version string set at build time.
func (i AppBuildInfo) BuildVersion() string { return i.buildVersion }

// BuildDate returns the date string set at build time.
func (i AppBuildInfo) BuildDate() string { return i.buildDate }

// BuildCommit returns the commit hash set at build time.
func (i AppBuildInfo) BuildCommit() string { return i.buildCommit }
