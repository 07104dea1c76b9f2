package hints

import "os"

// containerMarkers are files container runtimes create (Docker, Podman).
var containerMarkers = []string{"/.dockerenv", "/run/.containerenv"}

// DetectContainer names the first container signal present, or returns ""
// outside containers. RENDERMD_CONTAINER=1 forces detection. Tests swap it.
var DetectContainer = func() string {
	if os.Getenv("RENDERMD_CONTAINER") == "1" {
		return "RENDERMD_CONTAINER=1"
	}
	for _, marker := range containerMarkers {
		if _, err := os.Stat(marker); err == nil {
			return marker
		}
	}
	if v := os.Getenv("container"); v != "" {
		return "container=" + v
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return "KUBERNETES_SERVICE_HOST"
	}
	return ""
}

// ciVars are set by common CI providers.
var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI", "BUILDKITE"}

// CIProvider returns the first CI variable set, or "".
func CIProvider() string {
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return v
		}
	}
	return ""
}
