package config

// Pagination bounds for product listings. The backend rejects limits outside
// [MinPageSize, MaxPageSize] and pages above MaxPage, so callers clamp before
// building a request.
const (
	DefaultPage     = 1
	DefaultPageSize = 12
	MinPageSize     = 1
	MaxPageSize     = 100
	MaxPage         = 1000000
)

func clampPageSize(n int) int {
	if n < MinPageSize {
		return MinPageSize
	}
	if n > MaxPageSize {
		return MaxPageSize
	}
	return n
}

// ClampPage normalizes a requested page number to [DefaultPage, MaxPage].
func ClampPage(n int) int {
	if n < DefaultPage {
		return DefaultPage
	}
	if n > MaxPage {
		return MaxPage
	}
	return n
}

// GetAuthSkipperPaths returns /api routes that stay public when auth is
// enabled. Monitors probe the status endpoint without credentials.
func GetAuthSkipperPaths() []string {
	return []string{"/api/status"}
}
