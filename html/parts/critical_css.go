package parts

import (
	_ "embed"
	"os"

	"github.com/keshavk21/Think41/core/cache"
)

//go:embed assets/critical.css
var embeddedCSS string

// GetCriticalCSS returns the critical CSS inlined into every page head.
// Deployments can override the built-in stylesheet via CRITICAL_CSS_PATH.
func GetCriticalCSS() (string, error) {
	if path := os.Getenv("CRITICAL_CSS_PATH"); path != "" {
		css, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(css), nil
	}
	return embeddedCSS, nil
}

// GetCriticalCSSCached memoizes GetCriticalCSS through the fragment cache so
// an override file is read once per process, not once per page view.
func GetCriticalCSSCached() (string, error) {
	v, err := cache.GetInstance().GetOrSet(cache.KeyCriticalCSS, 0, nil, func() (interface{}, error) {
		css, err := GetCriticalCSS()
		if err != nil {
			return nil, err
		}
		return css, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
