package cache

// Shared cache keys and tags. The cron warm job writes these entries and the
// HTML nav fragment reads them, so both sides must agree on the names.
const (
	// KeyDepartmentList holds the typed department list ([]catalog.Department).
	KeyDepartmentList = "departments:list"
	// KeyDepartmentNav holds the rendered sidebar fragment (string).
	KeyDepartmentNav = "departments:nav"
	// KeyCriticalCSS holds the resolved critical stylesheet (string).
	KeyCriticalCSS = "parts:critical_css"

	// TagDepartments groups every department-derived entry for invalidation.
	TagDepartments = "departments"
)
