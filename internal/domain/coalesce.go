package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// IntPtr returns a pointer to a copy of v.
func IntPtr(v int) *int {
	return &v
}
