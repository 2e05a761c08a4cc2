package postgres

// derefString safely dereferences a string pointer, returning empty string if nil
func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// nullableString maps an empty string to a NULL column value.
func nullableString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
