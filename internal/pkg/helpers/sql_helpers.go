package helpers

import "database/sql"

// Int64Ptr converts a scanned sql.NullInt64 into an optional value.
func Int64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

// StringPtr converts a scanned sql.NullString into an optional value.
func StringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// IntPtr converts a scanned sql.NullInt32 into an optional int.
func IntPtr(n sql.NullInt32) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int32)
	return &v
}
