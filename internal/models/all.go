package models

// All lists every persisted model in migration order.
func All() []any {
	return []any{
		&Profile{},
		&Property{},
		&Booking{},
		&Review{},
		&Favorite{},
		&AuditLog{},
	}
}
