package services

import "log"

// writeAllowed is the second layer of the write gate. AdminOnly
// middleware rejects non-admin requests at the HTTP layer; mutating
// services still check the caller's flag themselves and ignore the
// write (logged, state untouched) when it is false.
func writeAllowed(isAdmin bool, op string) bool {
	if !isAdmin {
		log.Printf("⚠️ %s ignored: caller is not admin", op)
	}
	return isAdmin
}
