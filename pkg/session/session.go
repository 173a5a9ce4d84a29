package session

import "time"

type Session struct {
	Id      int64     `db:"id"`
	Token   string    `db:"token"`
	Login   string    `db:"login"`
	RoleId  int32     `db:"role_id"`
	Expires time.Time `db:"expires"`
}

// expiredAt reports whether the session is dead at now. A session is valid
// strictly before its expiry instant.
func (s Session) expiredAt(now time.Time) bool {
	return !s.Expires.After(now)
}
