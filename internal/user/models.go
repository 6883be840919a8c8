package user

import "time"

type User struct {
	UserID    int64
	FirstName string
	Downloads int
	CreatedAt time.Time
}

type DBUser struct {
	UserID    int64     `db:"user_id"`
	FirstName string    `db:"first_name"`
	Downloads int       `db:"downloads"`
	CreatedAt time.Time `db:"created_at"`
}
