package user

import "time"

type User struct {
	ID        int
	Email     string
	Password  string // bcrypt hash
	CreatedAt time.Time
}
