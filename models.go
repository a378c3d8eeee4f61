package inkwell

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the user model. PasswordHash never serializes; the core reads it
// during verification and the register/update paths are the only writers.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            int64      `bun:"id,pk,autoincrement" json:"id,omitempty"`
	Username      string     `bun:"username,notnull,unique" json:"username,omitempty"`
	Email         string     `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash  string     `bun:"password_hash,notnull" json:"-"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Post is the post model. UserID is the owning identity; it is set from the
// authenticated caller at creation and never reassigned.
type Post struct {
	bun.BaseModel `bun:"table:posts,alias:pst"`
	ID            int64      `bun:"id,pk,autoincrement" json:"id,omitempty"`
	Title         string     `bun:"title,notnull" json:"title,omitempty"`
	Content       string     `bun:"content,notnull" json:"content,omitempty"`
	UserID        int64      `bun:"user_id,notnull" json:"user_id,omitempty"`
	User          *User      `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}
