package inkwell

import (
	"context"
	"database/sql"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

// Users is the users repository
type Users interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)

	Create(ctx context.Context, record *User) (*User, error)
	CreateTx(ctx context.Context, tx bun.IDB, record *User) (*User, error)
	Update(ctx context.Context, record *User) (*User, error)
	UpdateTx(ctx context.Context, tx bun.IDB, record *User) (*User, error)
	Delete(ctx context.Context, id int64) error
	DeleteTx(ctx context.Context, tx bun.IDB, id int64) error

	ExistsByUsernameTx(ctx context.Context, tx bun.IDB, username string) (bool, error)
	ExistsByEmailTx(ctx context.Context, tx bun.IDB, email string) (bool, error)
}

type users struct {
	db *bun.DB
}

var _ Users = (*users)(nil)

func NewUsersRepository(db *bun.DB) Users {
	return &users{db: db}
}

func newUserNotFound(key string, value any) error {
	return goerrors.New("user not found", goerrors.CategoryNotFound).
		WithCode(goerrors.CodeNotFound).
		WithTextCode("USER_NOT_FOUND").
		WithMetadata(map[string]any{key: value})
}

func (a *users) GetByID(ctx context.Context, id int64) (*User, error) {
	record := &User{}
	err := a.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return nil, newUserNotFound("id", id)
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to select user")
	}

	return record, nil
}

func (a *users) GetByUsername(ctx context.Context, username string) (*User, error) {
	record := &User{}
	err := a.db.NewSelect().
		Model(record).
		Where("?TableAlias.username = ?", username).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return nil, newUserNotFound("username", username)
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to select user")
	}

	return record, nil
}

func (a *users) GetByEmail(ctx context.Context, email string) (*User, error) {
	record := &User{}
	err := a.db.NewSelect().
		Model(record).
		Where("?TableAlias.email = ?", email).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return nil, newUserNotFound("email", email)
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to select user")
	}

	return record, nil
}

func (a *users) List(ctx context.Context) ([]*User, error) {
	var records []*User
	err := a.db.NewSelect().
		Model(&records).
		Order("usr.id ASC").
		Scan(ctx)

	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to list users")
	}

	return records, nil
}

func (a *users) Create(ctx context.Context, record *User) (*User, error) {
	return a.CreateTx(ctx, a.db, record)
}

func (a *users) CreateTx(ctx context.Context, tx bun.IDB, record *User) (*User, error) {
	if _, err := tx.NewInsert().Model(record).Exec(ctx); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryConflict, "failed to insert user")
	}
	return record, nil
}

func (a *users) Update(ctx context.Context, record *User) (*User, error) {
	return a.UpdateTx(ctx, a.db, record)
}

func (a *users) UpdateTx(ctx context.Context, tx bun.IDB, record *User) (*User, error) {
	now := time.Now()
	record.UpdatedAt = &now

	res, err := tx.NewUpdate().
		Model(record).
		Column("email", "password_hash", "updated_at").
		Where("?TableAlias.id = ?", record.ID).
		Exec(ctx)

	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to update user")
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, newUserNotFound("id", record.ID)
	}

	return record, nil
}

func (a *users) Delete(ctx context.Context, id int64) error {
	return a.DeleteTx(ctx, a.db, id)
}

func (a *users) DeleteTx(ctx context.Context, tx bun.IDB, id int64) error {
	res, err := tx.NewDelete().
		Model((*User)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)

	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to delete user")
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return newUserNotFound("id", id)
	}

	return nil
}

func (a *users) ExistsByUsernameTx(ctx context.Context, tx bun.IDB, username string) (bool, error) {
	exists, err := tx.NewSelect().
		Model((*User)(nil)).
		Where("?TableAlias.username = ?", username).
		Exists(ctx)

	if err != nil {
		return false, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to check username")
	}

	return exists, nil
}

func (a *users) ExistsByEmailTx(ctx context.Context, tx bun.IDB, email string) (bool, error) {
	exists, err := tx.NewSelect().
		Model((*User)(nil)).
		Where("?TableAlias.email = ?", email).
		Exists(ctx)

	if err != nil {
		return false, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to check email")
	}

	return exists, nil
}
