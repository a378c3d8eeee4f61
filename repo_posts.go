package inkwell

import (
	"context"
	"database/sql"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

// Posts is the posts repository
type Posts interface {
	GetByID(ctx context.Context, id int64) (*Post, error)
	List(ctx context.Context) ([]*Post, error)
	ListByUserID(ctx context.Context, userID int64) ([]*Post, error)

	Create(ctx context.Context, record *Post) (*Post, error)
	CreateTx(ctx context.Context, tx bun.IDB, record *Post) (*Post, error)
	Update(ctx context.Context, record *Post) (*Post, error)
	Delete(ctx context.Context, id int64) error
	DeleteByOwner(ctx context.Context, userID int64) error
	DeleteByOwnerTx(ctx context.Context, tx bun.IDB, userID int64) error
}

type posts struct {
	db *bun.DB
}

var _ Posts = (*posts)(nil)

func NewPostsRepository(db *bun.DB) Posts {
	return &posts{db: db}
}

func newPostNotFound(id int64) error {
	return goerrors.New("post not found", goerrors.CategoryNotFound).
		WithCode(goerrors.CodeNotFound).
		WithTextCode("POST_NOT_FOUND").
		WithMetadata(map[string]any{"id": id})
}

func (p *posts) GetByID(ctx context.Context, id int64) (*Post, error) {
	record := &Post{}
	err := p.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return nil, newPostNotFound(id)
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to select post")
	}

	return record, nil
}

func (p *posts) List(ctx context.Context) ([]*Post, error) {
	var records []*Post
	err := p.db.NewSelect().
		Model(&records).
		Order("pst.id ASC").
		Scan(ctx)

	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to list posts")
	}

	return records, nil
}

func (p *posts) ListByUserID(ctx context.Context, userID int64) ([]*Post, error) {
	var records []*Post
	err := p.db.NewSelect().
		Model(&records).
		Where("?TableAlias.user_id = ?", userID).
		Order("pst.id ASC").
		Scan(ctx)

	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to list posts by user")
	}

	return records, nil
}

func (p *posts) Create(ctx context.Context, record *Post) (*Post, error) {
	return p.CreateTx(ctx, p.db, record)
}

func (p *posts) CreateTx(ctx context.Context, tx bun.IDB, record *Post) (*Post, error) {
	if _, err := tx.NewInsert().Model(record).Exec(ctx); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to insert post")
	}
	return record, nil
}

func (p *posts) Update(ctx context.Context, record *Post) (*Post, error) {
	now := time.Now()
	record.UpdatedAt = &now

	res, err := p.db.NewUpdate().
		Model(record).
		Column("title", "content", "updated_at").
		Where("?TableAlias.id = ?", record.ID).
		Exec(ctx)

	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to update post")
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, newPostNotFound(record.ID)
	}

	return record, nil
}

func (p *posts) Delete(ctx context.Context, id int64) error {
	res, err := p.db.NewDelete().
		Model((*Post)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)

	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to delete post")
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return newPostNotFound(id)
	}

	return nil
}

// DeleteByOwner removes every post belonging to a user, used when the account
// itself is deleted.
func (p *posts) DeleteByOwner(ctx context.Context, userID int64) error {
	return p.DeleteByOwnerTx(ctx, p.db, userID)
}

func (p *posts) DeleteByOwnerTx(ctx context.Context, tx bun.IDB, userID int64) error {
	_, err := tx.NewDelete().
		Model((*Post)(nil)).
		Where("?TableAlias.user_id = ?", userID).
		Exec(ctx)

	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to delete posts by owner")
	}

	return nil
}
