package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/errs"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/model"
)

type IdentityRepository interface {
	ListUsers(ctx context.Context, page, size int) ([]model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	CreateUser(ctx context.Context, u model.User) (model.User, error)
	// UpdateUser keeps the stored password hash when u.PasswordHash is empty.
	UpdateUser(ctx context.Context, id int64, u model.User) (model.User, error)
	DeleteUser(ctx context.Context, id int64) error
	SetMembership(ctx context.Context, userID int64, isMember bool) error

	CreateToken(ctx context.Context, userID int64, tokenHash string) error
	// UserByToken resolves a token hash issued after notBefore and touches last_used_at.
	UserByToken(ctx context.Context, tokenHash string, notBefore time.Time) (model.User, error)
	DeleteTokens(ctx context.Context, userID int64) (int64, error)

	ListMembershipCards(ctx context.Context, page, size int) ([]model.MembershipCard, error)
	GetMembershipCard(ctx context.Context, id int64) (model.MembershipCard, error)
	GetMembershipCardByNumber(ctx context.Context, number string) (model.MembershipCard, error)
	GetMembershipCardByUser(ctx context.Context, userID int64) (model.MembershipCard, error)
	CreateMembershipCard(ctx context.Context, c model.MembershipCard) (model.MembershipCard, error)
	UpdateMembershipCard(ctx context.Context, id int64, c model.MembershipCard) (model.MembershipCard, error)
	DeleteMembershipCard(ctx context.Context, id int64) error
	// ExpireMemberships clears is_member for owners of cards that lapsed before now.
	ExpireMemberships(ctx context.Context, now time.Time) (int64, error)
}

var (
	userColumns = []string{"id", "name", "email", "cin", "phone", "address", "role", "is_member",
		"password_hash", "created_at", "updated_at"}
	membershipCardColumns = []string{"id", "user_id", "card_number", "valid_from", "valid_until", "created_at"}
)

func (r *repository) ListUsers(ctx context.Context, pg, size int) ([]model.User, error) {
	q := qb.Select(userColumns...).From(usersTableName).OrderBy("id")
	return collectList[model.User](ctx, r, "ListUsers", page(q, pg, size))
}

func (r *repository) GetUser(ctx context.Context, id int64) (model.User, error) {
	q := qb.Select(userColumns...).From(usersTableName).Where(sq.Eq{"id": id})
	return collectOne[model.User](ctx, r, "GetUser", q)
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	q := qb.Select(userColumns...).From(usersTableName).Where(sq.Eq{"lower(email)": email})
	return collectOne[model.User](ctx, r, "GetUserByEmail", q)
}

func (r *repository) CreateUser(ctx context.Context, u model.User) (model.User, error) {
	q := qb.Insert(usersTableName).
		SetMap(map[string]any{
			"name":          u.Name,
			"email":         u.Email,
			"cin":           u.CIN,
			"phone":         u.Phone,
			"address":       u.Address,
			"role":          u.Role,
			"is_member":     u.IsMember,
			"password_hash": u.PasswordHash,
		}).
		Suffix(returning(userColumns))
	return collectOne[model.User](ctx, r, "CreateUser", q)
}

func (r *repository) UpdateUser(ctx context.Context, id int64, u model.User) (model.User, error) {
	q := qb.Update(usersTableName).
		SetMap(map[string]any{
			"name":       u.Name,
			"email":      u.Email,
			"cin":        u.CIN,
			"phone":      u.Phone,
			"address":    u.Address,
			"role":       u.Role,
			"updated_at": sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": id}).
		Suffix(returning(userColumns))
	if u.PasswordHash != "" {
		q = q.Set("password_hash", u.PasswordHash)
	}
	return collectOne[model.User](ctx, r, "UpdateUser", q)
}

func (r *repository) DeleteUser(ctx context.Context, id int64) error {
	return r.delete(ctx, "DeleteUser", usersTableName, id)
}

func (r *repository) SetMembership(ctx context.Context, userID int64, isMember bool) error {
	q := qb.Update(usersTableName).
		Set("is_member", isMember).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": userID})
	_, err := r.exec(ctx, "SetMembership", q, errs.ErrNotFound)
	return err
}

func (r *repository) CreateToken(ctx context.Context, userID int64, tokenHash string) error {
	q := qb.Insert(accessTokensTableName).
		Columns("user_id", "token_hash").
		Values(userID, tokenHash)
	_, err := r.exec(ctx, "CreateToken", q, nil)
	return err
}

func (r *repository) UserByToken(ctx context.Context, tokenHash string, notBefore time.Time) (model.User, error) {
	touch := qb.Update(accessTokensTableName).
		Set("last_used_at", sq.Expr("now()")).
		Where(sq.Eq{"token_hash": tokenHash}).
		Where(sq.GtOrEq{"created_at": notBefore}).
		Suffix("RETURNING user_id")
	query, args, err := touch.ToSql()
	if err != nil {
		return model.User{}, err
	}
	var userID int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, errs.ErrUnauthorized
		}
		return model.User{}, err
	}
	return r.GetUser(ctx, userID)
}

func (r *repository) DeleteTokens(ctx context.Context, userID int64) (int64, error) {
	return r.exec(ctx, "DeleteTokens", qb.Delete(accessTokensTableName).Where(sq.Eq{"user_id": userID}), nil)
}

func (r *repository) ListMembershipCards(ctx context.Context, pg, size int) ([]model.MembershipCard, error) {
	q := qb.Select(membershipCardColumns...).From(membershipCardsTableName).OrderBy("id")
	return collectList[model.MembershipCard](ctx, r, "ListMembershipCards", page(q, pg, size))
}

func (r *repository) GetMembershipCard(ctx context.Context, id int64) (model.MembershipCard, error) {
	q := qb.Select(membershipCardColumns...).From(membershipCardsTableName).Where(sq.Eq{"id": id})
	return collectOne[model.MembershipCard](ctx, r, "GetMembershipCard", q)
}

func (r *repository) GetMembershipCardByNumber(ctx context.Context, number string) (model.MembershipCard, error) {
	q := qb.Select(membershipCardColumns...).From(membershipCardsTableName).Where(sq.Eq{"card_number": number})
	return collectOne[model.MembershipCard](ctx, r, "GetMembershipCardByNumber", q)
}

func (r *repository) GetMembershipCardByUser(ctx context.Context, userID int64) (model.MembershipCard, error) {
	q := qb.Select(membershipCardColumns...).From(membershipCardsTableName).Where(sq.Eq{"user_id": userID})
	return collectOne[model.MembershipCard](ctx, r, "GetMembershipCardByUser", q)
}

func (r *repository) CreateMembershipCard(ctx context.Context, c model.MembershipCard) (model.MembershipCard, error) {
	q := qb.Insert(membershipCardsTableName).
		Columns("user_id", "card_number", "valid_from", "valid_until").
		Values(c.UserID, c.CardNumber, c.ValidFrom, c.ValidUntil).
		Suffix(returning(membershipCardColumns))
	return collectOne[model.MembershipCard](ctx, r, "CreateMembershipCard", q)
}

func (r *repository) UpdateMembershipCard(ctx context.Context, id int64, c model.MembershipCard) (model.MembershipCard, error) {
	q := qb.Update(membershipCardsTableName).
		Set("card_number", c.CardNumber).
		Set("valid_from", c.ValidFrom).
		Set("valid_until", c.ValidUntil).
		Where(sq.Eq{"id": id}).
		Suffix(returning(membershipCardColumns))
	return collectOne[model.MembershipCard](ctx, r, "UpdateMembershipCard", q)
}

func (r *repository) DeleteMembershipCard(ctx context.Context, id int64) error {
	return r.delete(ctx, "DeleteMembershipCard", membershipCardsTableName, id)
}

func (r *repository) ExpireMemberships(ctx context.Context, now time.Time) (int64, error) {
	// question placeholders so the outer builder numbers them
	lapsed := sq.Select("user_id").From(membershipCardsTableName).Where(sq.Lt{"valid_until": now})
	sub, args, err := lapsed.ToSql()
	if err != nil {
		return 0, err
	}
	q := qb.Update(usersTableName).
		Set("is_member", false).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"is_member": true}).
		Where("id IN ("+sub+")", args...)
	return r.exec(ctx, "ExpireMemberships", q, nil)
}
