package authsvc

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
	authrepo "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/repository/auth"
	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/util/hash"
	jwtutil "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/util/jwt"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrBadInput     = errors.New("bad input")
	ErrInvalidCreds = errors.New("invalid credentials")
	ErrLocked       = errors.New("account locked")
	ErrWrongOldPass = errors.New("wrong old password")
)

type Service interface {
	Register(ctx context.Context, req model.RegisterReq) (*model.User, string, error)
	Login(ctx context.Context, req model.LoginReq) (*model.User, string, error)
	ChangePassword(ctx context.Context, userID int64, oldPass, newPass string) error
}

type service struct {
	db       *sql.DB
	r        authrepo.Repo
	secret   string
	ttlHours int
}

func New(db *sql.DB, r authrepo.Repo, secret string, ttlHours int) Service {
	return &service{db: db, r: r, secret: secret, ttlHours: ttlHours}
}

func (s *service) Register(ctx context.Context, req model.RegisterReq) (_ *model.User, _ string, err error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || len(req.Password) < 6 {
		return nil, "", ErrBadInput
	}
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role == "" {
		role = model.RoleRenter
	}
	if role != model.RoleRenter && role != model.RoleOwner {
		return nil, "", ErrBadInput
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	a := &model.Account{
		Username:     email,
		PasswordHash: hashed,
		Role:         role,
		Status:       model.AccountActive,
	}
	if err = s.r.CreateAccount(ctx, tx, a); err != nil {
		if isUniqueViolation(err) {
			err = ErrEmailTaken
		}
		return nil, "", err
	}

	var phone *string
	if p := strings.TrimSpace(req.Phone); p != "" {
		phone = &p
	}
	u := &model.User{
		AccountID: a.ID,
		FullName:  req.FullName,
		Email:     email,
		Phone:     phone,
		Role:      role,
		Status:    string(a.Status),
	}
	if err = s.r.CreateUser(ctx, tx, u); err != nil {
		if isUniqueViolation(err) {
			err = ErrEmailTaken
		}
		return nil, "", err
	}

	if err = tx.Commit(); err != nil {
		return nil, "", err
	}

	token, err := jwtutil.Issue(s.secret, u.ID, role, s.ttlHours)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
	v := strings.TrimSpace(req.UsernameOrEmail)
	if v == "" || req.Password == "" {
		return nil, "", ErrBadInput
	}

	c, err := s.r.ByUsernameOrEmail(ctx, v)
	if err != nil {
		return nil, "", ErrInvalidCreds
	}
	if !hash.Check(c.PasswordHash, req.Password) {
		return nil, "", ErrInvalidCreds
	}
	if c.Status != string(model.AccountActive) {
		return nil, "", ErrLocked
	}

	token, err := jwtutil.Issue(s.secret, c.UserID, c.Role, s.ttlHours)
	if err != nil {
		return nil, "", err
	}
	u := &model.User{
		ID:        c.UserID,
		AccountID: c.AccountID,
		FullName:  c.FullName,
		Email:     c.Email,
		Role:      c.Role,
		Status:    c.Status,
	}
	return u, token, nil
}

func (s *service) ChangePassword(ctx context.Context, userID int64, oldPass, newPass string) error {
	if len(newPass) < 6 {
		return ErrBadInput
	}
	cur, err := s.r.PasswordHashByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if !hash.Check(cur, oldPass) {
		return ErrWrongOldPass
	}
	hashed, err := hash.HashPassword(newPass)
	if err != nil {
		return err
	}
	return s.r.UpdatePassword(ctx, userID, hashed)
}
