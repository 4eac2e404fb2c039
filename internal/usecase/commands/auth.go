package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bookfair-reservation/internal/domain/user"
	"bookfair-reservation/internal/infra"
	"bookfair-reservation/internal/pkg/clock"
	"bookfair-reservation/internal/pkg/errs"
	"bookfair-reservation/internal/pkg/jwt"
	"bookfair-reservation/internal/pkg/password"
	"bookfair-reservation/internal/usecase/notify"
	"bookfair-reservation/internal/usecase/queries"
	"bookfair-reservation/internal/usecase/shared"
)

var (
	ErrInvalidCredentials = user.ErrInvalidCredentials
	ErrEmailAlreadyExists = errs.NewKind("Email already exists", errs.ErrConflict)
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrPasswordHashing    = errs.New("password hashing failed")
)

const welcomeEmailTimeout = 10 * time.Second

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Genres   string
}

type LoginResult struct {
	Token     string
	ExpiresIn time.Duration
	User      *queries.UserView
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*queries.UserView, error)
	Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error)
	// EnsureAdmin creates an ADMIN account, or promotes the account already
	// registered under that email. created reports which one happened.
	EnsureAdmin(ctx context.Context, in RegisterInput) (view *queries.UserView, created bool, err error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	hasher     password.Hasher
	notifier   notify.Dispatcher
	clock      clock.Clock
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	readStore queries.UserReadStore,
	jwtService *jwt.Service,
	hasher password.Hasher,
	notifier notify.Dispatcher,
	clk clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		hasher:     hasher,
		notifier:   notifier,
		clock:      clk,
	}
}

// Register relies on the unique index on users.email; there is no
// check-then-insert window.
func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*queries.UserView, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}

	hash, err := a.hasher.Hash(pw.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrPasswordHashing)
	}

	u, err := user.NewUser(in.Username, email, hash, user.RoleUser, in.Genres, a.clock.Now())
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Users().Create(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailAlreadyExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), welcomeEmailTimeout)
	defer cancel()
	if err := a.notifier.Welcome(sendCtx, notify.WelcomeEmail{Email: email.Value(), Username: u.Username()}); err != nil {
		slog.Warn("welcome email failed", "user_id", u.ID().String(), "error", err.Error())
	}

	return &queries.UserView{
		ID:        u.ID(),
		Username:  u.Username(),
		Email:     email.Value(),
		Role:      u.Role().String(),
		Genres:    u.Genres(),
		CreatedAt: u.CreatedAt(),
	}, nil
}

// Login reports every failure as ErrInvalidCredentials so callers cannot probe
// which emails exist.
func (a *authCommandsImpl) Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error) {
	view, hash, err := a.readStore.FindCredentials(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := a.hasher.Compare(hash, credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		slog.Error("stored user has an unknown role", "user_id", view.ID.String(), "role", view.Role)
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(view.ID, view.Email, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Token:     token,
		ExpiresIn: a.jwtService.TokenDuration(),
		User:      view,
	}, nil
}

func (a *authCommandsImpl) EnsureAdmin(ctx context.Context, in RegisterInput) (*queries.UserView, bool, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, false, err
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, false, err
	}

	hash, err := a.hasher.Hash(pw.Value())
	if err != nil {
		return nil, false, errs.Mark(err, ErrPasswordHashing)
	}

	u, err := user.NewUser(in.Username, email, hash, user.RoleAdmin, in.Genres, a.clock.Now())
	if err != nil {
		return nil, false, err
	}

	created := true
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Users().Create(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailAlreadyExists
			}
			return err
		}
		return nil
	})
	switch {
	case errors.Is(err, ErrEmailAlreadyExists):
		created = false
		if err := a.promote(ctx, email.Value()); err != nil {
			return nil, false, err
		}
	case err != nil:
		return nil, false, err
	}

	view, err := a.readStore.FindByEmail(ctx, email.Value())
	if err != nil {
		return nil, created, err
	}
	return view, created, nil
}

// promote runs in its own transaction; the failed insert aborted the first one.
func (a *authCommandsImpl) promote(ctx context.Context, email string) error {
	existing, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateRole(ctx, existing.ID, user.RoleAdmin)
	})
}
