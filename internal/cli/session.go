package cli

import (
	"context"
	"log/slog"

	"github.com/primalhq/primal/internal/command"
	"github.com/primalhq/primal/internal/kv"
	"github.com/primalhq/primal/internal/store"
)

// session is one open store: database handle, loaded state, and the
// command handler over them. One CLI invocation is one session, so the
// logged-in flag naturally lives and dies with the process.
type session struct {
	db      *kv.Store
	handler *command.Handler
}

func (s *session) close() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

// openSession opens the database and loads the state. It does not
// authenticate; read-only commands work without a password.
func openSession(ctx context.Context, opts *RootOptions) (*session, error) {
	db, err := kv.Open(opts.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	st, err := store.Load(ctx, db, store.SystemClock{})
	if err != nil {
		db.Close()
		return nil, WrapExitError(ExitCommandError, "failed to load state", err)
	}
	slog.Debug("session opened", "db", opts.Database, "firstRun", st.FirstRun())
	return &session{
		db:      db,
		handler: command.New(st, db, slog.Default()),
	}, nil
}

// openAuthedSession opens the database and logs the session in with the
// configured password. On a fresh store the password becomes the new
// master password (first-run setup).
func openAuthedSession(ctx context.Context, opts *RootOptions) (*session, error) {
	s, err := openSession(ctx, opts)
	if err != nil {
		return nil, err
	}
	if opts.Password == "" {
		s.close()
		return nil, WrapExitError(ExitFailure, "a master password is required: pass --password or set PRIMAL_PASSWORD", nil)
	}
	if err := s.handler.Login(ctx, opts.Password); err != nil {
		s.close()
		return nil, WrapExitError(ExitFailure, "login failed", err)
	}
	return s, nil
}
