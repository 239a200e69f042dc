package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/attendance/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=directory.go -destination=../mocks/directory.go -package=mocks

type AccountLookup interface {
	AccountByIdentifier(ctx context.Context, identifier string) (entity.Account, error)
}

// LocalDirectory authenticates against bcrypt hashes stored with accounts.
type LocalDirectory struct {
	repo AccountLookup
	// dummyHash is compared when the identifier is unknown so that unknown
	// and known identifiers take the same time.
	dummyHash []byte
}

func NewLocalDirectory(repo AccountLookup, cost int) (*LocalDirectory, error) {
	secret := make([]byte, 32)

	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("read random: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword(secret, cost)
	if err != nil {
		return nil, fmt.Errorf("hash dummy password: %w", err)
	}

	return &LocalDirectory{repo: repo, dummyHash: hash}, nil
}

func (d *LocalDirectory) Authenticate(ctx context.Context, identifier, password string, role entity.Role) (entity.Account, error) {
	acc, err := d.repo.AccountByIdentifier(ctx, entity.NormalizeIdentifier(identifier))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(d.dummyHash, []byte(password))
			return entity.Account{}, entity.ErrInvalidCredentials
		}

		return entity.Account{}, fmt.Errorf("get account: %w", err)
	}

	if !acc.LocalPassword() {
		_ = bcrypt.CompareHashAndPassword(d.dummyHash, []byte(password))
		return entity.Account{}, entity.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password))
	if err != nil {
		return entity.Account{}, entity.ErrInvalidCredentials
	}

	if acc.Role != role {
		return entity.Account{}, entity.ErrInvalidCredentials
	}

	return acc, nil
}

type AccountSync interface {
	UpsertAccount(ctx context.Context, a entity.Account) (entity.Account, error)
}

// RemoteDirectory delegates the credential check to an identity service and
// mirrors the returned profile locally so sessions can reference it. The
// remote role seeds new accounts only; the stored role is the one checked.
type RemoteDirectory struct {
	client IdentityProvider
	repo   AccountSync
}

func NewRemoteDirectory(client IdentityProvider, repo AccountSync) *RemoteDirectory {
	return &RemoteDirectory{client: client, repo: repo}
}

func (d *RemoteDirectory) Authenticate(ctx context.Context, identifier, password string, role entity.Role) (entity.Account, error) {
	acc, err := d.client.Authenticate(ctx, identifier, password, role)
	if err != nil {
		return entity.Account{}, err
	}

	acc.Identifier = entity.NormalizeIdentifier(acc.Identifier)
	acc.PasswordHash = ""
	acc.Source = entity.AccountSourceIdentity

	stored, err := d.repo.UpsertAccount(ctx, acc)
	if err != nil {
		return entity.Account{}, fmt.Errorf("sync account: %w", err)
	}

	if stored.Role != role {
		return entity.Account{}, entity.ErrInvalidCredentials
	}

	return stored, nil
}
