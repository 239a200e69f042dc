package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/attendance/internal/entity"
	"github.com/samandr77/microservices/attendance/internal/mocks"
	"github.com/samandr77/microservices/attendance/internal/service"
)

type staticAccounts map[string]entity.Account

func (s staticAccounts) AccountByIdentifier(_ context.Context, identifier string) (entity.Account, error) {
	acc, ok := s[identifier]
	if !ok {
		return entity.Account{}, entity.ErrNotFound
	}

	return acc, nil
}

func demoDirectory(t *testing.T) staticAccounts {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.MinCost)
	require.NoError(t, err)

	accounts := staticAccounts{}
	for _, a := range []entity.Account{
		{Identifier: "employee1", Role: entity.RoleEmployee},
		{Identifier: "manager1", Role: entity.RoleManager},
		{Identifier: "hr1", Role: entity.RoleHR},
		{Identifier: "remote1", Role: entity.RoleEmployee, Source: entity.AccountSourceIdentity},
		{Identifier: "mirrored1", Role: entity.RoleEmployee, Source: entity.AccountSourceIdentity},
	} {
		a.ID = newID()
		if a.Identifier != "remote1" {
			a.PasswordHash = string(hash)
		}

		accounts[a.Identifier] = a
	}

	return accounts
}

// Only the exact triple of a directory entry is accepted; every other
// combination fails with the same error.
func TestLocalDirectory_Authenticate(t *testing.T) {
	accounts := demoDirectory(t)

	dir, err := service.NewLocalDirectory(accounts, bcrypt.MinCost)
	require.NoError(t, err)

	identifiers := []string{"employee1", "manager1", "hr1", "remote1", "mirrored1", "Manager1", " hr1 ", "nobody", "employee"}
	passwords := []string{"pass123", "Pass123", "pass1234", "pass12", " pass123", ""}

	for _, id := range identifiers {
		for _, pw := range passwords {
			for _, role := range entity.Roles {
				t.Run(fmt.Sprintf("%q/%q/%s", id, pw, role), func(t *testing.T) {
					acc, err := dir.Authenticate(context.Background(), id, pw, role)

					want, known := accounts[entity.NormalizeIdentifier(id)]
					valid := known && want.LocalPassword() && pw == "pass123" && want.Role == role

					if !valid {
						require.ErrorIs(t, err, entity.ErrInvalidCredentials)
						return
					}

					require.NoError(t, err)
					require.Equal(t, want.ID, acc.ID)
				})
			}
		}
	}
}

func TestLocalDirectory_StorageError(t *testing.T) {
	lookup := mocks.NewMockAccountLookup(gomock.NewController(t))
	lookup.EXPECT().AccountByIdentifier(gomock.Any(), "hr1").Return(entity.Account{}, errors.New("connection reset"))

	dir, err := service.NewLocalDirectory(lookup, bcrypt.MinCost)
	require.NoError(t, err)

	_, err = dir.Authenticate(context.Background(), "hr1", "pass123", entity.RoleHR)
	require.Error(t, err)
	require.NotErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestRemoteDirectory_Authenticate(t *testing.T) {
	remote := entity.Account{ID: newID(), Identifier: "Manager1", Role: entity.RoleManager, FullName: "Morgan Manager", PasswordHash: "ignored"}

	t.Run("synced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockIdentityProvider(ctrl)
		sync := mocks.NewMockAccountSync(ctrl)

		client.EXPECT().Authenticate(gomock.Any(), "manager1", "pass123", entity.RoleManager).Return(remote, nil)
		sync.EXPECT().UpsertAccount(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entity.Account) (entity.Account, error) {
				require.Equal(t, "manager1", a.Identifier)
				require.Empty(t, a.PasswordHash)
				require.Equal(t, entity.AccountSourceIdentity, a.Source)

				return a, nil
			})

		acc, err := service.NewRemoteDirectory(client, sync).Authenticate(context.Background(), "manager1", "pass123", entity.RoleManager)
		require.NoError(t, err)
		require.Equal(t, remote.ID, acc.ID)
	})

	// HR promoted manager1 locally; the stored role decides, not the remote one.
	tests := []struct {
		name    string
		role    entity.Role
		wantErr error
	}{
		{name: "stored role accepted", role: entity.RoleHR},
		{name: "remote role rejected", role: entity.RoleManager, wantErr: entity.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockIdentityProvider(ctrl)
			sync := mocks.NewMockAccountSync(ctrl)

			stored := remote
			stored.Role = entity.RoleHR
			stored.PasswordHash = ""

			client.EXPECT().Authenticate(gomock.Any(), "manager1", "pass123", tt.role).Return(remote, nil)
			sync.EXPECT().UpsertAccount(gomock.Any(), gomock.Any()).Return(stored, nil)

			acc, err := service.NewRemoteDirectory(client, sync).
				Authenticate(context.Background(), "manager1", "pass123", tt.role)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, entity.RoleHR, acc.Role)
		})
	}

	t.Run("unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockIdentityProvider(ctrl)

		client.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entity.Account{}, entity.ErrIdentityUnavailable)

		_, err := service.NewRemoteDirectory(client, mocks.NewMockAccountSync(ctrl)).
			Authenticate(context.Background(), "manager1", "pass123", entity.RoleManager)
		require.ErrorIs(t, err, entity.ErrIdentityUnavailable)
	})
}
