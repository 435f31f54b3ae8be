package service

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/keys"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/mock"
	"github.com/MKhiriev/go-key-vault/internal/store"
	"github.com/MKhiriev/go-key-vault/models"
)

const testKeyName = "deploy-key"

var (
	testEnvelope    = []byte("sealed-envelope")
	testNewEnvelope = []byte("sealed-envelope-2")
	errDriver       = errors.New("driver: connection reset")
)

type vaultMocks struct {
	storage *mock.MockVaultStorage
	repo    *mock.MockKeyRepository
	cipher  *mock.MockKeyCipher
}

func newMockedService(t *testing.T) (KeyVaultService, vaultMocks) {
	t.Helper()
	return newMockedServiceWithLogger(t, logger.Nop())
}

func newMockedServiceWithLogger(t *testing.T, log *logger.Logger) (KeyVaultService, vaultMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := vaultMocks{
		storage: mock.NewMockVaultStorage(ctrl),
		repo:    mock.NewMockKeyRepository(ctrl),
		cipher:  mock.NewMockKeyCipher(ctrl),
	}

	return NewKeyVaultService(m.storage, m.cipher, keys.NewDERCodec(), log), m
}

// expectTx runs the transaction body against the mocked repository.
func (m vaultMocks) expectTx() *gomock.Call {
	return m.storage.EXPECT().
		InTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, store.KeyRepository) error) error {
			return fn(ctx, m.repo)
		})
}

func newKeyPair(t *testing.T) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return pub, priv
}

func TestKeyVaultService_SaveKeyPair(t *testing.T) {
	pub, priv := newKeyPair(t)
	pubDER, err := keys.NewDERCodec().MarshalPublicKey(pub)
	require.NoError(t, err)

	request := models.SaveKeyPairRequest{
		Name:       testKeyName,
		Owner:      1,
		PrivateKey: priv,
		PublicKey:  pub,
		Password:   models.NewPassword("secret"),
	}

	t.Run("stores both halves in one transaction", func(t *testing.T) {
		svc, m := newMockedService(t)

		gomock.InOrder(
			m.cipher.EXPECT().SealPrivateKey(request.Password, priv, testKeyName).Return(testEnvelope, nil),
			m.expectTx(),
			m.repo.EXPECT().ExistsPublic(gomock.Any(), testKeyName).Return(false, nil),
			m.repo.EXPECT().InsertPublic(gomock.Any(), testKeyName, pubDER).Return(nil),
			m.repo.EXPECT().InsertPrivate(gomock.Any(), testKeyName, int64(1), testEnvelope).Return(nil),
		)

		require.NoError(t, svc.SaveKeyPair(context.Background(), request))
	})

	t.Run("existing public key", func(t *testing.T) {
		svc, m := newMockedService(t)

		m.cipher.EXPECT().SealPrivateKey(gomock.Any(), gomock.Any(), gomock.Any()).Return(testEnvelope, nil)
		m.expectTx()
		m.repo.EXPECT().ExistsPublic(gomock.Any(), testKeyName).Return(true, nil)

		err := svc.SaveKeyPair(context.Background(), request)
		assert.ErrorIs(t, err, ErrKeyExists)
	})

	t.Run("concurrent writer wins the unique index", func(t *testing.T) {
		svc, m := newMockedService(t)

		m.cipher.EXPECT().SealPrivateKey(gomock.Any(), gomock.Any(), gomock.Any()).Return(testEnvelope, nil)
		m.expectTx()
		m.repo.EXPECT().ExistsPublic(gomock.Any(), testKeyName).Return(false, nil)
		m.repo.EXPECT().InsertPublic(gomock.Any(), testKeyName, gomock.Any()).
			Return(fmt.Errorf("%w: %w", store.ErrKeyRecordExists, errDriver))

		err := svc.SaveKeyPair(context.Background(), request)
		assert.ErrorIs(t, err, ErrKeyExists)
		assert.ErrorIs(t, err, store.ErrKeyRecordExists)
	})

	t.Run("sealing failure touches no storage", func(t *testing.T) {
		svc, m := newMockedService(t)

		m.cipher.EXPECT().SealPrivateKey(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("encrypt private key: %w", crypto.ErrEmptyPassword))

		err := svc.SaveKeyPair(context.Background(), request)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, m := newMockedService(t)

		m.cipher.EXPECT().SealPrivateKey(gomock.Any(), gomock.Any(), gomock.Any()).Return(testEnvelope, nil)
		m.expectTx()
		m.repo.EXPECT().ExistsPublic(gomock.Any(), testKeyName).Return(false, nil)
		m.repo.EXPECT().InsertPublic(gomock.Any(), testKeyName, gomock.Any()).Return(nil)
		m.repo.EXPECT().InsertPrivate(gomock.Any(), testKeyName, int64(1), testEnvelope).Return(errDriver)

		err := svc.SaveKeyPair(context.Background(), request)
		assert.ErrorIs(t, err, ErrStorageFailure)
		assert.ErrorIs(t, err, errDriver)
	})
}

func TestKeyVaultService_GetPublicKey(t *testing.T) {
	pub, _ := newKeyPair(t)
	pubDER, err := keys.NewDERCodec().MarshalPublicKey(pub)
	require.NoError(t, err)

	t.Run("parses stored material", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.storage.EXPECT().FetchPublic(gomock.Any(), testKeyName).Return(pubDER, nil)

		got, err := svc.GetPublicKey(context.Background(), testKeyName)
		require.NoError(t, err)
		assert.True(t, pub.Equal(got))
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.storage.EXPECT().FetchPublic(gomock.Any(), testKeyName).Return(nil, store.ErrKeyNotFound)

		_, err := svc.GetPublicKey(context.Background(), testKeyName)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("corrupted material", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.storage.EXPECT().FetchPublic(gomock.Any(), testKeyName).Return([]byte("not a key"), nil)

		_, err := svc.GetPublicKey(context.Background(), testKeyName)
		assert.ErrorIs(t, err, ErrInternalConsistency)
	})
}

// decodeLogLines parses the JSON entries written to buf.
func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal(line, &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestKeyVaultService_OperationLogging(t *testing.T) {
	t.Run("storage logs share the operation id", func(t *testing.T) {
		var buf bytes.Buffer
		svc, m := newMockedServiceWithLogger(t, &logger.Logger{Logger: zerolog.New(&buf)})

		m.storage.EXPECT().FetchPublic(gomock.Any(), testKeyName).
			DoAndReturn(func(ctx context.Context, name string) ([]byte, error) {
				logger.FromContext(ctx).Info().Msg("fetching")
				return []byte("not a key"), nil
			})

		_, err := svc.GetPublicKey(context.Background(), testKeyName)
		require.ErrorIs(t, err, ErrInternalConsistency)

		entries := decodeLogLines(t, &buf)
		require.Len(t, entries, 2)
		assert.Equal(t, "fetching", entries[0]["message"])
		assert.Equal(t, "stored public key does not parse", entries[1]["message"])
		for _, entry := range entries {
			assert.Equal(t, opGetPublicKey, entry["op"])
			assert.NotEmpty(t, entry["op_id"])
		}
		assert.Equal(t, entries[0]["op_id"], entries[1]["op_id"])
	})

	t.Run("each call gets its own id", func(t *testing.T) {
		var buf bytes.Buffer
		svc, m := newMockedServiceWithLogger(t, &logger.Logger{Logger: zerolog.New(&buf)})

		m.storage.EXPECT().FetchPublic(gomock.Any(), testKeyName).Return(nil, store.ErrKeyNotFound).Times(2)

		for range 2 {
			_, err := svc.GetPublicKeyMaterial(context.Background(), testKeyName)
			require.ErrorIs(t, err, ErrNotFound)
		}

		entries := decodeLogLines(t, &buf)
		require.Len(t, entries, 2)
		assert.Equal(t, opGetPublicMaterial, entries[0]["op"])
		assert.NotEqual(t, entries[0]["op_id"], entries[1]["op_id"])
	})
}

func TestKeyVaultService_GetPrivateKey(t *testing.T) {
	_, priv := newKeyPair(t)
	request := models.PrivateKeyRequest{Name: testKeyName, Owner: 1, Password: models.NewPassword("secret")}

	tests := []struct {
		name      string
		fetchErr  error
		openErr   error
		wantErr   error
		wantOpens bool
	}{
		{name: "success", wantOpens: true},
		{name: "not found", fetchErr: store.ErrKeyNotFound, wantErr: ErrNotFound},
		{name: "wrong password", openErr: fmt.Errorf("%w: %w", crypto.ErrWrongPassword, crypto.ErrAuthenticationFailed), wantErr: ErrWrongPassword, wantOpens: true},
		{name: "malformed envelope", openErr: crypto.ErrMalformedEnvelope, wantErr: ErrInternalConsistency, wantOpens: true},
		{name: "driver failure", fetchErr: errDriver, wantErr: ErrStorageFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newMockedService(t)

			if tt.fetchErr != nil {
				m.storage.EXPECT().FetchPrivateEnvelope(gomock.Any(), testKeyName, int64(1)).Return(nil, tt.fetchErr)
			} else {
				m.storage.EXPECT().FetchPrivateEnvelope(gomock.Any(), testKeyName, int64(1)).Return(testEnvelope, nil)
			}
			if tt.wantOpens {
				var key models.PrivateKey
				if tt.openErr == nil {
					key = priv
				}
				m.cipher.EXPECT().OpenPrivateKey(request.Password, testEnvelope, testKeyName).Return(key, tt.openErr)
			}

			got, err := svc.GetPrivateKey(context.Background(), request)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.True(t, priv.Equal(got))
		})
	}
}

func TestKeyVaultService_Delete(t *testing.T) {
	t.Run("key pair", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.storage.EXPECT().DeleteByName(gomock.Any(), testKeyName).Return(int64(3), nil)

		assert.NoError(t, svc.DeleteKeyPair(context.Background(), testKeyName))
	})

	t.Run("unknown key pair is not an error", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.storage.EXPECT().DeleteByName(gomock.Any(), testKeyName).Return(int64(0), nil)

		assert.NoError(t, svc.DeleteKeyPair(context.Background(), testKeyName))
	})

	t.Run("private key", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.storage.EXPECT().DeletePrivate(gomock.Any(), testKeyName, int64(2)).Return(int64(0), nil)

		assert.NoError(t, svc.DeletePrivateKey(context.Background(), testKeyName, 2))
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, m := newMockedService(t)
		m.storage.EXPECT().DeletePrivate(gomock.Any(), testKeyName, int64(2)).Return(int64(0), errDriver)

		err := svc.DeletePrivateKey(context.Background(), testKeyName, 2)
		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}

func TestKeyVaultService_ChangePrivateKeyPassword(t *testing.T) {
	_, priv := newKeyPair(t)
	request := models.ChangePasswordRequest{
		Name:        testKeyName,
		Owner:       1,
		OldPassword: models.NewPassword("old"),
		NewPassword: models.NewPassword("new"),
	}

	t.Run("replaces the envelope", func(t *testing.T) {
		svc, m := newMockedService(t)

		gomock.InOrder(
			m.expectTx(),
			m.repo.EXPECT().FetchPrivateEnvelope(gomock.Any(), testKeyName, int64(1)).Return(testEnvelope, nil),
			m.cipher.EXPECT().OpenPrivateKey(request.OldPassword, testEnvelope, testKeyName).Return(priv, nil),
			m.cipher.EXPECT().SealPrivateKey(request.NewPassword, priv, testKeyName).Return(testNewEnvelope, nil),
			m.repo.EXPECT().UpdatePrivateEnvelope(gomock.Any(), testKeyName, int64(1), testNewEnvelope).Return(nil),
		)

		require.NoError(t, svc.ChangePrivateKeyPassword(context.Background(), request))
	})

	t.Run("fetch errors are returned before any write", func(t *testing.T) {
		for _, tc := range []struct {
			name    string
			err     error
			wantErr error
		}{
			{name: "not found", err: store.ErrKeyNotFound, wantErr: ErrNotFound},
			{name: "driver", err: errDriver, wantErr: ErrStorageFailure},
		} {
			t.Run(tc.name, func(t *testing.T) {
				svc, m := newMockedService(t)

				m.expectTx()
				m.repo.EXPECT().FetchPrivateEnvelope(gomock.Any(), testKeyName, int64(1)).Return(nil, tc.err)

				err := svc.ChangePrivateKeyPassword(context.Background(), request)
				assert.ErrorIs(t, err, tc.wantErr)
			})
		}
	})

	t.Run("wrong old password", func(t *testing.T) {
		svc, m := newMockedService(t)

		m.expectTx()
		m.repo.EXPECT().FetchPrivateEnvelope(gomock.Any(), testKeyName, int64(1)).Return(testEnvelope, nil)
		m.cipher.EXPECT().OpenPrivateKey(request.OldPassword, testEnvelope, testKeyName).Return(nil, crypto.ErrWrongPassword)

		err := svc.ChangePrivateKeyPassword(context.Background(), request)
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("update touched an unexpected number of rows", func(t *testing.T) {
		svc, m := newMockedService(t)

		m.expectTx()
		m.repo.EXPECT().FetchPrivateEnvelope(gomock.Any(), testKeyName, int64(1)).Return(testEnvelope, nil)
		m.cipher.EXPECT().OpenPrivateKey(gomock.Any(), gomock.Any(), gomock.Any()).Return(priv, nil)
		m.cipher.EXPECT().SealPrivateKey(gomock.Any(), gomock.Any(), gomock.Any()).Return(testNewEnvelope, nil)
		m.repo.EXPECT().UpdatePrivateEnvelope(gomock.Any(), testKeyName, int64(1), testNewEnvelope).
			Return(fmt.Errorf("%w: 0", store.ErrUnexpectedRowsAffected))

		err := svc.ChangePrivateKeyPassword(context.Background(), request)
		assert.ErrorIs(t, err, ErrInternalConsistency)
	})
}

func TestKeyVaultService_CopyPrivateKey(t *testing.T) {
	_, priv := newKeyPair(t)
	request := models.CopyPrivateKeyRequest{
		Name:         testKeyName,
		FromOwner:    1,
		ToOwner:      2,
		FromPassword: models.NewPassword("alice"),
		ToPassword:   models.NewPassword("bob"),
	}

	expectOpenAndSeal := func(m vaultMocks) {
		m.repo.EXPECT().FetchPrivateEnvelope(gomock.Any(), testKeyName, int64(1)).Return(testEnvelope, nil)
		m.cipher.EXPECT().OpenPrivateKey(request.FromPassword, testEnvelope, testKeyName).Return(priv, nil)
		m.cipher.EXPECT().SealPrivateKey(request.ToPassword, priv, testKeyName).Return(testNewEnvelope, nil)
	}

	t.Run("inserts for a new owner", func(t *testing.T) {
		svc, m := newMockedService(t)

		m.expectTx()
		expectOpenAndSeal(m)
		m.repo.EXPECT().ExistsPrivate(gomock.Any(), testKeyName, int64(2)).Return(false, nil)
		m.repo.EXPECT().UpsertPrivate(gomock.Any(), testKeyName, int64(2), testNewEnvelope).Return(nil)

		require.NoError(t, svc.CopyPrivateKey(context.Background(), request))
	})

	t.Run("overwrites an existing private key", func(t *testing.T) {
		svc, m := newMockedService(t)

		m.expectTx()
		expectOpenAndSeal(m)
		m.repo.EXPECT().ExistsPrivate(gomock.Any(), testKeyName, int64(2)).Return(true, nil)
		m.repo.EXPECT().UpsertPrivate(gomock.Any(), testKeyName, int64(2), testNewEnvelope).Return(nil)

		require.NoError(t, svc.CopyPrivateKey(context.Background(), request))
	})

	t.Run("source errors are returned unchanged", func(t *testing.T) {
		svc, m := newMockedService(t)

		m.expectTx()
		m.repo.EXPECT().FetchPrivateEnvelope(gomock.Any(), testKeyName, int64(1)).Return(testEnvelope, nil)
		m.cipher.EXPECT().OpenPrivateKey(request.FromPassword, testEnvelope, testKeyName).Return(nil, crypto.ErrWrongPassword)

		err := svc.CopyPrivateKey(context.Background(), request)
		assert.ErrorIs(t, err, ErrWrongPassword)
	})
}
