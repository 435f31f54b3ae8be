package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/keys"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/store"
	"github.com/MKhiriev/go-key-vault/internal/utils"
	"github.com/MKhiriev/go-key-vault/models"
)

type keyVaultService struct {
	storage store.VaultStorage
	cipher  crypto.KeyCipher
	codec   keys.Codec
	ids     *utils.UUIDGenerator

	logger *logger.Logger
}

func NewKeyVaultService(storage store.VaultStorage, cipher crypto.KeyCipher, codec keys.Codec, logger *logger.Logger) KeyVaultService {
	return &keyVaultService{
		storage: storage,
		cipher:  cipher,
		codec:   codec,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

// startOperation attaches to ctx a logger tagged with op and a fresh
// operation id. Storage logs through it, so every entry of one call
// shares the id.
func (s *keyVaultService) startOperation(ctx context.Context, op string) (context.Context, *logger.Logger) {
	opID := s.ids.Generate()

	log := s.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("op", op).Str("op_id", opID)
	})

	return log.WithContext(ctx), log
}

func (s *keyVaultService) SaveKeyPair(ctx context.Context, request models.SaveKeyPairRequest) error {
	ctx, log := s.startOperation(ctx, opSaveKeyPair)

	publicDER, err := s.codec.MarshalPublicKey(request.PublicKey)
	if err != nil {
		log.Err(err).Str("name", request.Name).Msg("error serializing public key")
		return toServiceError(err)
	}

	envelope, err := s.cipher.SealPrivateKey(request.Password, request.PrivateKey, request.Name)
	if err != nil {
		log.Err(err).Str("name", request.Name).Msg("error sealing private key")
		return toServiceError(err)
	}

	err = s.storage.InTx(ctx, func(ctx context.Context, repo store.KeyRepository) error {
		exists, err := repo.ExistsPublic(ctx, request.Name)
		if err != nil {
			return err
		}
		if exists {
			return ErrKeyExists
		}

		if err = repo.InsertPublic(ctx, request.Name, publicDER); err != nil {
			return err
		}
		return repo.InsertPrivate(ctx, request.Name, request.Owner, envelope)
	})
	if err != nil {
		log.Err(err).Str("name", request.Name).Int64("owner", request.Owner).Msg("key pair was not saved")
		return toServiceError(err)
	}

	log.Info().
		Str("name", request.Name).
		Int64("owner", request.Owner).
		Str("fingerprint", keys.Fingerprint(request.PublicKey)).
		Msg("key pair saved")
	return nil
}

func (s *keyVaultService) GetPublicKey(ctx context.Context, name string) (models.PublicKey, error) {
	ctx, log := s.startOperation(ctx, opGetPublicKey)

	material, err := s.fetchPublic(ctx, log, name)
	if err != nil {
		return nil, err
	}

	key, err := s.codec.ParsePublicKey(material)
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("stored public key does not parse")
		return nil, toServiceError(err)
	}

	return key, nil
}

func (s *keyVaultService) GetPublicKeyMaterial(ctx context.Context, name string) ([]byte, error) {
	ctx, log := s.startOperation(ctx, opGetPublicMaterial)
	return s.fetchPublic(ctx, log, name)
}

func (s *keyVaultService) fetchPublic(ctx context.Context, log *logger.Logger, name string) ([]byte, error) {
	material, err := s.storage.FetchPublic(ctx, name)
	if err != nil {
		log.Debug().Err(err).Str("name", name).Msg("public key was not fetched")
		return nil, toServiceError(err)
	}

	return material, nil
}

func (s *keyVaultService) GetPrivateKey(ctx context.Context, request models.PrivateKeyRequest) (models.PrivateKey, error) {
	ctx, log := s.startOperation(ctx, opGetPrivateKey)

	envelope, err := s.storage.FetchPrivateEnvelope(ctx, request.Name, request.Owner)
	if err != nil {
		log.Debug().Err(err).Str("name", request.Name).Int64("owner", request.Owner).Msg("private key was not fetched")
		return nil, toServiceError(err)
	}

	key, err := s.cipher.OpenPrivateKey(request.Password, envelope, request.Name)
	if err != nil {
		log.Warn().Err(err).Str("name", request.Name).Int64("owner", request.Owner).Msg("private key was not opened")
		return nil, toServiceError(err)
	}

	return key, nil
}

func (s *keyVaultService) DeleteKeyPair(ctx context.Context, name string) error {
	ctx, log := s.startOperation(ctx, opDeleteKeyPair)

	removed, err := s.storage.DeleteByName(ctx, name)
	if err != nil {
		log.Err(err).Str("name", name).Msg("key pair was not deleted")
		return toServiceError(err)
	}

	log.Info().Str("name", name).Int64("removed", removed).Msg("key pair deleted")
	return nil
}

func (s *keyVaultService) DeletePrivateKey(ctx context.Context, name string, owner int64) error {
	ctx, log := s.startOperation(ctx, opDeletePrivateKey)

	removed, err := s.storage.DeletePrivate(ctx, name, owner)
	if err != nil {
		log.Err(err).Str("name", name).Int64("owner", owner).Msg("private key was not deleted")
		return toServiceError(err)
	}

	log.Info().Str("name", name).Int64("owner", owner).Int64("removed", removed).Msg("private key deleted")
	return nil
}

func (s *keyVaultService) ChangePrivateKeyPassword(ctx context.Context, request models.ChangePasswordRequest) error {
	ctx, log := s.startOperation(ctx, opChangePassword)

	err := s.storage.InTx(ctx, func(ctx context.Context, repo store.KeyRepository) error {
		key, err := s.openPrivateKey(ctx, repo, request.Name, request.Owner, request.OldPassword)
		if err != nil {
			return err
		}

		envelope, err := s.cipher.SealPrivateKey(request.NewPassword, key, request.Name)
		if err != nil {
			return fmt.Errorf("error sealing private key: %w", err)
		}

		return repo.UpdatePrivateEnvelope(ctx, request.Name, request.Owner, envelope)
	})
	if err != nil {
		log.Err(err).Str("name", request.Name).Int64("owner", request.Owner).Msg("password was not changed")
		return toServiceError(err)
	}

	log.Info().Str("name", request.Name).Int64("owner", request.Owner).Msg("private key password changed")
	return nil
}

func (s *keyVaultService) CopyPrivateKey(ctx context.Context, request models.CopyPrivateKeyRequest) error {
	ctx, log := s.startOperation(ctx, opCopyPrivateKey)

	err := s.storage.InTx(ctx, func(ctx context.Context, repo store.KeyRepository) error {
		key, err := s.openPrivateKey(ctx, repo, request.Name, request.FromOwner, request.FromPassword)
		if err != nil {
			return err
		}

		envelope, err := s.cipher.SealPrivateKey(request.ToPassword, key, request.Name)
		if err != nil {
			return fmt.Errorf("error sealing private key: %w", err)
		}

		exists, err := repo.ExistsPrivate(ctx, request.Name, request.ToOwner)
		if err != nil {
			return err
		}
		if exists {
			log.Warn().
				Str("name", request.Name).
				Int64("from_owner", request.FromOwner).
				Int64("to_owner", request.ToOwner).
				Msg("overwriting existing private key of destination owner")
		}

		return repo.UpsertPrivate(ctx, request.Name, request.ToOwner, envelope)
	})
	if err != nil {
		log.Err(err).
			Str("name", request.Name).
			Int64("from_owner", request.FromOwner).
			Int64("to_owner", request.ToOwner).
			Msg("private key was not copied")
		return toServiceError(err)
	}

	log.Info().
		Str("name", request.Name).
		Int64("from_owner", request.FromOwner).
		Int64("to_owner", request.ToOwner).
		Msg("private key copied")
	return nil
}

// openPrivateKey is the fetch-and-decrypt step shared by the composite
// operations. Its errors are returned unchanged.
func (s *keyVaultService) openPrivateKey(ctx context.Context, repo store.KeyRepository, name string, owner int64, password models.Password) (models.PrivateKey, error) {
	envelope, err := repo.FetchPrivateEnvelope(ctx, name, owner)
	if err != nil {
		return nil, err
	}

	return s.cipher.OpenPrivateKey(password, envelope, name)
}
