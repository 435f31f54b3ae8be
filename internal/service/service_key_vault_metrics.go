package service

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-key-vault/models"
)

const (
	opSaveKeyPair       = "save_key_pair"
	opGetPublicKey      = "get_public_key"
	opGetPublicMaterial = "get_public_key_material"
	opGetPrivateKey     = "get_private_key"
	opDeleteKeyPair     = "delete_key_pair"
	opDeletePrivateKey  = "delete_private_key"
	opChangePassword    = "change_private_key_password"
	opCopyPrivateKey    = "copy_private_key"

	resultOK    = "ok"
	resultError = "error"
)

var resultLabels = map[error]string{
	ErrKeyExists:           "key_exists",
	ErrNotFound:            "not_found",
	ErrWrongPassword:       "wrong_password",
	ErrInternalConsistency: "internal_consistency",
	ErrStorageFailure:      "storage_failure",
	ErrInvalidDataProvided: "invalid_data",
}

// KeyVaultMetricsService counts vault operations by outcome and measures
// their duration.
type KeyVaultMetricsService struct {
	inner KeyVaultService

	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewKeyVaultMetricsService registers the vault collectors on reg.
func NewKeyVaultMetricsService(reg prometheus.Registerer) (KeyVaultServiceWrapper, error) {
	m := &KeyVaultMetricsService{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "keyvault",
			Name:      "operations_total",
			Help:      "Vault operations by operation and result",
		}, []string{"operation", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "keyvault",
			Name:      "operation_duration_seconds",
			Help:      "Vault operation duration, key derivation included",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
		}, []string{"operation"}),
	}

	for _, c := range []prometheus.Collector{m.operations, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *KeyVaultMetricsService) SaveKeyPair(ctx context.Context, request models.SaveKeyPairRequest) error {
	defer m.observe(opSaveKeyPair, time.Now())()
	err := m.inner.SaveKeyPair(ctx, request)
	m.count(opSaveKeyPair, err)
	return err
}

func (m *KeyVaultMetricsService) GetPublicKey(ctx context.Context, name string) (models.PublicKey, error) {
	defer m.observe(opGetPublicKey, time.Now())()
	key, err := m.inner.GetPublicKey(ctx, name)
	m.count(opGetPublicKey, err)
	return key, err
}

func (m *KeyVaultMetricsService) GetPublicKeyMaterial(ctx context.Context, name string) ([]byte, error) {
	defer m.observe(opGetPublicMaterial, time.Now())()
	material, err := m.inner.GetPublicKeyMaterial(ctx, name)
	m.count(opGetPublicMaterial, err)
	return material, err
}

func (m *KeyVaultMetricsService) GetPrivateKey(ctx context.Context, request models.PrivateKeyRequest) (models.PrivateKey, error) {
	defer m.observe(opGetPrivateKey, time.Now())()
	key, err := m.inner.GetPrivateKey(ctx, request)
	m.count(opGetPrivateKey, err)
	return key, err
}

func (m *KeyVaultMetricsService) DeleteKeyPair(ctx context.Context, name string) error {
	defer m.observe(opDeleteKeyPair, time.Now())()
	err := m.inner.DeleteKeyPair(ctx, name)
	m.count(opDeleteKeyPair, err)
	return err
}

func (m *KeyVaultMetricsService) DeletePrivateKey(ctx context.Context, name string, owner int64) error {
	defer m.observe(opDeletePrivateKey, time.Now())()
	err := m.inner.DeletePrivateKey(ctx, name, owner)
	m.count(opDeletePrivateKey, err)
	return err
}

func (m *KeyVaultMetricsService) ChangePrivateKeyPassword(ctx context.Context, request models.ChangePasswordRequest) error {
	defer m.observe(opChangePassword, time.Now())()
	err := m.inner.ChangePrivateKeyPassword(ctx, request)
	m.count(opChangePassword, err)
	return err
}

func (m *KeyVaultMetricsService) CopyPrivateKey(ctx context.Context, request models.CopyPrivateKeyRequest) error {
	defer m.observe(opCopyPrivateKey, time.Now())()
	err := m.inner.CopyPrivateKey(ctx, request)
	m.count(opCopyPrivateKey, err)
	return err
}

func (m *KeyVaultMetricsService) Wrap(inner KeyVaultService) KeyVaultService {
	m.inner = inner
	return m
}

func (m *KeyVaultMetricsService) observe(op string, start time.Time) func() {
	return func() {
		m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}

func (m *KeyVaultMetricsService) count(op string, err error) {
	m.operations.WithLabelValues(op, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	if err == nil {
		return resultOK
	}
	for _, kind := range domainErrors {
		if errors.Is(err, kind) {
			return resultLabels[kind]
		}
	}
	return resultError
}
