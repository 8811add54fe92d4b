package repository

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"fmt"
	"io"
	"time"

	"cartera/internal/db/models/postgres/public/model"
	"cartera/internal/db/models/postgres/public/table"
	"cartera/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
)

// BrokerConnectionRepository stores broker credentials. Credential
// payloads are AES-GCM encrypted before they touch the database; the
// key never leaves the process.
type BrokerConnectionRepository interface {
	Upsert(provider domain.Provider, credentials []byte) (*model.BrokerConnection, error)
	Get(provider domain.Provider) ([]byte, error)
	List() ([]model.BrokerConnection, error)
}

type brokerConnectionRepositoryHandler struct {
	Db   *sql.DB
	aead cipher.AEAD
}

func NewBrokerConnectionRepository(db *sql.DB, encryptionKey []byte) (BrokerConnectionRepository, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to build credential cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to build credential cipher: %w", err)
	}

	return brokerConnectionRepositoryHandler{
		Db:   db,
		aead: aead,
	}, nil
}

func (h brokerConnectionRepositoryHandler) encrypt(plaintext []byte) (string, error) {
	nonce := make([]byte, h.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	sealed := h.aead.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (h brokerConnectionRepositoryHandler) decrypt(encoded string) ([]byte, error) {
	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	if len(sealed) < h.aead.NonceSize() {
		return nil, fmt.Errorf("credential payload too short")
	}
	nonce, ciphertext := sealed[:h.aead.NonceSize()], sealed[h.aead.NonceSize():]
	return h.aead.Open(nil, nonce, ciphertext, nil)
}

func (h brokerConnectionRepositoryHandler) Upsert(provider domain.Provider, credentials []byte) (*model.BrokerConnection, error) {
	encrypted, err := h.encrypt(credentials)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt %s credentials: %w", provider, err)
	}

	now := time.Now().UTC()
	m := model.BrokerConnection{
		Provider:             string(provider),
		EncryptedCredentials: encrypted,
		CreatedAt:            now,
		UpdatedAt:            &now,
	}

	query := table.BrokerConnection.
		INSERT(table.BrokerConnection.MutableColumns).
		MODEL(m).
		ON_CONFLICT(table.BrokerConnection.Provider).
		DO_UPDATE(postgres.SET(
			table.BrokerConnection.EncryptedCredentials.SET(postgres.String(encrypted)),
			table.BrokerConnection.UpdatedAt.SET(postgres.TimestampT(now)),
		)).
		RETURNING(table.BrokerConnection.AllColumns)

	out := &model.BrokerConnection{}
	if err := query.Query(h.Db, out); err != nil {
		return nil, fmt.Errorf("failed to upsert %s connection: %w", provider, err)
	}

	return out, nil
}

func (h brokerConnectionRepositoryHandler) Get(provider domain.Provider) ([]byte, error) {
	query := table.BrokerConnection.
		SELECT(table.BrokerConnection.AllColumns).
		WHERE(table.BrokerConnection.Provider.EQ(postgres.String(string(provider))))

	out := &model.BrokerConnection{}
	if err := query.Query(h.Db, out); err != nil {
		return nil, fmt.Errorf("failed to load %s connection: %w", provider, err)
	}

	return h.decrypt(out.EncryptedCredentials)
}

func (h brokerConnectionRepositoryHandler) List() ([]model.BrokerConnection, error) {
	query := table.BrokerConnection.
		SELECT(table.BrokerConnection.AllColumns).
		ORDER_BY(table.BrokerConnection.Provider.ASC())

	out := []model.BrokerConnection{}
	if err := query.Query(h.Db, &out); err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}

	return out, nil
}
