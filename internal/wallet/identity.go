// Package wallet owns the service's Solana identity and on-chain stats
// lookups. The identity is constructed once at startup and read-only after
// that.
package wallet

import (
	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog/log"
)

// Identity is the service's keypair. Ephemeral identities are generated when
// no usable secret is configured; they are valid for signing but hold no
// funds and disappear with the process.
type Identity struct {
	key       solana.PrivateKey
	Address   solana.PublicKey
	Ephemeral bool
}

// LoadIdentity parses a base58-encoded secret key. A missing or unparseable
// secret is not a startup failure: the service falls back to a freshly
// generated ephemeral key with a warning.
func LoadIdentity(secret string) (Identity, error) {
	if secret != "" {
		key, err := solana.PrivateKeyFromBase58(secret)
		if err == nil {
			return Identity{key: key, Address: key.PublicKey()}, nil
		}
		log.Warn().Err(err).Msg("wallet secret unparseable, generating ephemeral identity")
	} else {
		log.Warn().Msg("no wallet secret configured, generating ephemeral identity")
	}

	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		return Identity{}, err
	}

	id := Identity{key: key, Address: key.PublicKey(), Ephemeral: true}
	log.Info().Str("address", id.Address.String()).Msg("ephemeral wallet identity generated")
	return id, nil
}
