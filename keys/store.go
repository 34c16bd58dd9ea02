package keys

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"xdao.co/zklink/account"
	"xdao.co/zklink/serde"
	"xdao.co/zklink/zkcrypto"
)

// KeyStore represents a simple local-first key management system.
//
// EXPERIMENTAL: this filesystem-backed storage surface is not part of the
// stable API and may change in MINOR releases.
//
// Seeds are stored as hex in 0600 files; role keys are derived from the root
// seed with DeriveRoleSeed.
type KeyStore struct {
	Directory string
}

type KeyEntry struct {
	Identifier  string
	PubKeyHash  account.PubKeyHash
	Permissions []string
}

func GetDefaultDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".zklink", "keys"), nil
}

func CreateKeyStore(directory string) (*KeyStore, error) {
	if directory == "" {
		var err error
		directory, err = GetDefaultDirectory()
		if err != nil {
			return nil, err
		}
	}
	return &KeyStore{Directory: directory}, nil
}

func (ks *KeyStore) getRootKeyFilePath(identifier string) string {
	return filepath.Join(ks.Directory, identifier, "root.key")
}

func (ks *KeyStore) getRoleKeyFilePath(identifier, role string) string {
	return filepath.Join(ks.Directory, identifier, "roles", role+".key")
}

func checkName(kind, name string) error {
	if name == "" {
		return fmt.Errorf("%s cannot be empty", kind)
	}
	for _, char := range name {
		if (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9') || char == '-' || char == '_' {
			continue
		}
		return fmt.Errorf("invalid character %q in %s", char, kind)
	}
	return nil
}

func CheckKeyName(identifier string) error {
	return checkName("identifier", identifier)
}

func CheckRole(role string) error {
	return checkName("role", role)
}

// ParseSeedHex accepts a seed with or without the "0x" prefix.
func ParseSeedHex(seedHex string) ([]byte, error) {
	seedHex = strings.TrimSpace(seedHex)
	prefix := ""
	if strings.HasPrefix(seedHex, serde.PrefixOf[serde.ZeroX]()) {
		prefix = serde.PrefixOf[serde.ZeroX]()
	}
	data, err := serde.DecodeHex(prefix, seedHex)
	if err != nil {
		return nil, err
	}
	if len(data) != zkcrypto.SeedSize {
		return nil, fmt.Errorf("expected seed length of %d bytes, got %d", zkcrypto.SeedSize, len(data))
	}
	return data, nil
}

func (ks *KeyStore) saveSeedToFile(filePath string, seed []byte, overwrite bool) error {
	if len(seed) != zkcrypto.SeedSize {
		return fmt.Errorf("expected seed length of %d bytes", zkcrypto.SeedSize)
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0o700); err != nil {
		return err
	}
	flags := os.O_WRONLY | os.O_CREATE
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	file, err := os.OpenFile(filePath, flags, 0o600)
	if err != nil {
		return err
	}
	defer file.Close()
	if _, err := file.WriteString(hex.EncodeToString(seed) + "\n"); err != nil {
		return err
	}
	return file.Close()
}

func (ks *KeyStore) loadSeedFromFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return ParseSeedHex(string(data))
}

// InitializeRootKey stores seed as the root key of identifier and returns the
// PubKeyHash it controls.
func (ks *KeyStore) InitializeRootKey(identifier string, seed []byte, overwrite bool) (pubKeyHash account.PubKeyHash, filePath string, err error) {
	if err := CheckKeyName(identifier); err != nil {
		return account.PubKeyHash{}, "", err
	}
	pubKeyHash, err = PubKeyHashFromSeed(seed)
	if err != nil {
		return account.PubKeyHash{}, "", err
	}
	filePath = ks.getRootKeyFilePath(identifier)
	if err := ks.saveSeedToFile(filePath, seed, overwrite); err != nil {
		return account.PubKeyHash{}, "", err
	}
	return pubKeyHash, filePath, nil
}

// DeriveKeyFromRole derives and stores a role key under an existing root key.
func (ks *KeyStore) DeriveKeyFromRole(from, role string, overwrite bool) (pubKeyHash account.PubKeyHash, filePath string, err error) {
	if err := CheckKeyName(from); err != nil {
		return account.PubKeyHash{}, "", err
	}
	if err := CheckRole(role); err != nil {
		return account.PubKeyHash{}, "", err
	}
	rootSeed, err := ks.loadSeedFromFile(ks.getRootKeyFilePath(from))
	if err != nil {
		return account.PubKeyHash{}, "", err
	}
	roleSeed, err := DeriveRoleSeed(rootSeed, role)
	if err != nil {
		return account.PubKeyHash{}, "", err
	}
	pubKeyHash, err = PubKeyHashFromSeed(roleSeed)
	if err != nil {
		return account.PubKeyHash{}, "", err
	}
	filePath = ks.getRoleKeyFilePath(from, role)
	if err := ks.saveSeedToFile(filePath, roleSeed, overwrite); err != nil {
		return account.PubKeyHash{}, "", err
	}
	return pubKeyHash, filePath, nil
}

func (ks *KeyStore) loadNamedSeed(identifier, role string) ([]byte, error) {
	if err := CheckKeyName(identifier); err != nil {
		return nil, err
	}
	if role == "" {
		return ks.loadSeedFromFile(ks.getRootKeyFilePath(identifier))
	}
	if err := CheckRole(role); err != nil {
		return nil, err
	}
	return ks.loadSeedFromFile(ks.getRoleKeyFilePath(identifier, role))
}

// ExportPubKeyHash returns the PubKeyHash of a stored root (role == "") or
// role key.
func (ks *KeyStore) ExportPubKeyHash(identifier string, role string) (account.PubKeyHash, error) {
	seed, err := ks.loadNamedSeed(identifier, role)
	if err != nil {
		return account.PubKeyHash{}, err
	}
	return PubKeyHashFromSeed(seed)
}

// LoadSeed resolves a seed from, in order: an explicit hex seed, a key file,
// or a stored key name with optional role.
func (ks *KeyStore) LoadSeed(seedHex, signerName, signerRole, keyFile string) ([]byte, error) {
	if seedHex != "" {
		return ParseSeedHex(seedHex)
	}
	if keyFile != "" {
		return ks.loadSeedFromFile(keyFile)
	}
	if signerName != "" {
		return ks.loadNamedSeed(signerName, signerRole)
	}
	return nil, errors.New("no signer provided")
}

func (ks *KeyStore) ListKeys() ([]KeyEntry, error) {
	entries, err := os.ReadDir(ks.Directory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var identifiers []string
	for _, entry := range entries {
		if entry.IsDir() {
			identifiers = append(identifiers, entry.Name())
		}
	}
	sort.Strings(identifiers)

	var result []KeyEntry
	for _, identifier := range identifiers {
		rootSeed, err := ks.loadSeedFromFile(ks.getRootKeyFilePath(identifier))
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", identifier, err)
		}
		pkh, err := PubKeyHashFromSeed(rootSeed)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", identifier, err)
		}

		rolesDir := filepath.Join(ks.Directory, identifier, "roles")
		roleEntries, rerr := os.ReadDir(rolesDir)
		var roles []string
		if rerr == nil {
			for _, roleEntry := range roleEntries {
				if roleEntry.IsDir() {
					continue
				}
				if strings.HasSuffix(roleEntry.Name(), ".key") {
					roles = append(roles, strings.TrimSuffix(roleEntry.Name(), ".key"))
				}
			}
			sort.Strings(roles)
		}
		result = append(result, KeyEntry{Identifier: identifier, PubKeyHash: pkh, Permissions: roles})
	}
	return result, nil
}
