package domain

import "strings"

// Algorithm is a registry entry. Only its owner may change it.
type Algorithm struct {
	ID          uint32   `json:"id"`
	Owner       Identity `json:"owner"`
	Name        string   `json:"name"`
	MetadataURI string   `json:"metadata_uri"`
	ParamsHash  string   `json:"params_hash"`
	Active      bool     `json:"active"`
}

// RegistryInfo summarizes the algorithm registry.
type RegistryInfo struct {
	Admin Identity `json:"admin"`
	Total uint32   `json:"total"`
}

// FactoryInfo summarizes the creator vault factory.
type FactoryInfo struct {
	Admin    Identity `json:"admin"`
	Asset    string   `json:"asset"`
	Creators uint32   `json:"creators"`
}

// CreatorVaultIDPrefix marks vault ids only the factory may assign.
const CreatorVaultIDPrefix = "creator-"

// CreatorVaultID derives the vault id a factory assigns to a creator.
func CreatorVaultID(creator Identity) (string, error) {
	id, err := DeriveAddress("creator_vault", creator.String())
	if err != nil {
		return "", err
	}
	return CreatorVaultIDPrefix + id.String(), nil
}

// IsReservedVaultID reports whether id lies in the factory's namespace.
func IsReservedVaultID(id string) bool {
	return strings.HasPrefix(id, CreatorVaultIDPrefix)
}
