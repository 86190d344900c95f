package output

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/ukaji3/pttjs-go/pkg/pttjs/models"
	"gopkg.in/yaml.v3"
)

// ToJSON renders a store as JSON.
func ToJSON(store *models.Store, pretty bool) ([]byte, error) {
	return marshalJSON(store, pretty)
}

// PageToJSON renders a single page as JSON.
func PageToJSON(page *models.Page, pretty bool) ([]byte, error) {
	return marshalJSON(page, pretty)
}

func marshalJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ToYAML renders a store as YAML.
func ToYAML(store *models.Store) ([]byte, error) {
	return yaml.Marshal(store)
}

// ToCBOR renders a store as canonical CBOR, so equal stores always
// produce equal bytes.
func ToCBOR(store *models.Store) ([]byte, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("failed to create CBOR encoder: %w", err)
	}

	data, err := encMode.Marshal(store)
	if err != nil {
		return nil, fmt.Errorf("CBOR encoding failed: %w", err)
	}
	return data, nil
}
