package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/Aquilabot/KreaPC-Market/internal/models"
	"github.com/Aquilabot/KreaPC-Market/internal/utils"
	"github.com/gofiber/fiber/v2/log"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

const (
	errorDecoding        = "could not decode catalog: %v"
	errorReadingFile     = "could not read catalog file %s: %v"
	errorDuplicateID     = "duplicate identifier %q"
	errorMalformedID     = "malformed identifier %q"
	errorMerchantRating  = "merchant %s: rating %.2f outside [0, 5]"
	errorMissingMerchant = "merchant roster is empty"
	logCatalogLoaded     = "Catalog loaded: %d hardware items, %d merchants"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// Store is an immutable registry of hardware and merchants. All methods are
// safe for concurrent use; returned values must not be mutated.
type Store struct {
	hardware  []models.Hardware
	byID      map[string]int
	byType    map[models.HardwareType][]int
	merchants []models.Merchant
	merchByID map[string]int
}

// New validates hardware and merchants and indexes them in the given order.
// Identifiers must be unique across all hardware categories and merchants.
func New(hardware []models.Hardware, merchants []models.Merchant) (*Store, error) {
	s := &Store{
		hardware:  slices.Clone(hardware),
		byID:      make(map[string]int, len(hardware)),
		byType:    make(map[models.HardwareType][]int),
		merchants: slices.Clone(merchants),
		merchByID: make(map[string]int, len(merchants)),
	}

	seen := make(map[string]struct{}, len(hardware)+len(merchants))
	claim := func(id string) error {
		if !utils.MatchCatalogID(id) {
			return fmt.Errorf("%w: "+errorMalformedID, ErrInvalidCatalog, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: "+errorDuplicateID, ErrInvalidCatalog, id)
		}
		seen[id] = struct{}{}
		return nil
	}

	for i, h := range s.hardware {
		if err := claim(h.ID); err != nil {
			return nil, err
		}
		if err := h.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}
		s.byID[h.ID] = i
		s.byType[h.Type] = append(s.byType[h.Type], i)
	}

	if len(s.merchants) == 0 {
		return nil, fmt.Errorf("%w: "+errorMissingMerchant, ErrInvalidCatalog)
	}
	for i, m := range s.merchants {
		if err := claim(m.ID); err != nil {
			return nil, err
		}
		if m.Rating < 0 || m.Rating > 5 {
			return nil, fmt.Errorf("%w: "+errorMerchantRating, ErrInvalidCatalog, m.ID, m.Rating)
		}
		s.merchByID[m.ID] = i
	}

	return s, nil
}

// Load decodes a YAML catalog document from r.
func Load(r io.Reader) (*Store, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: "+errorDecoding, ErrInvalidCatalog, err)
	}

	hardware := make([]models.Hardware, 0, len(doc.Hardware))
	for _, rec := range doc.Hardware {
		h, err := rec.toHardware()
		if err != nil {
			return nil, fmt.Errorf("%w: "+errorDecoding, ErrInvalidCatalog, err)
		}
		hardware = append(hardware, h)
	}

	return New(hardware, doc.Merchants)
}

// LoadFile loads a YAML catalog from path.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(errorReadingFile, path, err)
	}

	s, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	log.Infof(logCatalogLoaded, len(s.hardware), len(s.merchants))
	return s, nil
}

var loadDefault = sync.OnceValue(func() *Store {
	s, err := Load(bytes.NewReader(defaultCatalog))
	if err != nil {
		panic(err)
	}
	return s
})

// Default returns the built-in catalog. The same Store is shared by every
// caller.
func Default() *Store {
	return loadDefault()
}

// FindHardware looks id up across every category. The boolean is false when
// no item has that id.
func (s *Store) FindHardware(id string) (models.Hardware, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Hardware{}, false
	}
	return s.hardware[i], true
}

// ListHardware returns the items of one category in registration order.
func (s *Store) ListHardware(t models.HardwareType) []models.Hardware {
	idx := s.byType[t]
	out := make([]models.Hardware, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.hardware[i])
	}
	return out
}

// AllHardware returns every item in registration order.
func (s *Store) AllHardware() []models.Hardware {
	return slices.Clone(s.hardware)
}

// Categories returns the categories that hold at least one item, in
// catalog order.
func (s *Store) Categories() []models.HardwareType {
	var out []models.HardwareType
	for _, t := range models.HardwareTypes {
		if len(s.byType[t]) > 0 {
			out = append(out, t)
		}
	}
	return out
}

// ListMerchants returns the merchant roster in registration order.
func (s *Store) ListMerchants() []models.Merchant {
	return slices.Clone(s.merchants)
}

func (s *Store) FindMerchant(id string) (models.Merchant, bool) {
	i, ok := s.merchByID[id]
	if !ok {
		return models.Merchant{}, false
	}
	return s.merchants[i], true
}
