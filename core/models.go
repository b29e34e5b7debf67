package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// MatchKind identifies the strategy that produced a match score.
type MatchKind int

const (
	// MatchExact indicates the normalized dish name equals the query.
	MatchExact MatchKind = iota + 1
	// MatchPartial indicates a substring match in either direction.
	MatchPartial
	// MatchFuzzy indicates an edit-distance similarity match.
	MatchFuzzy
	// MatchKeyword indicates a word-overlap match.
	MatchKeyword
	// MatchSemantic indicates an embedding cosine-similarity match.
	MatchSemantic
)

// String returns the lowercase name of the match kind.
func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchPartial:
		return "partial"
	case MatchFuzzy:
		return "fuzzy"
	case MatchKeyword:
		return "keyword"
	case MatchSemantic:
		return "semantic"
	default:
		return "unknown"
	}
}

// DishRecord represents a single menu item together with its restaurant
// metadata. Records are created once during catalog load and never mutated
// afterwards, except for the Vector field which is populated by the
// ingestion pipeline before the catalog is handed to the matcher.
type DishRecord struct {
	Id          ID
	Ordinal     int // Position in the catalog, the stable tie-break for ranking
	Name        string
	Description string
	Price       float64 // 0 means the price was not listed
	Restaurant  string
	Cuisine     string
	Category    string
	Address     string
	PriceRange  string
	Vector      []float32 // Embedding vector for semantic search (populated by the pipeline)
}

// Tuple returns a string representation of the record as
// "(Restaurant,Name,Category)". This is used for generating deterministic IDs.
func (r *DishRecord) Tuple() string {
	return "(" + r.Restaurant + "," + r.Name + "," + r.Category + ")"
}

// HasPrice reports whether the source document listed a price for the dish.
func (r *DishRecord) HasPrice() bool {
	return r.Price > 0
}

// MatchResult represents a single search hit. Results are created fresh per
// search call and carry no identity of their own; the record is owned by the
// catalog.
type MatchResult struct {
	Record *DishRecord
	Score  float64
	Kind   MatchKind
}
