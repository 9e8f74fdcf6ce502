package entity

import (
	"encoding/json"
	"strconv"
	"strings"
)

type ListingKind string

const (
	KindProduct  ListingKind = "product"
	KindJob      ListingKind = "job"
	KindService  ListingKind = "service"
	KindProperty ListingKind = "property"
)

var listingCollections = map[ListingKind]string{
	KindProduct:  "products",
	KindJob:      "Job",
	KindService:  "Consultants",
	KindProperty: "Roommate",
}

// Collection returns the Firestore collection holding listings of this kind.
func (k ListingKind) Collection() string {
	return listingCollections[k]
}

func (k ListingKind) Valid() bool {
	_, ok := listingCollections[k]
	return ok
}

// Listing is a raw listing document. Fields are kept as stored since each
// collection was written by several generations of clients.
type Listing struct {
	ID   string
	Kind ListingKind
	Data map[string]interface{}
}

func NewListing(kind ListingKind, id string, data map[string]interface{}) *Listing {
	if data == nil {
		data = map[string]interface{}{}
	}
	return &Listing{ID: id, Kind: kind, Data: data}
}

// Field looks up a dotted path such as "vendor.uid".
func (l *Listing) Field(path string) (interface{}, bool) {
	if l == nil {
		return nil, false
	}
	return Lookup(l.Data, path)
}

// Lookup walks nested maps along a dotted path. Numeric segments index
// into arrays, so "images.0" is the first image.
func Lookup(data map[string]interface{}, path string) (interface{}, bool) {
	var current interface{} = data
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			next, ok := node[part]
			if !ok {
				return nil, false
			}
			current = next
		case []interface{}:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		case []string:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, current != nil
}

func (l *Listing) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(l.Data)+1)
	for k, v := range l.Data {
		out[k] = v
	}
	out["id"] = l.ID
	return json.Marshal(out)
}
