package entity

// Vendor is a profile document from the vendors collection.
type Vendor struct {
	ID   string
	Data map[string]interface{}
}

func (v *Vendor) String(keys ...string) string {
	if v == nil {
		return ""
	}
	for _, key := range keys {
		if s, ok := v.Data[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
