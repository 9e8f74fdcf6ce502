package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"huhu/internal/domain/entity"
)

func TestFieldAliasesString(t *testing.T) {
	field := aliases("Company", "vendor.Company", "company")

	tests := []struct {
		name string
		data map[string]interface{}
		want string
	}{
		{"first alias", map[string]interface{}{"vendor": map[string]interface{}{"Company": "Adom Ltd"}, "company": "Other"}, "Adom Ltd"},
		{"skips empty", map[string]interface{}{"vendor": map[string]interface{}{"Company": "  "}, "company": "Other"}, "Other"},
		{"skips values without text", map[string]interface{}{"vendor": map[string]interface{}{"Company": map[string]interface{}{"name": "x"}}, "company": "Other"}, "Other"},
		{"default", map[string]interface{}{"vendor": map[string]interface{}{"Company": map[string]interface{}{"name": "x"}}}, "Company"},
		{"numbers", map[string]interface{}{"company": int64(42)}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := entity.NewListing(entity.KindJob, "j1", tt.data)
			assert.Equal(t, tt.want, field.String(l))
		})
	}
}
