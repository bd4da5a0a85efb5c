package documents

import "strings"

type Complexity string

const (
	ComplexitySimple       Complexity = "Simple"
	ComplexityIntermediate Complexity = "Intermediate"
	ComplexityComplex      Complexity = "Complex"
)

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldCheckbox FieldType = "checkbox"
	FieldDate     FieldType = "date"
	FieldNumber   FieldType = "number"
)

type Template struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Complexity    Complexity `json:"complexity"`
	EstimatedTime string     `json:"estimatedTime"`
	Price         float64    `json:"price"`
	Rating        float64    `json:"rating"`
	UsageCount    int        `json:"usageCount"`
	Fields        []string   `json:"fields"`
}

type FormField struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
	Options     []string  `json:"options,omitempty"`
	HelpText    string    `json:"helpText,omitempty"`
}

type Section struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Fields      []FormField `json:"fields"`
	Completed   bool        `json:"completed"`
}

type Schema struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

type CatalogFilter struct {
	Query      string
	Category   string
	Complexity string
}

func (f CatalogFilter) Matches(t Template) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) &&
			!strings.Contains(strings.ToLower(t.Category), q) {
			return false
		}
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.Complexity != "" && string(t.Complexity) != f.Complexity {
		return false
	}
	return true
}

type SaveRequest struct {
	TemplateID string                 `json:"templateId" validate:"notblank"`
	Title      string                 `json:"title"`
	Data       map[string]interface{} `json:"data"`
	Status     string                 `json:"status"`
}

type SaveResult struct {
	DocumentID string `json:"documentId"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

type GenerateRequest struct {
	TemplateID string                 `json:"templateId" validate:"notblank"`
	Data       map[string]interface{} `json:"data"`
}

type GenerateResult struct {
	DocumentID  string `json:"documentId"`
	Status      string `json:"status"`
	DownloadURL string `json:"downloadUrl"`
}

// MissingFields lists required fields of s that data leaves empty.
// A required checkbox must be checked.
func (s Schema) MissingFields(data map[string]interface{}) map[string]string {
	missing := map[string]string{}
	for _, section := range s.Sections {
		for _, field := range section.Fields {
			if field.Required && !filled(field, data[field.ID]) {
				missing[field.ID] = "required"
			}
		}
	}
	return missing
}

func filled(field FormField, value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		if field.Type == FieldCheckbox {
			return v == "true"
		}
		return strings.TrimSpace(v) != ""
	case bool:
		return v
	default:
		return true
	}
}
