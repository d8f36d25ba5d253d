package providers

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/ja-he/propedit/internal/model"
)

// NewTOMLProvider returns a provider for a TOML settings file.
//
// TOML has no null; settings set to nil are dropped when saving, which reads
// back the same as an absent value.
func NewTOMLProvider(path, namespace string) *FileProvider {
	return newFileProvider(path, namespace, codec{
		name:      "toml",
		marshal:   func(v any) ([]byte, error) { return toml.Marshal(dropNils(v)) },
		unmarshal: toml.Unmarshal,
	})
}

func dropNils(v any) any {
	m, ok := model.AsContainer(v)
	if !ok {
		return v
	}
	result := make(map[string]any, len(m))
	for k, value := range m {
		if value == nil {
			continue
		}
		result[k] = dropNils(value)
	}
	return result
}
