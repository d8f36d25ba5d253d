package providers

import (
	"gopkg.in/yaml.v3"
)

// NewYAMLProvider returns a provider for a YAML settings file.
func NewYAMLProvider(path, namespace string) *FileProvider {
	return newFileProvider(path, namespace, codec{
		name:      "yaml",
		marshal:   yaml.Marshal,
		unmarshal: yaml.Unmarshal,
	})
}
