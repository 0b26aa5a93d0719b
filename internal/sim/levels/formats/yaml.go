package formats

import (
	"github.com/vovakirdan/tui-chips/internal/registry"
	"gopkg.in/yaml.v3"
)

func init() {
	c := registry.Codec{
		Name:      "yaml",
		Unmarshal: yaml.Unmarshal,
		Marshal:   yaml.Marshal,
	}
	registry.Register(".yaml", c)
	registry.Register(".yml", c)
}
