package formats

import (
	"encoding/json"

	"github.com/vovakirdan/tui-chips/internal/registry"
)

func init() {
	registry.Register(".json", registry.Codec{
		Name:      "json",
		Unmarshal: json.Unmarshal,
		Marshal: func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		},
	})
}
