package lessons

import (
	"encoding/json"
	"fmt"
)

// PrettyJSON formata um valor para exibição no log da lição.
func PrettyJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}
