package docstore

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// O token de continuação é a LastEvaluatedKey do serviço serializada em
// Base64. Chaves de tabela e de índice só admitem os tipos escalares S, N e
// B, então a serialização cobre apenas esses três. O conteúdo do token é
// opaco para o chamador: o único uso válido é devolvê-lo em StartFrom.

type cursorValue struct {
	S *string `json:"s,omitempty"`
	N *string `json:"n,omitempty"`
	B []byte  `json:"b,omitempty"`
}

// encodeCursor serializa a LastEvaluatedKey como token opaco. Chave ausente
// vira token vazio — o sinal de última página.
func encodeCursor(lastKey map[string]types.AttributeValue) string {
	if len(lastKey) == 0 {
		return ""
	}

	values := make(map[string]cursorValue, len(lastKey))
	for name, av := range lastKey {
		switch v := av.(type) {
		case *types.AttributeValueMemberS:
			values[name] = cursorValue{S: &v.Value}
		case *types.AttributeValueMemberN:
			values[name] = cursorValue{N: &v.Value}
		case *types.AttributeValueMemberB:
			values[name] = cursorValue{B: v.Value}
		default:
			// Tipo não-escalar nunca aparece em chave; descartar o token é
			// mais seguro do que emitir um cursor truncado.
			return ""
		}
	}

	b, err := json.Marshal(values)
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(b)
}

func decodeCursor(token string) (map[string]types.AttributeValue, error) {
	if token == "" {
		return nil, nil
	}

	data, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("docstore: invalid cursor: %w", err)
	}

	var values map[string]cursorValue
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("docstore: invalid cursor: %w", err)
	}

	key := make(map[string]types.AttributeValue, len(values))
	for name, v := range values {
		switch {
		case v.S != nil:
			key[name] = &types.AttributeValueMemberS{Value: *v.S}
		case v.N != nil:
			key[name] = &types.AttributeValueMemberN{Value: *v.N}
		case v.B != nil:
			key[name] = &types.AttributeValueMemberB{Value: v.B}
		default:
			return nil, fmt.Errorf("docstore: invalid cursor: empty attribute %q", name)
		}
	}
	return key, nil
}
