package admin

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"
)

// SessionKey é uma credencial efêmera de lição. O DynamoDB Local particiona
// os dados pelo access key id, então cada chave gerada enxerga um banco
// isolado, o análogo local de criar um banco com chave de acesso própria.
type SessionKey struct {
	AccessKeyID     string
	SecretAccessKey string
}

// NewSessionKey gera uma chave de sessão nova. Não há chamada ao serviço:
// a chave só precisa ser única, quem dá significado a ela é o endpoint local.
func NewSessionKey(dbName string) SessionKey {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return SessionKey{
		AccessKeyID:     dbName + "-" + suffix[:16],
		SecretAccessKey: suffix[16:],
	}
}

// Credentials adapta a chave ao formato do SDK.
func (k SessionKey) Credentials() aws.Credentials {
	return aws.Credentials{
		AccessKeyID:     k.AccessKeyID,
		SecretAccessKey: k.SecretAccessKey,
		Source:          "ledger-lessons session key",
	}
}
