package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const sequenceKeyPrefix = "fiscal:sequence:"

// RedisSequence implementa fiscal.Sequence com INCR do Redis
type RedisSequence struct {
	client *redis.Client
	key    string
}

// NewRedisSequence cria a numeração identificada por code
func NewRedisSequence(client *redis.Client, code string) *RedisSequence {
	return &RedisSequence{client: client, key: sequenceKeyPrefix + code}
}

// Next incrementa a chave e devolve o novo valor; a primeira chamada devolve 1
func (s *RedisSequence) Next(ctx context.Context) (int64, error) {
	n, err := s.client.Incr(ctx, s.key).Result()
	if err != nil {
		return 0, fmt.Errorf("falha ao incrementar sequência %s: %w", s.key, err)
	}
	return n, nil
}

// seedScript só grava o valor quando a chave não existe ou está abaixo dele
var seedScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
if current < tonumber(ARGV[1]) then
	redis.call('SET', KEYS[1], ARGV[1])
	return 1
end
return 0
`)

// Seed garante que o próximo INCR fique acima de lastIssued. Uma chave ausente ou
// atrasada (Redis reiniciado sem persistência, snapshot antigo) é elevada; uma chave
// à frente é mantida. Devolve true quando a chave foi alterada.
func (s *RedisSequence) Seed(ctx context.Context, lastIssued int64) (bool, error) {
	changed, err := seedScript.Run(ctx, s.client, []string{s.key}, lastIssued).Int()
	if err != nil {
		return false, fmt.Errorf("falha ao inicializar sequência %s: %w", s.key, err)
	}
	return changed == 1, nil
}
