package config

import (
	"context"
	"sync"

	"github.com/spf13/viper"
)

// parametersPrefix agrupa as configurações fiscais no arquivo (fiscal_params.<chave>)
// e nas variáveis de ambiente (FISCAL_PARAMS_<CHAVE>)
const parametersPrefix = "fiscal_params"

// ViperParameterStore implementa fiscal.ParameterStore sobre o viper.
// Os valores vêm do arquivo de configuração ou do ambiente; Set altera apenas a memória.
type ViperParameterStore struct {
	mu sync.RWMutex
	v  *viper.Viper
}

// NewViperParameterStore cria o armazenamento sobre a instância informada
func NewViperParameterStore(v *viper.Viper) *ViperParameterStore {
	if v == nil {
		v = viper.New()
	}
	return &ViperParameterStore{v: v}
}

// Get devolve o valor da chave ou o valor padrão quando não definida
func (s *ViperParameterStore) Get(_ context.Context, key, defaultValue string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fullKey := parametersPrefix + "." + key
	if !s.v.IsSet(fullKey) {
		return defaultValue, nil
	}
	return s.v.GetString(fullKey), nil
}

// Set define o valor da chave em memória
func (s *ViperParameterStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.v.Set(parametersPrefix+"."+key, value)
	return nil
}
