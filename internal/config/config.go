package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App    App    `mapstructure:",squash"`
	Server Server `mapstructure:",squash"`
	Engine Engine `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Engine agrupa os limiares ajustáveis do motor de recomendações. Os valores
// padrão reproduzem os benchmarks do setor; ajustar apenas com dados próprios.
type Engine struct {
	CTRBenchmark        float64 `mapstructure:"engine_ctr_benchmark"`
	FrequencySaturation float64 `mapstructure:"engine_frequency_saturation"`
	CPATolerance        float64 `mapstructure:"engine_cpa_tolerance"`
	SegmentCPARatio     float64 `mapstructure:"engine_segment_cpa_ratio"`
	GrowthWindowDays    int     `mapstructure:"engine_growth_window_days"`
	LongTextWordLimit   int     `mapstructure:"engine_long_text_word_limit"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	// Defaults do motor de recomendações
	viper.SetDefault("ENGINE_CTR_BENCHMARK", 1.5)        // CTR médio do setor em %
	viper.SetDefault("ENGINE_FREQUENCY_SATURATION", 3.5) // Impressões por usuário antes da fadiga
	viper.SetDefault("ENGINE_CPA_TOLERANCE", 1.2)        // Multiplicador sobre o benchmark de CPA
	viper.SetDefault("ENGINE_SEGMENT_CPA_RATIO", 1.5)    // CPA do segmento vs CPA geral
	viper.SetDefault("ENGINE_GROWTH_WINDOW_DAYS", 7)     // Janela das taxas de crescimento
	viper.SetDefault("ENGINE_LONG_TEXT_WORD_LIMIT", 125) // Limite de palavras do texto principal

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
