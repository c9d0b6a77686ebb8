package cnf

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"

	"github.com/revelaction/wordbook/speak"
)

const (
	dfltWordsPath     = "words.json"
	dfltLemmatizer    = LemmatizerLexicon
	dfltListenAddress = "127.0.0.1"
	dfltListenPort    = 8080
	dfltLogLevel      = "info"

	// log file rotation
	logMaxFileSize = 10
	logMaxFiles    = 3
	logMaxAgeDays  = 28

	LemmatizerLexicon = "lexicon"
	LemmatizerGolem   = "golem"
)

// Conf is a global configuration of the app
type Conf struct {
	WordsPath          string           `json:"wordsPath"`
	Lemmatizer         string           `json:"lemmatizer"`
	LexiconPath        string           `json:"lexiconPath"`
	Voice              string           `json:"voice"`
	SpeechCommand      *string          `json:"speechCommand"`
	ListenAddress      string           `json:"listenAddress"`
	ListenPort         int              `json:"listenPort"`
	CorsAllowedOrigins []string         `json:"corsAllowedOrigins"`
	LogFile            string           `json:"logFile"`
	LogLevel           logging.LogLevel `json:"logLevel"`

	srcPath string
}

func (conf *Conf) IsDebugMode() bool {
	return conf.LogLevel == "debug"
}

// GetSourcePath returns the path the config was loaded from, empty for
// the defaults.
func (conf *Conf) GetSourcePath() string {
	return conf.srcPath
}

// Speech returns the speech command, empty when speech is disabled.
func (conf *Conf) Speech() string {
	if conf.SpeechCommand == nil {
		return speak.DefaultCommand()
	}
	return *conf.SpeechCommand
}

// Logging returns the logging setup. The rotation limits only apply to a
// log file.
func (conf *Conf) Logging() logging.LoggingConf {
	return logging.LoggingConf{
		Path:        conf.LogFile,
		Level:       conf.LogLevel,
		MaxFileSize: logMaxFileSize,
		MaxFiles:    logMaxFiles,
		MaxAgeDays:  logMaxAgeDays,
	}
}

// LoadConfig reads a JSON config file. An empty path returns an empty
// config to be filled by ValidateAndDefaults.
func LoadConfig(path string) (*Conf, error) {
	if path == "" {
		return &Conf{}, nil
	}

	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}

	var conf Conf
	conf.srcPath = path
	if err := json.Unmarshal(rawData, &conf); err != nil {
		return nil, fmt.Errorf("cannot load config %s: %w", path, err)
	}

	return &conf, nil
}

func ValidateAndDefaults(conf *Conf) error {
	if conf.WordsPath == "" {
		conf.WordsPath = dfltWordsPath
		log.Debug().Msgf("wordsPath not specified, using default: %s", dfltWordsPath)
	}

	conf.Lemmatizer = strings.ToLower(conf.Lemmatizer)
	switch conf.Lemmatizer {
	case "":
		conf.Lemmatizer = dfltLemmatizer
	case LemmatizerLexicon, LemmatizerGolem:
	default:
		return fmt.Errorf("invalid lemmatizer %q, expected %s or %s", conf.Lemmatizer, LemmatizerLexicon, LemmatizerGolem)
	}

	if conf.LexiconPath != "" && conf.Lemmatizer != LemmatizerLexicon {
		return fmt.Errorf("lexiconPath requires the %s lemmatizer", LemmatizerLexicon)
	}

	if conf.Voice == "" {
		conf.Voice = speak.DefaultVoice(conf.Speech())
	}

	if conf.ListenAddress == "" {
		conf.ListenAddress = dfltListenAddress
	}

	if conf.ListenPort == 0 {
		conf.ListenPort = dfltListenPort
		log.Debug().Msgf("listenPort not specified, using default: %d", dfltListenPort)
	}

	if conf.ListenPort < 0 || conf.ListenPort > 65535 {
		return fmt.Errorf("invalid listenPort %d", conf.ListenPort)
	}

	if conf.LogLevel == "" {
		conf.LogLevel = dfltLogLevel
	}

	switch conf.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logLevel %q", conf.LogLevel)
	}

	return nil
}
