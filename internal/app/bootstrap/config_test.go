package bootstrap

import (
	"os"
	"strings"
	"testing"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testCoreConfig() *config.CoreConfig {
	return &config.CoreConfig{Env: "dev"}
}

func validConfig() AppConfig {
	return AppConfig{
		MongoURL:           "mongodb://localhost:27017",
		DBName:             "tyte",
		MongoMaxPoolSize:   100,
		CORSAllowedOrigins: []string{"*"},
	}
}

func TestHooks_Wired(t *testing.T) {
	if Hooks.Name != "tyte" {
		t.Errorf("Name: got %q, want %q", Hooks.Name, "tyte")
	}
	if Hooks.LoadConfig == nil || Hooks.ValidateConfig == nil || Hooks.ConnectDB == nil ||
		Hooks.EnsureSchema == nil || Hooks.Startup == nil || Hooks.BuildHandler == nil ||
		Hooks.Shutdown == nil {
		t.Error("every lifecycle hook must be set")
	}
}

func TestAppConfigKeys_MongoHasNoDefault(t *testing.T) {
	for _, k := range appConfigKeys {
		switch k.Name {
		case "mongo_url", "db_name":
			if k.Default != "" {
				t.Errorf("%s must have no default, got %v", k.Name, k.Default)
			}
		}
	}
}

func TestApplyLegacyEnv(t *testing.T) {
	t.Setenv("MONGO_URL", " mongodb://legacy:27017 ")
	t.Setenv("DB_NAME", "legacy_db")

	core, logs := observer.New(zapcore.InfoLevel)
	cfg := AppConfig{}
	applyLegacyEnv(&cfg, zap.New(core))

	if cfg.MongoURL != "mongodb://legacy:27017" {
		t.Errorf("MongoURL: got %q", cfg.MongoURL)
	}
	if cfg.DBName != "legacy_db" {
		t.Errorf("DBName: got %q", cfg.DBName)
	}
	if logs.Len() != 2 {
		t.Errorf("expected fallback to be logged twice, got %d entries", logs.Len())
	}
}

func TestApplyLegacyEnv_PrefixedWins(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://legacy:27017")
	t.Setenv("DB_NAME", "legacy_db")

	cfg := AppConfig{MongoURL: "mongodb://prefixed:27017", DBName: "prefixed_db"}
	applyLegacyEnv(&cfg, zap.NewNop())

	if cfg.MongoURL != "mongodb://prefixed:27017" || cfg.DBName != "prefixed_db" {
		t.Errorf("prefixed values were overwritten: %+v", cfg)
	}
}

func TestApplyLegacyEnv_Unset(t *testing.T) {
	t.Setenv("MONGO_URL", "")
	t.Setenv("DB_NAME", "")
	os.Unsetenv("MONGO_URL")
	os.Unsetenv("DB_NAME")

	cfg := AppConfig{}
	applyLegacyEnv(&cfg, zap.NewNop())
	if cfg.MongoURL != "" || cfg.DBName != "" {
		t.Errorf("expected empty settings, got %+v", cfg)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{"valid", func(*AppConfig) {}, ""},
		{"missing mongo url", func(c *AppConfig) { c.MongoURL = "" }, "mongo_url is required"},
		{"missing db name", func(c *AppConfig) { c.DBName = "" }, "db_name is required"},
		{"min pool above max", func(c *AppConfig) { c.MongoMinPoolSize = 200 }, "mongo_min_pool_size"},
		{"no cors origins", func(c *AppConfig) { c.CORSAllowedOrigins = nil }, "cors_allowed_origins"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := ValidateConfig(testCoreConfig(), cfg, zap.NewNop())
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %v does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a, b,,c ", "a|b|c"},
		{"*", "*"},
		{"", ""},
		{" , ", ""},
	}
	for _, tt := range tests {
		if got := strings.Join(splitList(tt.in), "|"); got != tt.want {
			t.Errorf("splitList(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWithLogFile(t *testing.T) {
	base := zap.NewNop()
	if got := withLogFile(validConfig(), base); got != base {
		t.Error("logger should be unchanged without log_file")
	}

	cfg := validConfig()
	cfg.LogFile = t.TempDir() + "/tyte.log"

	core, logs := observer.New(zapcore.InfoLevel)
	logger := withLogFile(cfg, zap.New(core))
	logger.Info("hello")
	logger.Debug("below level")
	_ = logger.Sync()

	if logs.Len() != 1 {
		t.Errorf("core logger should still receive entries, got %d", logs.Len())
	}
	data, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Errorf("log file missing entry: %s", data)
	}
	if strings.Contains(string(data), "below level") {
		t.Error("log file should honor the core level")
	}
}
