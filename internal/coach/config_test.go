package coach

import "testing"

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
		"LIMITZ_COACH_PROVIDER", "LIMITZ_ANTHROPIC_API_KEY", "LIMITZ_OPENAI_API_KEY",
		"LIMITZ_GEMINI_API_KEY", "LIMITZ_OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "ak")
	t.Setenv("GEMINI_API_KEY", "gk")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	// Gemini wins when both are set.
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "gk" {
		t.Errorf("gemini key = %q, want gk", cfg.Gemini.APIKey)
	}
}

func TestDiscoverConfigNoKeys(t *testing.T) {
	clearKeyEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected discovery to fail with no keys set")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("LIMITZ_COACH_PROVIDER", "openai")
	t.Setenv("LIMITZ_OPENAI_API_KEY", "ok")
	t.Setenv("LIMITZ_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "ok" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("openai config = %+v", cfg.OpenAI)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestValidateMissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	cfg.Anthropic.APIKey = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for missing key")
	}
}

func TestValidateUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "oracle"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unknown provider")
	}
}

func TestValidateMock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	if err := cfg.Validate(); err != nil {
		t.Errorf("mock should not require a key: %v", err)
	}
}
