package cmd

import "testing"

func TestResolvePrecedence(t *testing.T) {
	t.Setenv("FT_TEST_KEY", "")

	if got := resolve("", "FT_TEST_KEY", "", "fallback"); got != "fallback" {
		t.Errorf("resolve() = %q, want the fallback", got)
	}
	if got := resolve("", "FT_TEST_KEY", "from-config", "fallback"); got != "from-config" {
		t.Errorf("resolve() = %q, want the config value", got)
	}

	t.Setenv("FT_TEST_KEY", "from-env")
	if got := resolve("", "FT_TEST_KEY", "from-config", "fallback"); got != "from-env" {
		t.Errorf("resolve() = %q, want the env value over config", got)
	}
	if got := resolve("from-flag", "FT_TEST_KEY", "from-config", "fallback"); got != "from-flag" {
		t.Errorf("resolve() = %q, want the flag value over everything", got)
	}
}
